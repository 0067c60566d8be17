package repository

import (
	"context"
	"sort"
	"strconv"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsSlugIndex        = "slug-index"
)

type projectItem struct {
	ID                      string            `dynamodbav:"id"`
	Slug                    string            `dynamodbav:"slug"`
	Title                   string            `dynamodbav:"title"`
	TitleTranslations       map[string]string `dynamodbav:"title_translations,omitempty"`
	Description             string            `dynamodbav:"description,omitempty"`
	DescriptionTranslations map[string]string `dynamodbav:"description_translations,omitempty"`
	CoverImagePath          string            `dynamodbav:"cover_image_path,omitempty"`
	Tags                    []string          `dynamodbav:"tags,omitempty"`
	DisplayOrder            int               `dynamodbav:"display_order"`
	Published               bool              `dynamodbav:"published"`
	CreatedAt               string            `dynamodbav:"created_at"`
	UpdatedAt               string            `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists portfolio projects in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context, onlyPublished bool) ([]entities.Project, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if onlyPublished {
		in.FilterExpression = aws.String("#published = :published")
		in.ExpressionAttributeNames = map[string]string{"#published": "published"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":published": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
	return items, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) UpdateDisplayOrder(ctx context.Context, id string, order int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #display_order = :order"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#display_order": "display_order",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order": &types.AttributeValueMemberN{Value: strconv.Itoa(order)},
		},
	})
	return err
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:                      p.ID,
		Slug:                    p.Slug,
		Title:                   p.Title,
		TitleTranslations:       p.TitleTranslations,
		Description:             p.Description,
		DescriptionTranslations: p.DescriptionTranslations,
		CoverImagePath:          p.CoverImagePath,
		Tags:                    p.Tags,
		DisplayOrder:            p.DisplayOrder,
		Published:               p.Published,
		CreatedAt:               timeToString(p.CreatedAt),
		UpdatedAt:               timeToString(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:                      it.ID,
		Slug:                    it.Slug,
		Title:                   it.Title,
		TitleTranslations:       it.TitleTranslations,
		Description:             it.Description,
		DescriptionTranslations: it.DescriptionTranslations,
		CoverImagePath:          it.CoverImagePath,
		Tags:                    it.Tags,
		DisplayOrder:            it.DisplayOrder,
		Published:               it.Published,
		CreatedAt:               stringToTime(it.CreatedAt),
		UpdatedAt:               stringToTime(it.UpdatedAt),
	}
}
