package repository

import (
	"context"
	"sort"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPostsTableName = "posts"
	postsSlugIndex        = "slug-index"
)

type postItem struct {
	ID                string            `dynamodbav:"id"`
	Slug              string            `dynamodbav:"slug"`
	Title             string            `dynamodbav:"title"`
	TitleTranslations map[string]string `dynamodbav:"title_translations,omitempty"`
	Body              string            `dynamodbav:"body,omitempty"`
	BodyTranslations  map[string]string `dynamodbav:"body_translations,omitempty"`
	CoverImagePath    string            `dynamodbav:"cover_image_path,omitempty"`
	Published         bool              `dynamodbav:"published"`
	PublishedAt       string            `dynamodbav:"published_at,omitempty"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// PostDynamoRepository persists blog posts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)

type PostDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPostRepository = (*PostDynamoRepository)(nil)

func NewPostDynamoRepository(ddb *dynamodb.Client) *PostDynamoRepository {
	return &PostDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POSTS_TABLE", defaultPostsTableName),
	}
}

func (r *PostDynamoRepository) Create(ctx context.Context, p entities.Post) (entities.Post, error) {
	av, err := attributevalue.MarshalMap(toPostItem(p))
	if err != nil {
		return entities.Post{}, err
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
		return entities.Post{}, err
	}
	return p, nil
}

func (r *PostDynamoRepository) GetByID(ctx context.Context, id string) (entities.Post, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Post{}, err
	}
	if len(out.Item) == 0 {
		return entities.Post{}, nil
	}

	var it postItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Post{}, err
	}
	return fromPostItem(it), nil
}

func (r *PostDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Post, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(postsSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Post{}, err
	}
	if len(out.Items) == 0 {
		return entities.Post{}, nil
	}

	var it postItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Post{}, err
	}
	return fromPostItem(it), nil
}

func (r *PostDynamoRepository) List(ctx context.Context, onlyPublished bool) ([]entities.Post, error) {
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

	items := make([]entities.Post, 0, len(out.Items))
	for _, raw := range out.Items {
		var it postItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPostItem(it))
	}
	// Newest first, unpublished drafts sort by creation date.
	sort.SliceStable(items, func(i, j int) bool {
		return postSortTime(items[i]).After(postSortTime(items[j]))
	})
	return items, nil
}

func (r *PostDynamoRepository) Update(ctx context.Context, p entities.Post) (entities.Post, error) {
	av, err := attributevalue.MarshalMap(toPostItem(p))
	if err != nil {
		return entities.Post{}, err
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
		return entities.Post{}, err
	}
	return p, nil
}

func (r *PostDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func postSortTime(p entities.Post) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

func toPostItem(p entities.Post) postItem {
	return postItem{
		ID:                p.ID,
		Slug:              p.Slug,
		Title:             p.Title,
		TitleTranslations: p.TitleTranslations,
		Body:              p.Body,
		BodyTranslations:  p.BodyTranslations,
		CoverImagePath:    p.CoverImagePath,
		Published:         p.Published,
		PublishedAt:       timePtrToString(p.PublishedAt),
		CreatedAt:         timeToString(p.CreatedAt),
		UpdatedAt:         timeToString(p.UpdatedAt),
	}
}

func fromPostItem(it postItem) entities.Post {
	return entities.Post{
		ID:                it.ID,
		Slug:              it.Slug,
		Title:             it.Title,
		TitleTranslations: it.TitleTranslations,
		Body:              it.Body,
		BodyTranslations:  it.BodyTranslations,
		CoverImagePath:    it.CoverImagePath,
		Published:         it.Published,
		PublishedAt:       stringToTimePtr(it.PublishedAt),
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}
}
