package repository

import (
	"context"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFoldersTableName = "image_folders"

type folderItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	ParentID  string `dynamodbav:"parent_id,omitempty"`
	Path      string `dynamodbav:"path"`
	CreatedAt string `dynamodbav:"created_at"`
}

// FolderDynamoRepository persists gallery folder nodes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The folder tree is small (tens of nodes), so ListChildren filters a Scan
// instead of maintaining a parent_id GSI.

type FolderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFolderRepository = (*FolderDynamoRepository)(nil)

func NewFolderDynamoRepository(ddb *dynamodb.Client) *FolderDynamoRepository {
	return &FolderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("IMAGE_FOLDERS_TABLE", defaultFoldersTableName),
	}
}

func (r *FolderDynamoRepository) Create(ctx context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
	av, err := attributevalue.MarshalMap(toFolderItem(f))
	if err != nil {
		return entities.ImageFolder{}, err
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
		return entities.ImageFolder{}, err
	}
	return f, nil
}

func (r *FolderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ImageFolder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ImageFolder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ImageFolder{}, nil
	}

	var it folderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ImageFolder{}, err
	}
	return fromFolderItem(it), nil
}

func (r *FolderDynamoRepository) List(ctx context.Context) ([]entities.ImageFolder, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalFolders(out.Items)
}

func (r *FolderDynamoRepository) ListChildren(ctx context.Context, parentID string) ([]entities.ImageFolder, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	children := make([]entities.ImageFolder, 0)
	for _, f := range all {
		if f.ParentID == parentID {
			children = append(children, f)
		}
	}
	return children, nil
}

func (r *FolderDynamoRepository) Update(ctx context.Context, f entities.ImageFolder) (entities.ImageFolder, error) {
	av, err := attributevalue.MarshalMap(toFolderItem(f))
	if err != nil {
		return entities.ImageFolder{}, err
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
		return entities.ImageFolder{}, err
	}
	return f, nil
}

func (r *FolderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalFolders(raws []map[string]types.AttributeValue) ([]entities.ImageFolder, error) {
	items := make([]entities.ImageFolder, 0, len(raws))
	for _, raw := range raws {
		var it folderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFolderItem(it))
	}
	return items, nil
}

func toFolderItem(f entities.ImageFolder) folderItem {
	return folderItem{
		ID:        f.ID,
		Name:      f.Name,
		ParentID:  f.ParentID,
		Path:      f.Path,
		CreatedAt: timeToString(f.CreatedAt),
	}
}

func fromFolderItem(it folderItem) entities.ImageFolder {
	return entities.ImageFolder{
		ID:        it.ID,
		Name:      it.Name,
		ParentID:  it.ParentID,
		Path:      it.Path,
		CreatedAt: stringToTime(it.CreatedAt),
	}
}
