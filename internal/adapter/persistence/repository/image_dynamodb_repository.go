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
	defaultImagesTableName = "image_assets"
	imagesFolderIDIndex    = "folder_id-index"
)

type imageItem struct {
	ID           string `dynamodbav:"id"`
	FolderID     string `dynamodbav:"folder_id,omitempty"`
	Name         string `dynamodbav:"name"`
	AltText      string `dynamodbav:"alt_text,omitempty"`
	Description  string `dynamodbav:"description,omitempty"`
	StoragePath  string `dynamodbav:"storage_path"`
	ContentType  string `dynamodbav:"content_type,omitempty"`
	Width        int    `dynamodbav:"width,omitempty"`
	Height       int    `dynamodbav:"height,omitempty"`
	SizeBytes    int64  `dynamodbav:"size_bytes,omitempty"`
	DisplayOrder int    `dynamodbav:"display_order"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ImageDynamoRepository persists gallery image metadata in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: folder_id-index (PK: folder_id)
//
// Root-level images have no folder_id attribute, so listing the root falls
// back to a filtered Scan (GSIs skip items missing the index key).

type ImageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IImageRepository = (*ImageDynamoRepository)(nil)

func NewImageDynamoRepository(ddb *dynamodb.Client) *ImageDynamoRepository {
	return &ImageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("IMAGE_ASSETS_TABLE", defaultImagesTableName),
	}
}

func (r *ImageDynamoRepository) Create(ctx context.Context, img entities.ImageAsset) (entities.ImageAsset, error) {
	av, err := attributevalue.MarshalMap(toImageItem(img))
	if err != nil {
		return entities.ImageAsset{}, err
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
		return entities.ImageAsset{}, err
	}
	return img, nil
}

func (r *ImageDynamoRepository) GetByID(ctx context.Context, id string) (entities.ImageAsset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ImageAsset{}, err
	}
	if len(out.Item) == 0 {
		return entities.ImageAsset{}, nil
	}

	var it imageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ImageAsset{}, err
	}
	return fromImageItem(it), nil
}

func (r *ImageDynamoRepository) ListByFolder(ctx context.Context, folderID string) ([]entities.ImageAsset, error) {
	var raws []map[string]types.AttributeValue

	if folderID == "" {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("attribute_not_exists(folder_id)"),
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	} else {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(imagesFolderIDIndex),
			KeyConditionExpression: aws.String("folder_id = :fid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":fid": &types.AttributeValueMemberS{Value: folderID},
			},
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	}

	items := make([]entities.ImageAsset, 0, len(raws))
	for _, raw := range raws {
		var it imageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromImageItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
	return items, nil
}

func (r *ImageDynamoRepository) Update(ctx context.Context, img entities.ImageAsset) (entities.ImageAsset, error) {
	av, err := attributevalue.MarshalMap(toImageItem(img))
	if err != nil {
		return entities.ImageAsset{}, err
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
		return entities.ImageAsset{}, err
	}
	return img, nil
}

func (r *ImageDynamoRepository) UpdateDisplayOrder(ctx context.Context, id string, order int) error {
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

func (r *ImageDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toImageItem(img entities.ImageAsset) imageItem {
	return imageItem{
		ID:           img.ID,
		FolderID:     img.FolderID,
		Name:         img.Name,
		AltText:      img.AltText,
		Description:  img.Description,
		StoragePath:  img.StoragePath,
		ContentType:  img.ContentType,
		Width:        img.Width,
		Height:       img.Height,
		SizeBytes:    img.SizeBytes,
		DisplayOrder: img.DisplayOrder,
		CreatedAt:    timeToString(img.CreatedAt),
		UpdatedAt:    timeToString(img.UpdatedAt),
	}
}

func fromImageItem(it imageItem) entities.ImageAsset {
	return entities.ImageAsset{
		ID:           it.ID,
		FolderID:     it.FolderID,
		Name:         it.Name,
		AltText:      it.AltText,
		Description:  it.Description,
		StoragePath:  it.StoragePath,
		ContentType:  it.ContentType,
		Width:        it.Width,
		Height:       it.Height,
		SizeBytes:    it.SizeBytes,
		DisplayOrder: it.DisplayOrder,
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
