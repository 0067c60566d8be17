package repository

import (
	"context"
	"errors"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutsTableName = "checkouts"

type checkoutItem struct {
	ID               string `dynamodbav:"id"`
	Description      string `dynamodbav:"description"`
	Value            string `dynamodbav:"value"`
	DueDate          string `dynamodbav:"due_date,omitempty"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerDocument string `dynamodbav:"customer_document"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// CheckoutDynamoRepository persists Checkout entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CheckoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutRepository = (*CheckoutDynamoRepository)(nil)

func NewCheckoutDynamoRepository(ddb *dynamodb.Client) *CheckoutDynamoRepository {
	return &CheckoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKOUTS_TABLE", defaultCheckoutsTableName),
	}
}

func (r *CheckoutDynamoRepository) Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error) {
	av, err := attributevalue.MarshalMap(toCheckoutItem(c))
	if err != nil {
		return entities.Checkout{}, err
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
		return entities.Checkout{}, err
	}
	return c, nil
}

func (r *CheckoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.Checkout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checkout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checkout{}, nil
	}

	var it checkoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checkout{}, err
	}
	return fromCheckoutItem(it), nil
}

func (r *CheckoutDynamoRepository) List(ctx context.Context) ([]entities.Checkout, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Checkout, 0, len(out.Items))
	for _, raw := range out.Items {
		var it checkoutItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCheckoutItem(it))
	}
	return items, nil
}

func (r *CheckoutDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CheckoutStatus) (entities.Checkout, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Checkout{}, nil
		}
		return entities.Checkout{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Checkout{}, nil
	}

	var it checkoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Checkout{}, err
	}
	return fromCheckoutItem(it), nil
}

func (r *CheckoutDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCheckoutItem(c entities.Checkout) checkoutItem {
	return checkoutItem{
		ID:               c.ID,
		Description:      c.Description,
		Value:            floatToString(c.Value),
		DueDate:          timeToString(c.DueDate),
		CustomerName:     c.CustomerName,
		CustomerDocument: c.CustomerDocument,
		CustomerEmail:    c.CustomerEmail,
		Status:           string(c.Status),
		CreatedAt:        timeToString(c.CreatedAt),
		UpdatedAt:        timeToString(c.UpdatedAt),
	}
}

func fromCheckoutItem(it checkoutItem) entities.Checkout {
	return entities.Checkout{
		ID:               it.ID,
		Description:      it.Description,
		Value:            stringToFloat(it.Value),
		DueDate:          stringToTime(it.DueDate),
		CustomerName:     it.CustomerName,
		CustomerDocument: it.CustomerDocument,
		CustomerEmail:    it.CustomerEmail,
		Status:           entities.CheckoutStatus(it.Status),
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
