package repository

import (
	"context"
	"encoding/json"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChargesTableName = "charges"
	chargesCheckoutIDIndex  = "checkout_id-index"
)

type chargeItem struct {
	ID              string `dynamodbav:"id"`
	CheckoutID      string `dynamodbav:"checkout_id"`
	Method          string `dynamodbav:"method"`
	Installments    int    `dynamodbav:"installments,omitempty"`
	Amount          string `dynamodbav:"amount"`
	Status          string `dynamodbav:"status"`
	Date            string `dynamodbav:"date"`
	QRCode          string `dynamodbav:"qr_code,omitempty"`
	QRCodeBase64    string `dynamodbav:"qr_code_base64,omitempty"`
	DigitableLine   string `dynamodbav:"digitable_line,omitempty"`
	ProviderPayload string `dynamodbav:"provider_payload,omitempty"`
}

// ChargeDynamoRepository persists payment attempts in DynamoDB.
//
// Table requirements:
//   - PK: id (string, provider payment id)
//   - GSI: checkout_id-index (PK: checkout_id)
//
// The raw provider payload is stored as a JSON string so a charge can always
// be audited against what the provider actually returned.

type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Create(ctx context.Context, c entities.Charge) (entities.Charge, error) {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return entities.Charge{}, err
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
		return entities.Charge{}, err
	}
	return c, nil
}

func (r *ChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Charge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Charge{}, err
	}
	if len(out.Item) == 0 {
		return entities.Charge{}, nil
	}

	var it chargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Charge{}, err
	}
	return fromChargeItem(it), nil
}

func (r *ChargeDynamoRepository) ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesCheckoutIDIndex),
		KeyConditionExpression: aws.String("checkout_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: checkoutID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Charge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it chargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromChargeItem(it))
	}
	return items, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:              c.ID,
		CheckoutID:      c.CheckoutID,
		Method:          string(c.Method),
		Installments:    c.Installments,
		Amount:          floatToString(c.Amount),
		Status:          string(c.Status),
		Date:            timeToString(c.Date),
		QRCode:          c.QRCode,
		QRCodeBase64:    c.QRCodeBase64,
		DigitableLine:   c.DigitableLine,
		ProviderPayload: string(c.ProviderPayloadRaw),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	c := entities.Charge{
		ID:            it.ID,
		CheckoutID:    it.CheckoutID,
		Method:        entities.PaymentMethod(it.Method),
		Installments:  it.Installments,
		Amount:        stringToFloat(it.Amount),
		Status:        entities.ChargeStatus(it.Status),
		Date:          stringToTime(it.Date),
		QRCode:        it.QRCode,
		QRCodeBase64:  it.QRCodeBase64,
		DigitableLine: it.DigitableLine,
	}
	if it.ProviderPayload != "" {
		c.ProviderPayloadRaw = json.RawMessage(it.ProviderPayload)
		_ = json.Unmarshal(c.ProviderPayloadRaw, &c.ProviderPayload)
	}
	return c
}
