package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsSlugIndex        = "slug-index"
)

type proposalItem struct {
	ID               string                  `dynamodbav:"id"`
	Slug             string                  `dynamodbav:"slug"`
	ClientName       string                  `dynamodbav:"client_name"`
	Title            string                  `dynamodbav:"title"`
	Objective        string                  `dynamodbav:"objective,omitempty"`
	ScopeItems       []string                `dynamodbav:"scope_items,omitempty"`
	Timeline         []entities.TimelineStep `dynamodbav:"timeline,omitempty"`
	InvestmentValue  string                  `dynamodbav:"investment_value"`
	DeliveryDate     string                  `dynamodbav:"delivery_date,omitempty"`
	PaymentTerms     []string                `dynamodbav:"payment_terms,omitempty"`
	RescissionPolicy string                  `dynamodbav:"rescission_policy,omitempty"`
	PasswordHash     string                  `dynamodbav:"password_hash,omitempty"`
	Accepted         bool                    `dynamodbav:"accepted"`
	AcceptedAt       string                  `dynamodbav:"accepted_at,omitempty"`
	Version          int                     `dynamodbav:"version"`
	CreatedAt        string                  `dynamodbav:"created_at"`
	UpdatedAt        string                  `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
//
// Update carries the version the editor loaded as a condition expression so a
// stale write surfaces as a zero-value result instead of silently winning.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Items) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal, expectedVersion int) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.Itoa(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) SetAccepted(ctx context.Context, id string, at time.Time) (entities.Proposal, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #accepted = :accepted, #accepted_at = :accepted_at, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#accepted":    "accepted",
			"#accepted_at": "accepted_at",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":accepted":    &types.AttributeValueMemberBOOL{Value: true},
			":accepted_at": &types.AttributeValueMemberS{Value: timeToString(at)},
			":updated_at":  &types.AttributeValueMemberS{Value: timeToString(time.Now().UTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:               p.ID,
		Slug:             p.Slug,
		ClientName:       p.ClientName,
		Title:            p.Title,
		Objective:        p.Objective,
		ScopeItems:       p.ScopeItems,
		Timeline:         p.Timeline,
		InvestmentValue:  floatToString(p.InvestmentValue),
		DeliveryDate:     timeToString(p.DeliveryDate),
		PaymentTerms:     p.PaymentTerms,
		RescissionPolicy: p.RescissionPolicy,
		PasswordHash:     p.PasswordHash,
		Accepted:         p.Accepted,
		AcceptedAt:       timePtrToString(p.AcceptedAt),
		Version:          p.Version,
		CreatedAt:        timeToString(p.CreatedAt),
		UpdatedAt:        timeToString(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:               it.ID,
		Slug:             it.Slug,
		ClientName:       it.ClientName,
		Title:            it.Title,
		Objective:        it.Objective,
		ScopeItems:       it.ScopeItems,
		Timeline:         it.Timeline,
		InvestmentValue:  stringToFloat(it.InvestmentValue),
		DeliveryDate:     stringToTime(it.DeliveryDate),
		PaymentTerms:     it.PaymentTerms,
		RescissionPolicy: it.RescissionPolicy,
		PasswordHash:     it.PasswordHash,
		Accepted:         it.Accepted,
		AcceptedAt:       stringToTimePtr(it.AcceptedAt),
		Version:          it.Version,
		CreatedAt:        stringToTime(it.CreatedAt),
		UpdatedAt:        stringToTime(it.UpdatedAt),
	}
}
