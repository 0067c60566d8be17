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

const defaultAcceptancesTableName = "proposal_acceptances"

type acceptanceItem struct {
	ProposalID      string `dynamodbav:"proposal_id"`
	ID              string `dynamodbav:"id"`
	ClientName      string `dynamodbav:"client_name"`
	Document        string `dynamodbav:"document"`
	Email           string `dynamodbav:"email"`
	Role            string `dynamodbav:"role,omitempty"`
	ContentHash     string `dynamodbav:"content_hash"`
	IP              string `dynamodbav:"ip,omitempty"`
	UserAgent       string `dynamodbav:"user_agent,omitempty"`
	ProposalVersion int    `dynamodbav:"proposal_version"`
	AcceptedAt      string `dynamodbav:"accepted_at"`
}

// AcceptanceDynamoRepository persists ProposalAcceptance records in DynamoDB.
//
// Table requirements:
//   - PK: proposal_id (string)
//
// Using proposal_id as PK plus a conditional put is what enforces the
// accept-once rule even when two accept calls race.

type AcceptanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAcceptanceRepository = (*AcceptanceDynamoRepository)(nil)

func NewAcceptanceDynamoRepository(ddb *dynamodb.Client) *AcceptanceDynamoRepository {
	return &AcceptanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSAL_ACCEPTANCES_TABLE", defaultAcceptancesTableName),
	}
}

func (r *AcceptanceDynamoRepository) Create(ctx context.Context, a entities.ProposalAcceptance) (entities.ProposalAcceptance, error) {
	it := acceptanceItem{
		ProposalID:      a.ProposalID,
		ID:              a.ID,
		ClientName:      a.ClientName,
		Document:        a.Document,
		Email:           a.Email,
		Role:            a.Role,
		ContentHash:     a.ContentHash,
		IP:              a.IP,
		UserAgent:       a.UserAgent,
		ProposalVersion: a.ProposalVersion,
		AcceptedAt:      timeToString(a.AcceptedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pid)"),
		ExpressionAttributeNames: map[string]string{
			"#pid": "proposal_id",
		},
	})
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}
	return a, nil
}

func (r *AcceptanceDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalAcceptance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"proposal_id": &types.AttributeValueMemberS{Value: proposalID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProposalAcceptance{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProposalAcceptance{}, nil
	}

	var it acceptanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProposalAcceptance{}, err
	}
	return entities.ProposalAcceptance{
		ID:              it.ID,
		ProposalID:      it.ProposalID,
		ClientName:      it.ClientName,
		Document:        it.Document,
		Email:           it.Email,
		Role:            it.Role,
		ContentHash:     it.ContentHash,
		IP:              it.IP,
		UserAgent:       it.UserAgent,
		ProposalVersion: it.ProposalVersion,
		AcceptedAt:      stringToTime(it.AcceptedAt),
	}, nil
}
