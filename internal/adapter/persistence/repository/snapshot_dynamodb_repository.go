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

const (
	defaultSnapshotsTableName = "proposal_snapshots"
	snapshotsProposalIDIndex  = "proposal_id-index"
)

type snapshotItem struct {
	ID         string `dynamodbav:"id"`
	ProposalID string `dynamodbav:"proposal_id"`
	Version    int    `dynamodbav:"version"`
	Content    string `dynamodbav:"content"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// SnapshotDynamoRepository archives pre-edit proposal content in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalSnapshotRepository = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSAL_SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) Create(ctx context.Context, s entities.ProposalSnapshot) (entities.ProposalSnapshot, error) {
	it := snapshotItem{
		ID:         s.ID,
		ProposalID: s.ProposalID,
		Version:    s.Version,
		Content:    string(s.Content),
		CreatedAt:  timeToString(s.CreatedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProposalSnapshot{}, err
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
		return entities.ProposalSnapshot{}, err
	}
	return s, nil
}

func (r *SnapshotDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(snapshotsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProposalSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it snapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.ProposalSnapshot{
			ID:         it.ID,
			ProposalID: it.ProposalID,
			Version:    it.Version,
			Content:    []byte(it.Content),
			CreatedAt:  stringToTime(it.CreatedAt),
		})
	}
	return items, nil
}
