package repository

import (
	"context"
	"log"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type providerStatusItem struct {
	RequestID   string `dynamodbav:"request_id"`
	ProviderID  string `dynamodbav:"provider_id"`
	Status      string `dynamodbav:"status"`
	Rank        int    `dynamodbav:"rank"`
	QuoteID     string `dynamodbav:"quote_id,omitempty"`
	LastUpdated string `dynamodbav:"last_updated"`
	Version     int64  `dynamodbav:"version"`
}

// ProviderStatusDynamoRepository reads ProviderRequestStatus rows from DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: provider_id (string)
//   - GSI: provider_id-index (PK: provider_id)
type ProviderStatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProviderStatusRepository = (*ProviderStatusDynamoRepository)(nil)

func NewProviderStatusDynamoRepository(ddb *dynamodb.Client) *ProviderStatusDynamoRepository {
	return &ProviderStatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROVIDER_STATUSES_TABLE", defaultProviderStatusesTableName),
	}
}

func (r *ProviderStatusDynamoRepository) Get(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, providerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProviderRequestStatus{}, dependencyErr("get provider status", err)
	}
	if len(out.Item) == 0 {
		return entities.ProviderRequestStatus{}, nil
	}

	var it providerStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProviderRequestStatus{}, err
	}
	return fromProviderStatusItem(it), nil
}

func (r *ProviderStatusDynamoRepository) ListByProviderID(ctx context.Context, providerID string) ([]entities.ProviderRequestStatus, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(providerStatusesProvider),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})

	rows := make([]entities.ProviderRequestStatus, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, dependencyErr("list provider statuses", err)
		}
		for _, raw := range out.Items {
			var it providerStatusItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			rows = append(rows, fromProviderStatusItem(it))
		}
	}
	return rows, nil
}

func toProviderStatusItem(p entities.ProviderRequestStatus) providerStatusItem {
	return providerStatusItem{
		RequestID:   p.RequestID,
		ProviderID:  p.ProviderID,
		Status:      p.Status().String(),
		Rank:        p.Status().Rank(),
		QuoteID:     p.QuoteID,
		LastUpdated: formatTime(p.LastUpdated),
		Version:     p.Version,
	}
}

func fromProviderStatusItem(it providerStatusItem) entities.ProviderRequestStatus {
	status, err := entities.ParseProviderStatus(it.Status)
	if err != nil {
		// Unknown names fall back to the stored rank.
		log.Printf("[provider-status][repository] unknown status=%q rank=%d request_id=%s provider_id=%s", it.Status, it.Rank, it.RequestID, it.ProviderID)
		status = entities.ProviderStatus(it.Rank)
	}
	return entities.RestoreProviderRequestStatus(it.ProviderID, it.RequestID, status, it.QuoteID, parseTime(it.LastUpdated), it.Version)
}
