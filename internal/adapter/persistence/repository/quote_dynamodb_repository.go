package repository

import (
	"context"
	"sort"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type quoteItem struct {
	RequestID  string `dynamodbav:"request_id"`
	ProviderID string `dynamodbav:"provider_id"`
	ID         string `dynamodbav:"id"`
	Price      string `dynamodbav:"price"`
	Message    string `dynamodbav:"message,omitempty"`
	Status     string `dynamodbav:"status"`
	ExpiresAt  string `dynamodbav:"expires_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
	Version    int64  `dynamodbav:"version"`
}

// QuoteDynamoRepository reads Quote entities from DynamoDB.
//
// Table requirements:
//   - PK: request_id (string), SK: provider_id (string)
//   - GSI: id-index (PK: id)
//
// The composite key is what enforces one quote per provider and request.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

// GetByID resolves a quote through the id index. Index reads are eventually
// consistent; callers reload by primary key before writing.
func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, dependencyErr("get quote", err)
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByProviderAndRequest(ctx context.Context, providerID, requestID string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            pairKey(requestID, providerID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, dependencyErr("get quote", err)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})

	items := make([]entities.Quote, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, dependencyErr("list quotes", err)
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteItem(it))
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// pairKey is the (request_id, provider_id) key shared by quotes, provider
// statuses and workflows.
func pairKey(requestID, providerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"request_id":  &types.AttributeValueMemberS{Value: requestID},
		"provider_id": &types.AttributeValueMemberS{Value: providerID},
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		RequestID:  q.RequestID,
		ProviderID: q.ProviderID,
		ID:         q.ID,
		Price:      q.Price.String(),
		Message:    q.Message,
		Status:     string(q.Status),
		ExpiresAt:  formatTime(q.ExpiresAt),
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
		Version:    q.Version,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	price, _ := decimal.NewFromString(it.Price)
	return entities.Quote{
		ID:         it.ID,
		ProviderID: it.ProviderID,
		RequestID:  it.RequestID,
		Price:      price,
		Message:    it.Message,
		Status:     entities.QuoteStatus(it.Status),
		ExpiresAt:  parseTime(it.ExpiresAt),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
		Version:    it.Version,
	}
}
