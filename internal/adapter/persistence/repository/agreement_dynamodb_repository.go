package repository

import (
	"context"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type agreementItem struct {
	QuoteID             string `dynamodbav:"quote_id"`
	ID                  string `dynamodbav:"id"`
	RequestID           string `dynamodbav:"request_id"`
	RequesterID         string `dynamodbav:"requester_id"`
	ProviderID          string `dynamodbav:"provider_id"`
	RequesterAccepted   bool   `dynamodbav:"requester_accepted"`
	RequesterAcceptedAt string `dynamodbav:"requester_accepted_at,omitempty"`
	ProviderAccepted    bool   `dynamodbav:"provider_accepted"`
	ProviderAcceptedAt  string `dynamodbav:"provider_accepted_at,omitempty"`
	Status              string `dynamodbav:"status"`
	RejectedBy          string `dynamodbav:"rejected_by,omitempty"`
	RejectedAt          string `dynamodbav:"rejected_at,omitempty"`
	FinalizedAt         string `dynamodbav:"finalized_at,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
	Version             int64  `dynamodbav:"version"`
}

// AgreementDynamoRepository reads Agreement entities from DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// A quote fixes both parties, so keying by quote_id gives exactly one
// agreement per (quote, requester, provider).
type AgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb *dynamodb.Client) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGREEMENTS_TABLE", defaultAgreementsTableName),
	}
}

func (r *AgreementDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, dependencyErr("get agreement", err)
	}
	if len(out.Item) == 0 {
		return entities.Agreement{}, nil
	}

	var it agreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		QuoteID:             a.QuoteID,
		ID:                  a.ID,
		RequestID:           a.RequestID,
		RequesterID:         a.RequesterID,
		ProviderID:          a.ProviderID,
		RequesterAccepted:   a.RequesterAccepted,
		RequesterAcceptedAt: formatTimePtr(a.RequesterAcceptedAt),
		ProviderAccepted:    a.ProviderAccepted,
		ProviderAcceptedAt:  formatTimePtr(a.ProviderAcceptedAt),
		Status:              string(a.Status),
		RejectedBy:          a.RejectedBy,
		RejectedAt:          formatTimePtr(a.RejectedAt),
		FinalizedAt:         formatTimePtr(a.FinalizedAt),
		CreatedAt:           formatTime(a.CreatedAt),
		UpdatedAt:           formatTime(a.UpdatedAt),
		Version:             a.Version,
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		ID:                  it.ID,
		QuoteID:             it.QuoteID,
		RequestID:           it.RequestID,
		RequesterID:         it.RequesterID,
		ProviderID:          it.ProviderID,
		RequesterAccepted:   it.RequesterAccepted,
		RequesterAcceptedAt: parseTimePtr(it.RequesterAcceptedAt),
		ProviderAccepted:    it.ProviderAccepted,
		ProviderAcceptedAt:  parseTimePtr(it.ProviderAcceptedAt),
		Status:              entities.AgreementStatus(it.Status),
		RejectedBy:          it.RejectedBy,
		RejectedAt:          parseTimePtr(it.RejectedAt),
		FinalizedAt:         parseTimePtr(it.FinalizedAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
