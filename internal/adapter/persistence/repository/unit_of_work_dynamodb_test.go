package repository

import (
	"errors"
	"testing"
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() Tables {
	return Tables{
		ServiceRequests:  "t_requests",
		Quotes:           "t_quotes",
		ProviderStatuses: "t_statuses",
		Agreements:       "t_agreements",
		Workflows:        "t_workflows",
	}
}

func TestTransactItems_VersionConditions(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	req := &entities.ServiceRequest{ID: "r-1", RequesterID: "owner", Status: entities.RequestStatusAssigned, AssignedProviderID: "p-1", Version: 3}
	quote := &entities.Quote{ID: "q-1", RequestID: "r-1", ProviderID: "p-1", Price: decimal.NewFromInt(50), CreatedAt: now}

	var cs interfaces.ChangeSet
	cs.PutRequest(req)
	cs.PutQuote(quote)

	items, err := testTables().transactItems(cs)
	require.NoError(t, err)
	require.Len(t, items, 2)

	update := items[0].Put
	assert.Equal(t, "t_requests", aws.ToString(update.TableName))
	assert.Equal(t, "#version = :version", aws.ToString(update.ConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, update.ExpressionAttributeValues[":version"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "4"}, update.Item["version"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "p-1"}, update.Item["assigned_provider_id"])

	create := items[1].Put
	assert.Equal(t, "t_quotes", aws.ToString(create.TableName))
	assert.Equal(t, "attribute_not_exists(#pk)", aws.ToString(create.ConditionExpression))
	assert.Equal(t, map[string]string{"#pk": "request_id"}, create.ExpressionAttributeNames)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, create.Item["version"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "50"}, create.Item["price"])

	// The entities keep their loaded versions until the transaction succeeds.
	assert.Equal(t, int64(3), req.Version)
	assert.Equal(t, int64(0), quote.Version)
	bumpVersions(cs)
	assert.Equal(t, int64(4), req.Version)
	assert.Equal(t, int64(1), quote.Version)
}

func TestTransactItems_Limit(t *testing.T) {
	var cs interfaces.ChangeSet
	for i := 0; i <= maxTransactItems; i++ {
		cs.PutWorkflow(&entities.WorkflowStatus{RequestID: "r-1", ProviderID: "p"})
	}
	_, err := testTables().transactItems(cs)
	assert.Error(t, err)
}

func TestCommitErr(t *testing.T) {
	cancelled := &types.TransactionCanceledException{
		Message: aws.String("cancelled"),
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
	assert.ErrorIs(t, commitErr(cancelled), entities.ErrConflict)

	raced := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
	}
	assert.ErrorIs(t, commitErr(raced), entities.ErrConflict)

	throttled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
	}
	err := commitErr(throttled)
	assert.ErrorIs(t, err, entities.ErrDependencyFailure)
	assert.NotErrorIs(t, err, entities.ErrConflict)

	network := errors.New("connection reset")
	err = commitErr(network)
	assert.ErrorIs(t, err, entities.ErrDependencyFailure)
	assert.ErrorIs(t, err, network)
}
