package repository

import (
	"testing"
	"time"

	"engagement_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProviderStatusItem_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	row := entities.RestoreProviderRequestStatus("p-1", "r-1", entities.ProviderStatusQuoted, "q-1", now, 2)

	it := toProviderStatusItem(row)
	assert.Equal(t, "quoted", it.Status)
	assert.Equal(t, 3, it.Rank)

	back := fromProviderStatusItem(it)
	assert.Equal(t, entities.ProviderStatusQuoted, back.Status())
	assert.Equal(t, "q-1", back.QuoteID)
	assert.True(t, back.LastUpdated.Equal(now))
	assert.Equal(t, int64(2), back.Version)
}

func TestProviderStatusItem_UnknownNameFallsBackToRank(t *testing.T) {
	back := fromProviderStatusItem(providerStatusItem{RequestID: "r-1", ProviderID: "p-1", Status: "legacy", Rank: 4})
	assert.Equal(t, entities.ProviderStatusAssigned, back.Status())

	fresh := fromProviderStatusItem(providerStatusItem{RequestID: "r-1", ProviderID: "p-1", Status: "new"})
	assert.Equal(t, entities.ProviderStatusNew, fresh.Status())
	assert.Equal(t, 0, fresh.Status().Rank())
}

func TestQuoteItem_KeepsDecimalPrecision(t *testing.T) {
	q := entities.Quote{ID: "q-1", RequestID: "r-1", ProviderID: "p-1", Price: decimal.RequireFromString("19.99")}

	it := toQuoteItem(q)
	assert.Equal(t, "19.99", it.Price)
	assert.Equal(t, "", it.ExpiresAt)

	back := fromQuoteItem(it)
	assert.True(t, back.Price.Equal(q.Price))
	assert.True(t, back.ExpiresAt.IsZero())
}

func TestAgreementItem_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	a := entities.Agreement{
		ID:                  "a-1",
		QuoteID:             "q-1",
		RequestID:           "r-1",
		RequesterID:         "owner",
		ProviderID:          "p-1",
		RequesterAccepted:   true,
		RequesterAcceptedAt: &now,
		Status:              entities.AgreementStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
		Version:             1,
	}

	back := fromAgreementItem(toAgreementItem(a))
	assert.Equal(t, a.QuoteID, back.QuoteID)
	assert.True(t, back.RequesterAccepted)
	if assert.NotNil(t, back.RequesterAcceptedAt) {
		assert.True(t, back.RequesterAcceptedAt.Equal(now))
	}
	assert.Nil(t, back.ProviderAcceptedAt)
	assert.Nil(t, back.FinalizedAt)
	assert.Equal(t, entities.AgreementStatusPending, back.Status)
}

func TestWorkflowItem_RoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	w := entities.NewWorkflowStatus("r-1", "p-1", now)
	_, _ = w.Mark(entities.MilestoneCheckedIn, now.Add(time.Hour))

	back := fromWorkflowItem(toWorkflowItem(w))
	assert.True(t, back.Assigned)
	assert.False(t, back.InProgress)
	assert.Nil(t, back.InProgressAt)
	assert.True(t, back.CheckedIn)
	assert.True(t, back.CheckedInAt.Equal(now.Add(time.Hour)))
}

func TestTablesFromEnv(t *testing.T) {
	t.Setenv("QUOTES_TABLE", "custom_quotes")

	tables := TablesFromEnv()
	assert.Equal(t, "custom_quotes", tables.Quotes)
	assert.Equal(t, defaultServiceRequestsTableName, tables.ServiceRequests)

	defs := tables.Definitions()
	assert.Len(t, defs, 5)
	assert.Len(t, defs["custom_quotes"].GlobalSecondaryIndexes, 1)
	assert.Empty(t, defs[defaultAgreementsTableName].GlobalSecondaryIndexes)
}
