package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"
	mock_interfaces "engagement_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_SubmitQuoteValidation(t *testing.T) {
	uc := NewQuoteUseCase(Dependencies{}, 0)
	ctx := context.Background()

	_, err := uc.SubmitQuote(ctx, "  ", "r-1", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrInvalidProviderID)

	_, err = uc.SubmitQuote(ctx, "p-1", "", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrInvalidRequestID)

	_, err = uc.SubmitQuote(ctx, "p-1", "r-1", decimal.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.SubmitQuote(ctx, "p-1", "r-1", decimal.NewFromInt(-5), "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestQuoteUseCase_SubmitQuote(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.createRequest(t, "requester")

	sub, err := h.quotes.SubmitQuote(ctx, " provider-1 ", req.ID, decimal.RequireFromString("49.90"), " Can come tomorrow ")
	require.NoError(t, err)
	assert.True(t, sub.Created)
	assert.Equal(t, "provider-1", sub.Quote.ProviderID)
	assert.Equal(t, "Can come tomorrow", sub.Quote.Message)
	assert.Equal(t, entities.QuoteStatusPending, sub.Quote.Status)
	assert.Equal(t, h.clock.Now().Add(DefaultQuoteTTL), sub.Quote.ExpiresAt)

	row, err := h.statuses.Get(ctx, "provider-1", req.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ProviderStatusQuoted, row.Status())
	assert.Equal(t, sub.Quote.ID, row.QuoteID)

	require.Len(t, h.effects.messages, 1)
	assert.Equal(t, sentMessage{
		SenderID:   "provider-1",
		ReceiverID: "requester",
		RequestID:  req.ID,
		Text:       `New quote of 49.90 for "Fix kitchen sink". Can come tomorrow`,
	}, h.effects.messages[0])
}

func TestQuoteUseCase_SubmitQuoteIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.createRequest(t, "requester")
	first := h.submitQuote(t, "provider-1", req.ID, 50)

	again, err := h.quotes.SubmitQuote(ctx, "provider-1", req.ID, decimal.NewFromInt(80), "cheaper elsewhere")
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.ID, again.Quote.ID)
	assert.True(t, again.Quote.Price.Equal(decimal.NewFromInt(50)))

	quotes, err := h.quotes.ListByRequest(ctx, "requester", req.ID)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
	assert.Len(t, h.effects.messages, 1)
}

func TestQuoteUseCase_SubmitQuoteRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.quotes.SubmitQuote(ctx, "provider-1", "missing", decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	req := h.createRequest(t, "requester")
	_, err = h.quotes.SubmitQuote(ctx, "requester", req.ID, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrOwnRequest)

	quoted := h.submitQuote(t, "provider-1", req.ID, 30)
	_, err = h.requests.Cancel(ctx, req.ID, "requester")
	require.NoError(t, err)

	_, err = h.quotes.SubmitQuote(ctx, "provider-2", req.ID, decimal.NewFromInt(10), "")
	assert.ErrorIs(t, err, ErrRequestNotOpen)
	assert.ErrorIs(t, err, entities.ErrInvalidState)

	// A retry of an accepted submission still answers with the stored quote.
	retry, err := h.quotes.SubmitQuote(ctx, "provider-1", req.ID, decimal.NewFromInt(30), "")
	require.NoError(t, err)
	assert.Equal(t, quoted.ID, retry.Quote.ID)
}

func TestQuoteUseCase_ListAndGet(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.createRequest(t, "requester")
	q1 := h.submitQuote(t, "provider-1", req.ID, 50)
	h.clock.Advance(time.Minute)
	q2 := h.submitQuote(t, "provider-2", req.ID, 45)

	quotes, err := h.quotes.ListByRequest(ctx, "requester", req.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, q1.ID, quotes[0].ID)
	assert.Equal(t, q2.ID, quotes[1].ID)

	_, err = h.quotes.ListByRequest(ctx, "provider-1", req.ID)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)

	got, err := h.quotes.GetByID(ctx, q2.ID)
	require.NoError(t, err)
	assert.Equal(t, "provider-2", got.ProviderID)

	_, err = h.quotes.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrQuoteNotFound)
	_, err = h.quotes.GetByID(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidQuoteID)
}

func TestQuoteUseCase_ConcurrentWriterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	statuses := mock_interfaces.NewMockIProviderStatusRepository(ctrl)
	uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
	effects := mock_interfaces.NewMockISideEffects(ctrl)

	stored := entities.Quote{ID: "q-other-instance", ProviderID: "p-1", RequestID: "r-1", Price: decimal.NewFromInt(20)}
	requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ServiceRequest{ID: "r-1", RequesterID: "owner", Status: entities.RequestStatusOpen}, nil)
	gomock.InOrder(
		quotes.EXPECT().GetByProviderAndRequest(gomock.Any(), "p-1", "r-1").Return(entities.Quote{}, nil),
		quotes.EXPECT().GetByProviderAndRequest(gomock.Any(), "p-1", "r-1").Return(stored, nil),
	)
	statuses.EXPECT().Get(gomock.Any(), "p-1", "r-1").Return(entities.ProviderRequestStatus{}, nil)
	uow.EXPECT().Commit(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ChangeSet{})).DoAndReturn(
		func(_ context.Context, cs interfaces.ChangeSet) error {
			if len(cs.Quotes) != 1 || len(cs.ProviderStatuses) != 1 {
				t.Fatalf("unexpected change set: %+v", cs)
			}
			return errors.Join(errors.New("version moved"), entities.ErrConflict)
		},
	)
	// No side effect may be emitted for a submission that did not commit.

	uc := NewQuoteUseCase(Dependencies{
		Requests:   requests,
		Quotes:     quotes,
		Statuses:   statuses,
		UnitOfWork: uow,
		Effects:    effects,
	}, time.Hour)

	sub, err := uc.SubmitQuote(context.Background(), "p-1", "r-1", decimal.NewFromInt(20), "")
	require.NoError(t, err)
	assert.False(t, sub.Created)
	assert.Equal(t, stored.ID, sub.Quote.ID)
}

func TestQuoteUseCase_CommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	statuses := mock_interfaces.NewMockIProviderStatusRepository(ctrl)
	uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
	effects := mock_interfaces.NewMockISideEffects(ctrl)

	requests.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.ServiceRequest{ID: "r-1", RequesterID: "owner", Status: entities.RequestStatusOpen}, nil)
	quotes.EXPECT().GetByProviderAndRequest(gomock.Any(), "p-1", "r-1").Return(entities.Quote{}, nil)
	statuses.EXPECT().Get(gomock.Any(), "p-1", "r-1").Return(entities.ProviderRequestStatus{}, nil)
	uow.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(entities.ErrDependencyFailure)

	uc := NewQuoteUseCase(Dependencies{Requests: requests, Quotes: quotes, Statuses: statuses, UnitOfWork: uow, Effects: effects}, time.Hour)

	_, err := uc.SubmitQuote(context.Background(), "p-1", "r-1", decimal.NewFromInt(20), "")
	assert.ErrorIs(t, err, entities.ErrDependencyFailure)
}
