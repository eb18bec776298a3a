package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"engagement_service/internal/adapter/persistence/memory"
	"engagement_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type sentMessage struct {
	SenderID, ReceiverID, RequestID, Text string
}

type acceptanceNotice struct {
	QuoteID, ActingID string
	IsRequester       bool
}

type requestUpdate struct {
	RequestID, Kind string
}

// recordingEffects captures side effects synchronously.
type recordingEffects struct {
	mu          sync.Mutex
	messages    []sentMessage
	acceptances []acceptanceNotice
	updates     []requestUpdate
}

func (r *recordingEffects) PostSystemMessage(senderID, receiverID, requestID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, sentMessage{senderID, receiverID, requestID, text})
}

func (r *recordingEffects) NotifyQuoteAcceptance(quoteID, actingProfileID string, isRequester bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acceptances = append(r.acceptances, acceptanceNotice{quoteID, actingProfileID, isRequester})
}

func (r *recordingEffects) NotifyProviderOfRequestUpdate(requestID, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, requestUpdate{requestID, kind})
}

func (r *recordingEffects) updateKinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.updates))
	for _, u := range r.updates {
		out = append(out, u.Kind)
	}
	return out
}

type harness struct {
	store      *memory.Store
	clock      *fakeClock
	effects    *recordingEffects
	deps       Dependencies
	requests   *RequestLifecycleUseCase
	quotes     *QuoteUseCase
	agreements *AgreementUseCase
	statuses   *ProviderStatusUseCase
	workflows  *WorkflowUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.NewStore()
	clock := newFakeClock()
	effects := &recordingEffects{}
	deps := Dependencies{
		Requests:   store,
		Quotes:     store.Quotes(),
		Statuses:   store.ProviderStatuses(),
		Agreements: store.Agreements(),
		Workflows:  store.Workflows(),
		UnitOfWork: store,
		Effects:    effects,
		Locks:      NewKeyedLocker(),
		Now:        clock.Now,
	}
	return &harness{
		store:      store,
		clock:      clock,
		effects:    effects,
		deps:       deps,
		requests:   NewRequestLifecycleUseCase(deps),
		quotes:     NewQuoteUseCase(deps, DefaultQuoteTTL),
		agreements: NewAgreementUseCase(deps),
		statuses:   NewProviderStatusUseCase(deps),
		workflows:  NewWorkflowUseCase(deps),
	}
}

func (h *harness) createRequest(t *testing.T, requesterID string) entities.ServiceRequest {
	t.Helper()
	req, err := h.requests.CreateRequest(context.Background(), NewServiceRequest{
		RequesterID: requesterID,
		Category:    "plumbing",
		Title:       "Fix kitchen sink",
	})
	require.NoError(t, err)
	return req
}

func (h *harness) submitQuote(t *testing.T, providerID, requestID string, price int64) entities.Quote {
	t.Helper()
	sub, err := h.quotes.SubmitQuote(context.Background(), providerID, requestID, decimal.NewFromInt(price), "")
	require.NoError(t, err)
	require.True(t, sub.Created)
	return sub.Quote
}

// finalize runs the full negotiation and returns the assigned request.
func (h *harness) finalize(t *testing.T, requesterID, providerID string) (entities.ServiceRequest, entities.Quote) {
	t.Helper()
	ctx := context.Background()
	req := h.createRequest(t, requesterID)
	q := h.submitQuote(t, providerID, req.ID, 50)

	_, err := h.agreements.RespondToAgreement(ctx, requesterID, q.ID, true)
	require.NoError(t, err)
	res, err := h.agreements.RespondToAgreement(ctx, providerID, q.ID, true)
	require.NoError(t, err)
	require.True(t, res.Finalized())

	stored, err := h.requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	return stored, q
}

func (h *harness) providerStatus(t *testing.T, providerID, requestID string) entities.ProviderStatus {
	t.Helper()
	row, err := h.statuses.Get(context.Background(), providerID, requestID)
	require.NoError(t, err)
	return row.Status()
}
