package usecase

import (
	"context"
	"testing"
	"time"

	"engagement_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderStatusUseCase_Hierarchy(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.createRequest(t, "requester")

	row, err := h.statuses.Get(ctx, "provider-1", req.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ProviderStatusNew, row.Status())
	assert.False(t, row.Persisted())

	adv, err := h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusViewed)
	require.NoError(t, err)
	assert.True(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusViewed, adv.Status())

	adv, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusNegotiating)
	require.NoError(t, err)
	assert.True(t, adv.Applied)

	h.submitQuote(t, "provider-1", req.ID, 50)

	// A stale client marker never demotes a quoted provider.
	adv, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusNegotiating)
	require.NoError(t, err)
	assert.False(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusQuoted, adv.Status())

	adv, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusHidden)
	require.NoError(t, err)
	assert.True(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusHidden, h.providerStatus(t, "provider-1", req.ID))
}

func TestProviderStatusUseCase_AssignedIsNotDemoted(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req, _ := h.finalize(t, "requester", "provider-1")

	adv, err := h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusQuoted)
	require.NoError(t, err)
	assert.False(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusAssigned, adv.Status())
	assert.Equal(t, entities.ProviderStatusAssigned, h.providerStatus(t, "provider-1", req.ID))

	adv, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusHidden)
	require.NoError(t, err)
	assert.True(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusHidden, h.providerStatus(t, "provider-1", req.ID))
}

func TestProviderStatusUseCase_NewKeepsRequestAvailable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := h.createRequest(t, "requester")

	adv, err := h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusNew)
	require.NoError(t, err)
	assert.True(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusNew, h.providerStatus(t, "provider-1", req.ID))

	available, err := h.statuses.ListAvailable(ctx, "provider-1")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, req.ID, available[0].ID)

	_, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusViewed)
	require.NoError(t, err)
	adv, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusNew)
	require.NoError(t, err)
	assert.False(t, adv.Applied)
	assert.Equal(t, entities.ProviderStatusViewed, adv.Status())

	_, err = h.statuses.AdvanceStatus(ctx, "provider-1", req.ID, entities.ProviderStatusHidden)
	require.NoError(t, err)
	available, err = h.statuses.ListAvailable(ctx, "provider-1")
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestProviderStatusUseCase_Guards(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.statuses.AdvanceStatus(ctx, "provider-1", "r-1", entities.ProviderStatus(99))
	assert.ErrorIs(t, err, entities.ErrUnknownProviderStatus)

	_, err = h.statuses.AdvanceStatus(ctx, "provider-1", "missing", entities.ProviderStatusViewed)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = h.statuses.AdvanceStatus(ctx, "", "r-1", entities.ProviderStatusViewed)
	assert.ErrorIs(t, err, ErrInvalidProviderID)

	_, err = h.statuses.Get(ctx, "provider-1", "missing")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = h.statuses.ListAvailable(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidProviderID)
}

func TestProviderStatusUseCase_ListAvailable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	create := func(requester string) entities.ServiceRequest {
		h.clock.Advance(time.Minute)
		return h.createRequest(t, requester)
	}
	untouched := create("requester")
	viewed := create("requester")
	quoted := create("requester")
	hidden := create("requester")
	create("provider-1")
	cancelled := create("requester")

	_, err := h.statuses.AdvanceStatus(ctx, "provider-1", viewed.ID, entities.ProviderStatusViewed)
	require.NoError(t, err)
	h.submitQuote(t, "provider-1", quoted.ID, 50)
	_, err = h.statuses.AdvanceStatus(ctx, "provider-1", hidden.ID, entities.ProviderStatusViewed)
	require.NoError(t, err)
	_, err = h.statuses.AdvanceStatus(ctx, "provider-1", hidden.ID, entities.ProviderStatusHidden)
	require.NoError(t, err)
	_, err = h.requests.Cancel(ctx, cancelled.ID, "requester")
	require.NoError(t, err)

	available, err := h.statuses.ListAvailable(ctx, "provider-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(available))
	for _, r := range available {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{untouched.ID, viewed.ID}, ids)

	others, err := h.statuses.ListAvailable(ctx, "provider-2")
	require.NoError(t, err)
	assert.Len(t, others, 5)
}
