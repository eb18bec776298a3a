package memory

import (
	"context"
	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"
	"fmt"
	"sort"
	"sync"
)

// Store keeps every engagement entity in process memory. It implements all
// repository ports and the unit of work, so one instance backs a whole
// service when STORE_TYPE=memory and every use case test.
type Store struct {
	mu         sync.RWMutex
	requests   map[string]entities.ServiceRequest
	quotes     map[pairKey]entities.Quote
	quoteIDs   map[string]pairKey
	statuses   map[pairKey]entities.ProviderRequestStatus
	agreements map[string]entities.Agreement
	workflows  map[pairKey]entities.WorkflowStatus
}

// pairKey is (request_id, provider_id), the composite key of quotes, provider
// statuses and workflows.
type pairKey struct {
	requestID  string
	providerID string
}

var (
	_ interfaces.IServiceRequestRepository = (*Store)(nil)
	_ interfaces.IUnitOfWork               = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		requests:   map[string]entities.ServiceRequest{},
		quotes:     map[pairKey]entities.Quote{},
		quoteIDs:   map[string]pairKey{},
		statuses:   map[pairKey]entities.ProviderRequestStatus{},
		agreements: map[string]entities.Agreement{},
		workflows:  map[pairKey]entities.WorkflowStatus{},
	}
}

// Commit applies the change set if every row still carries the version it was
// loaded with.
func (s *Store) Commit(ctx context.Context, cs interfaces.ChangeSet) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkVersions(cs); err != nil {
		return err
	}

	for _, r := range cs.Requests {
		r.Version++
		s.requests[r.ID] = *r
	}
	for _, q := range cs.Quotes {
		q.Version++
		k := pairKey{requestID: q.RequestID, providerID: q.ProviderID}
		s.quotes[k] = *q
		s.quoteIDs[q.ID] = k
	}
	for _, p := range cs.ProviderStatuses {
		p.Version++
		s.statuses[pairKey{requestID: p.RequestID, providerID: p.ProviderID}] = *p
	}
	for _, a := range cs.Agreements {
		a.Version++
		s.agreements[a.QuoteID] = *a
	}
	for _, w := range cs.Workflows {
		w.Version++
		s.workflows[pairKey{requestID: w.RequestID, providerID: w.ProviderID}] = *w
	}
	return nil
}

func (s *Store) checkVersions(cs interfaces.ChangeSet) error {
	for _, r := range cs.Requests {
		if err := versionMatches("service_request", r.ID, s.requests[r.ID].Version, r.Version); err != nil {
			return err
		}
	}
	for _, q := range cs.Quotes {
		k := pairKey{requestID: q.RequestID, providerID: q.ProviderID}
		if err := versionMatches("quote", q.ID, s.quotes[k].Version, q.Version); err != nil {
			return err
		}
	}
	for _, p := range cs.ProviderStatuses {
		k := pairKey{requestID: p.RequestID, providerID: p.ProviderID}
		if err := versionMatches("provider_status", k.String(), s.statuses[k].Version, p.Version); err != nil {
			return err
		}
	}
	for _, a := range cs.Agreements {
		if err := versionMatches("agreement", a.QuoteID, s.agreements[a.QuoteID].Version, a.Version); err != nil {
			return err
		}
	}
	for _, w := range cs.Workflows {
		k := pairKey{requestID: w.RequestID, providerID: w.ProviderID}
		if err := versionMatches("workflow", k.String(), s.workflows[k].Version, w.Version); err != nil {
			return err
		}
	}
	return nil
}

func versionMatches(kind, id string, stored, loaded int64) error {
	if stored != loaded {
		return fmt.Errorf("%s %s version %d, loaded %d: %w", kind, id, stored, loaded, entities.ErrConflict)
	}
	return nil
}

func (k pairKey) String() string { return k.requestID + "/" + k.providerID }

func (s *Store) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests[id], nil
}

func (s *Store) ListByStatus(ctx context.Context, statuses ...entities.RequestStatus) ([]entities.ServiceRequest, error) {
	_ = ctx
	want := make(map[entities.RequestStatus]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}

	s.mu.RLock()
	out := make([]entities.ServiceRequest, 0)
	for _, r := range s.requests {
		if want[r.Status] {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Quotes exposes the quote repository view of the store.
func (s *Store) Quotes() interfaces.IQuoteRepository { return quoteView{s} }

// ProviderStatuses exposes the provider status repository view of the store.
func (s *Store) ProviderStatuses() interfaces.IProviderStatusRepository { return statusView{s} }

// Agreements exposes the agreement repository view of the store.
func (s *Store) Agreements() interfaces.IAgreementRepository { return agreementView{s} }

// Workflows exposes the workflow repository view of the store.
func (s *Store) Workflows() interfaces.IWorkflowRepository { return workflowView{s} }

type quoteView struct{ s *Store }

func (v quoteView) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	k, ok := v.s.quoteIDs[id]
	if !ok {
		return entities.Quote{}, nil
	}
	return v.s.quotes[k], nil
}

func (v quoteView) GetByProviderAndRequest(ctx context.Context, providerID, requestID string) (entities.Quote, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return v.s.quotes[pairKey{requestID: requestID, providerID: providerID}], nil
}

func (v quoteView) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	_ = ctx
	v.s.mu.RLock()
	out := make([]entities.Quote, 0)
	for k, q := range v.s.quotes {
		if k.requestID == requestID {
			out = append(out, q)
		}
	}
	v.s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type statusView struct{ s *Store }

func (v statusView) Get(ctx context.Context, providerID, requestID string) (entities.ProviderRequestStatus, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return v.s.statuses[pairKey{requestID: requestID, providerID: providerID}], nil
}

func (v statusView) ListByProviderID(ctx context.Context, providerID string) ([]entities.ProviderRequestStatus, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	out := make([]entities.ProviderRequestStatus, 0)
	for k, p := range v.s.statuses {
		if k.providerID == providerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type agreementView struct{ s *Store }

func (v agreementView) GetByQuoteID(ctx context.Context, quoteID string) (entities.Agreement, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return v.s.agreements[quoteID], nil
}

type workflowView struct{ s *Store }

func (v workflowView) Get(ctx context.Context, requestID, providerID string) (entities.WorkflowStatus, error) {
	_ = ctx
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return v.s.workflows[pairKey{requestID: requestID, providerID: providerID}], nil
}
