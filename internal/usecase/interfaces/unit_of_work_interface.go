package interfaces

//go:generate mockgen -source=unit_of_work_interface.go -destination=mocks/unit_of_work_interface_mock.go -package=mock_interfaces

import (
	"context"
	"engagement_service/internal/domain/entities"
)

// ChangeSet is every entity a lifecycle operation writes. It is committed as
// one unit: either all rows are stored or none are.
//
// Each entity carries the version it was loaded with (0 for a new row). The
// store rejects the whole set with entities.ErrConflict when any stored
// version moved in the meantime, and bumps every version on success.
type ChangeSet struct {
	Requests         []*entities.ServiceRequest
	Quotes           []*entities.Quote
	ProviderStatuses []*entities.ProviderRequestStatus
	Agreements       []*entities.Agreement
	Workflows        []*entities.WorkflowStatus
}

func (c *ChangeSet) PutRequest(r *entities.ServiceRequest) { c.Requests = append(c.Requests, r) }

func (c *ChangeSet) PutQuote(q *entities.Quote) { c.Quotes = append(c.Quotes, q) }

func (c *ChangeSet) PutProviderStatus(p *entities.ProviderRequestStatus) {
	c.ProviderStatuses = append(c.ProviderStatuses, p)
}

func (c *ChangeSet) PutAgreement(a *entities.Agreement) { c.Agreements = append(c.Agreements, a) }

func (c *ChangeSet) PutWorkflow(w *entities.WorkflowStatus) { c.Workflows = append(c.Workflows, w) }

func (c ChangeSet) Len() int {
	return len(c.Requests) + len(c.Quotes) + len(c.ProviderStatuses) + len(c.Agreements) + len(c.Workflows)
}

// IUnitOfWork commits change sets atomically.
type IUnitOfWork interface {
	Commit(ctx context.Context, changes ChangeSet) error
}
