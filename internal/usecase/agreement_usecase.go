package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"engagement_service/internal/domain/entities"
	"engagement_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IAgreementUseCase reconciles the two parties' answers on a quote.
//
// Both sides answer independently. The first answer creates the agreement, a
// rejection closes it and puts the request back on the market, and the
// second acceptance finalizes the deal: agreement, quote, request assignment,
// provider status and workflow are committed together.
type IAgreementUseCase interface {
	RespondToAgreement(ctx context.Context, actingID, quoteID string, accepted bool) (AgreementResult, error)
	GetByQuoteID(ctx context.Context, actingID, quoteID string) (entities.Agreement, error)
}

// AgreementResult describes the agreement after a response. Changed is false
// for duplicate answers that left everything as it was.
type AgreementResult struct {
	Agreement entities.Agreement
	Party     entities.Party
	Changed   bool
}

func (r AgreementResult) Finalized() bool { return r.Agreement.IsFinalized() }

type AgreementUseCase struct {
	deps Dependencies
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(deps Dependencies) *AgreementUseCase {
	return &AgreementUseCase{deps: deps}
}

func (u *AgreementUseCase) RespondToAgreement(ctx context.Context, actingID, quoteID string, accepted bool) (AgreementResult, error) {
	actingID = strings.TrimSpace(actingID)
	quoteID = strings.TrimSpace(quoteID)
	if actingID == "" {
		return AgreementResult{}, ErrInvalidProfileID
	}
	if quoteID == "" {
		return AgreementResult{}, ErrInvalidQuoteID
	}
	log.Printf("[agreement][usecase] respond start quote_id=%s acting_id=%s accepted=%t", quoteID, actingID, accepted)

	located, err := u.deps.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return AgreementResult{}, err
	}
	if located.ID == "" {
		return AgreementResult{}, ErrQuoteNotFound
	}

	// Agreements belong to one request, so the request lock serializes them
	// together with every other write on that request.
	unlock := u.deps.lock(located.RequestID)
	res, effects, err := u.respondLocked(ctx, actingID, located, accepted)
	unlock()
	if err != nil {
		log.Printf("[agreement][usecase] respond failed quote_id=%s acting_id=%s err=%v", quoteID, actingID, err)
		return AgreementResult{}, err
	}
	effects.flush(u.deps.Effects)

	log.Printf("[agreement][usecase] respond done quote_id=%s party=%s status=%s changed=%t", quoteID, res.Party, res.Agreement.Status, res.Changed)
	return res, nil
}

func (u *AgreementUseCase) respondLocked(ctx context.Context, actingID string, located entities.Quote, accepted bool) (AgreementResult, effectBatch, error) {
	// Reload through the primary key: the id lookup may lag behind writes.
	quote, err := u.deps.Quotes.GetByProviderAndRequest(ctx, located.ProviderID, located.RequestID)
	if err != nil {
		return AgreementResult{}, nil, err
	}
	if quote.ID == "" {
		return AgreementResult{}, nil, ErrQuoteNotFound
	}

	req, err := u.deps.loadRequest(ctx, quote.RequestID)
	if err != nil {
		return AgreementResult{}, nil, err
	}
	party, err := entities.ResolveParty(req, quote, actingID)
	if err != nil {
		return AgreementResult{}, nil, err
	}

	now := u.deps.now()
	agr, err := u.deps.Agreements.GetByQuoteID(ctx, quote.ID)
	if err != nil {
		return AgreementResult{}, nil, err
	}
	if agr.ID == "" {
		agr = entities.NewAgreement(uuid.NewString(), quote, req.RequesterID, now)
	}

	if !accepted {
		return u.reject(ctx, &agr, &req, party, actingID, now)
	}
	return u.accept(ctx, &agr, &req, &quote, party, actingID, now)
}

func (u *AgreementUseCase) reject(ctx context.Context, agr *entities.Agreement, req *entities.ServiceRequest, party entities.Party, actingID string, now time.Time) (AgreementResult, effectBatch, error) {
	changed, err := agr.Reject(party, now)
	if err != nil {
		return AgreementResult{}, nil, err
	}
	if !changed {
		return AgreementResult{Agreement: *agr, Party: party}, nil, nil
	}

	var cs interfaces.ChangeSet
	cs.PutAgreement(agr)
	if _, err := u.deps.advanceProviderStatus(ctx, &cs, agr.ProviderID, req.ID, entities.ProviderStatusHidden, now); err != nil {
		return AgreementResult{}, nil, err
	}
	reopened := req.ReturnToOpen(now)
	if reopened {
		cs.PutRequest(req)
	}

	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		return AgreementResult{}, nil, err
	}

	var effects effectBatch
	effects.message(actingID, agr.Counterparty(party), req.ID, fmt.Sprintf("The %s declined the quote for %q.", party, req.Title))
	if reopened {
		effects.requestUpdate(req.ID, interfaces.RequestUpdateReopened)
	}
	return AgreementResult{Agreement: *agr, Party: party, Changed: true}, effects, nil
}

func (u *AgreementUseCase) accept(ctx context.Context, agr *entities.Agreement, req *entities.ServiceRequest, quote *entities.Quote, party entities.Party, actingID string, now time.Time) (AgreementResult, effectBatch, error) {
	// Re-entry after finalization returns the stored result without side effects.
	if agr.IsFinalized() {
		return AgreementResult{Agreement: *agr, Party: party}, nil, nil
	}
	if agr.IsRejected() {
		return AgreementResult{}, nil, entities.ErrAgreementRejected
	}
	if quote.IsExpired(now) {
		return AgreementResult{}, nil, ErrQuoteExpired
	}
	// A provider the owner assigned directly may still confirm the deal.
	confirming := req.IsAssignedTo(agr.ProviderID) && !req.Status.IsTerminal()
	if !req.Status.IsOpen() && !confirming {
		return AgreementResult{}, nil, ErrRequestNotNegotiable
	}

	changed, err := agr.Accept(party, now)
	if err != nil {
		return AgreementResult{}, nil, err
	}
	if !changed {
		return AgreementResult{Agreement: *agr, Party: party}, nil, nil
	}

	var cs interfaces.ChangeSet
	var effects effectBatch
	cs.PutAgreement(agr)
	effects.quoteAcceptance(quote.ID, actingID, party == entities.PartyRequester)

	if agr.BothAccepted() {
		if err := u.finalize(ctx, &cs, agr, req, quote, confirming, now); err != nil {
			return AgreementResult{}, nil, err
		}
		if confirming {
			text := fmt.Sprintf("Deal confirmed: %q for %s.", req.Title, quote.Price.StringFixed(2))
			effects.message(actingID, agr.Counterparty(party), req.ID, text)
		} else {
			text := fmt.Sprintf("Deal closed: %q was assigned for %s.", req.Title, quote.Price.StringFixed(2))
			effects.message(actingID, agr.Counterparty(party), req.ID, text)
			effects.requestUpdate(req.ID, interfaces.RequestUpdateAssigned)
		}
	} else {
		text := fmt.Sprintf("The %s accepted the quote for %q and is waiting for your confirmation.", party, req.Title)
		effects.message(actingID, agr.Counterparty(party), req.ID, text)
	}

	if err := u.deps.UnitOfWork.Commit(ctx, cs); err != nil {
		return AgreementResult{}, nil, err
	}
	if agr.IsFinalized() {
		log.Printf("[agreement][usecase] finalized quote_id=%s request_id=%s provider_id=%s", quote.ID, req.ID, agr.ProviderID)
	}
	return AgreementResult{Agreement: *agr, Party: party, Changed: true}, effects, nil
}

// finalize queues the mutual-acceptance writes. Any precondition failure
// aborts before anything is committed. When the provider is already assigned
// the request and its workflow are left as they are.
func (u *AgreementUseCase) finalize(ctx context.Context, cs *interfaces.ChangeSet, agr *entities.Agreement, req *entities.ServiceRequest, quote *entities.Quote, alreadyAssigned bool, now time.Time) error {
	if !agr.Finalize(now) {
		return entities.ErrAgreementFinalized
	}

	quote.MarkAccepted(now)
	cs.PutQuote(quote)

	if _, err := u.deps.advanceProviderStatus(ctx, cs, agr.ProviderID, req.ID, entities.ProviderStatusAssigned, now); err != nil {
		return err
	}
	if alreadyAssigned {
		return nil
	}

	if err := req.Assign(agr.ProviderID, now); err != nil {
		return err
	}
	cs.PutRequest(req)

	wf, err := u.deps.startWorkflow(ctx, req.ID, agr.ProviderID, now)
	if err != nil {
		return err
	}
	cs.PutWorkflow(&wf)
	return nil
}

func (u *AgreementUseCase) GetByQuoteID(ctx context.Context, actingID, quoteID string) (entities.Agreement, error) {
	actingID = strings.TrimSpace(actingID)
	quoteID = strings.TrimSpace(quoteID)
	if actingID == "" {
		return entities.Agreement{}, ErrInvalidProfileID
	}
	if quoteID == "" {
		return entities.Agreement{}, ErrInvalidQuoteID
	}

	agr, err := u.deps.Agreements.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if agr.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	if actingID != agr.RequesterID && actingID != agr.ProviderID {
		return entities.Agreement{}, entities.ErrNotAParty
	}
	return agr, nil
}
