package entities

// Party is the side an acting profile plays on a quote.
type Party string

const (
	PartyRequester Party = "requester"
	PartyProvider  Party = "provider"
)

// ResolveParty decides which side actingID plays from the stored request and
// quote, never from caller-supplied role flags.
func ResolveParty(req ServiceRequest, quote Quote, actingID string) (Party, error) {
	switch {
	case actingID == "":
		return "", ErrNotAParty
	case req.ID != quote.RequestID:
		return "", ErrNotAParty
	case req.RequesterID == actingID:
		return PartyRequester, nil
	case quote.ProviderID == actingID:
		return PartyProvider, nil
	}
	return "", ErrNotAParty
}

// Counterparty returns the profile on the other side of the agreement.
func (a Agreement) Counterparty(party Party) string {
	if party == PartyRequester {
		return a.ProviderID
	}
	return a.RequesterID
}
