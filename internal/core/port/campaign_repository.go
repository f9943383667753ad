package port

import (
	"context"
	"errors"

	"adboard/internal/core/domain"
)

// ErrRemoteStore reports that a call to the remote document store failed,
// either at the transport level or with a non-2xx status. The store gives no
// useful distinction between failure modes, so callers treat every wrapped
// instance the same way: log it and leave the view as it was.
var ErrRemoteStore = errors.New("remote store request failed")

// CampaignRepository is the outbound port to the remote campaign collection.
// Implementations perform one HTTP round trip per call with no retries,
// batching or caching; the remote store is the single system of record.
type CampaignRepository interface {
	// List returns every document in the collection. Ownership filtering is
	// the caller's job; the store has no notion of access control.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns the campaign with the given identifier.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Create stores a new campaign. The identifier must be empty; the store
	// assigns one and the returned campaign carries it.
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// Update replaces the document with the given identifier in full. There
	// are no partial-update semantics.
	Update(ctx context.Context, id string, c domain.Campaign) (*domain.Campaign, error)
	// Delete removes the document with the given identifier.
	Delete(ctx context.Context, id string) error
}
