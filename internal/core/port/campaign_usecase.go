package port

import (
	"context"

	"adboard/internal/core/domain"
	"adboard/internal/core/schema"
)

// CampaignUseCase defines the business operations behind the dashboard
// views. This interface is the primary port into the application domain;
// the HTTP layer depends on it and tests substitute fakes for it.
type CampaignUseCase interface {
	// ListOwned returns the campaigns owned by username. The remote
	// collection is fetched in full and filtered here; see DESIGN.md for
	// why filtering stays on this side of the wire.
	ListOwned(ctx context.Context, username string) ([]domain.Campaign, error)

	// Get returns a single campaign by identifier.
	Get(ctx context.Context, id string) (*domain.Campaign, error)

	// Submit validates the form input and writes the campaign. An empty id
	// creates a new document, a non-empty id replaces the existing one. The
	// acting user is stamped as the owner on create and preserved on
	// update. When validation fails the field errors are returned and the
	// store is not touched.
	Submit(ctx context.Context, actor domain.User, id string, in schema.CampaignInput) (*domain.Campaign, schema.FieldErrors, error)

	// Delete removes a campaign by identifier.
	Delete(ctx context.Context, id string) error
}
