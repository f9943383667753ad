package usecase

import (
	"context"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/schema"
)

// CampaignUseCase provides the business logic behind the dashboard views:
// ownership filtering, form validation and owner stamping. It implements
// port.CampaignUseCase on top of a campaign repository.
type CampaignUseCase struct {
	repo port.CampaignRepository
}

// NewCampaignUseCase creates a usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// ListOwned fetches the whole collection and keeps the campaigns owned by
// username. The store has no access control, so filtering happens here.
func (u *CampaignUseCase) ListOwned(ctx context.Context, username string) ([]domain.Campaign, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if c.Username == username {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// Get returns a single campaign by identifier.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// Submit validates the input and writes the campaign, creating when id is
// empty and replacing otherwise. The acting user becomes the owner; the
// form has no say in the username field. Validation failures return the
// field errors without touching the store.
func (u *CampaignUseCase) Submit(ctx context.Context, actor domain.User, id string, in schema.CampaignInput) (*domain.Campaign, schema.FieldErrors, error) {
	c, errs := schema.Validate(in)
	if len(errs) > 0 {
		return nil, errs, nil
	}
	c.Username = actor.Username

	var (
		saved *domain.Campaign
		err   error
	)
	if id == "" {
		saved, err = u.repo.Create(ctx, c)
	} else {
		saved, err = u.repo.Update(ctx, id, c)
	}
	if err != nil {
		return nil, nil, err
	}
	return saved, nil, nil
}

// Delete removes a campaign by identifier.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
