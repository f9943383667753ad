package crudstore

import (
	"context"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// Seed inserts demo campaigns for the static users when the collection is
// empty. It exists so a fresh embedded store renders a populated dashboard;
// a non-empty collection is left untouched.
func Seed(ctx context.Context, repo port.CampaignRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	start := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	demo := []domain.Campaign{
		{
			Name: "Back to School", Budget: 15000,
			StartDate: start, EndDate: start.AddDate(0, 2, 0),
			TargetAge: "18-24", TargetGender: "Female",
			TargetCountry: "United States", TargetCity: "Austin",
			TargetState: "TX", TargetZipCode: "78701",
			Publishers: "Hulu", Device: "Mobile",
			Username: "joe-blow",
		},
		{
			Name: "Holiday Push", Budget: 250000,
			StartDate: start.AddDate(0, 3, 0), EndDate: start.AddDate(0, 4, 0),
			TargetAge: "35-44", TargetGender: "Male",
			TargetCountry: "United States", TargetCity: "Chicago",
			TargetState: "IL", TargetZipCode: "60601",
			Publishers: "Roku", Device: "Tablet",
			Username: "joe-blow",
		},
		{
			Name: "Spring Preview", Budget: 7200.50,
			StartDate: start.AddDate(0, 6, 0), EndDate: start.AddDate(0, 7, 0),
			TargetAge: "25-34", TargetGender: "Female",
			TargetCountry: "United States", TargetCity: "Seattle",
			TargetState: "WA", TargetZipCode: "98101",
			Publishers: "Peacock", Device: "Desktop",
			Username: "jane-doe",
		},
	}

	for _, c := range demo {
		if _, err := repo.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
