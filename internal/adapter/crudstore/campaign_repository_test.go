package crudstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/devstore"
)

func newTestRepository(t *testing.T) *CampaignRepository {
	t.Helper()
	srv := httptest.NewServer(devstore.New())
	t.Cleanup(srv.Close)
	base, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewCampaignRepository(srv.Client(), *base, "campaigns")
}

func sampleCampaign() domain.Campaign {
	return domain.Campaign{
		Name:          "Winter Sale",
		Budget:        1234.56,
		StartDate:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		TargetAge:     "45-54",
		TargetGender:  "Male",
		TargetCountry: "United States",
		TargetCity:    "Boston",
		TargetState:   "MA",
		TargetZipCode: "02108",
		Publishers:    "Max",
		Device:        "Tablet",
		Username:      "joe-blow",
	}
}

// TestCreateGetRoundTrip verifies that a created campaign comes back intact
// under the store-assigned identifier.
func TestCreateGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleCampaign())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)

	want := sampleCampaign()
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Budget, got.Budget)
	assert.True(t, want.StartDate.Equal(got.StartDate))
	assert.True(t, want.EndDate.Equal(got.EndDate))
	assert.Equal(t, want.TargetZipCode, got.TargetZipCode)
	assert.Equal(t, want.Username, got.Username)
}

func TestListReturnsAllDocuments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := sampleCampaign()
	second := sampleCampaign()
	second.Name = "Second"
	second.Username = "jane-doe"

	_, err := repo.Create(ctx, first)
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Winter Sale", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestUpdateReplacesDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleCampaign())
	require.NoError(t, err)

	changed := sampleCampaign()
	changed.Name = "Winter Clearance"
	changed.Budget = 99

	updated, err := repo.Update(ctx, saved.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Winter Clearance", updated.Name)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter Clearance", got.Name)
	assert.Equal(t, float64(99), got.Budget)
}

func TestDeleteRemovesDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	saved, err := repo.Create(ctx, sampleCampaign())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	_, err = repo.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, port.ErrRemoteStore)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestNonSuccessStatusIsRemoteStoreError pins the uniform failure contract:
// any non-2xx answer surfaces as port.ErrRemoteStore regardless of status.
func TestNonSuccessStatusIsRemoteStoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	base, err := url.Parse(srv.URL)
	require.NoError(t, err)
	repo := NewCampaignRepository(srv.Client(), *base, "campaigns")

	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, port.ErrRemoteStore)

	_, err = repo.Create(context.Background(), sampleCampaign())
	assert.ErrorIs(t, err, port.ErrRemoteStore)

	assert.ErrorIs(t, repo.Delete(context.Background(), "x"), port.ErrRemoteStore)
}

func TestSeedFillsEmptyCollectionOnce(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)
	seeded := len(all)

	// second run must not duplicate
	require.NoError(t, Seed(ctx, repo))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, seeded)
}
