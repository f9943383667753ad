package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a fully valid form submission that individual tests
// mutate to trigger a single rule.
func validInput() CampaignInput {
	return CampaignInput{
		Name:          "Summer Launch",
		Budget:        "2500.50",
		StartDate:     "2026-06-01",
		EndDate:       "2026-08-31",
		TargetAge:     "25-34",
		TargetGender:  "Female",
		TargetCountry: "United States",
		TargetCity:    "Austin",
		TargetState:   "TX",
		TargetZipCode: "78701",
		Publishers:    "Hulu",
		Device:        "Mobile",
	}
}

func TestValidateAcceptsFullInput(t *testing.T) {
	c, errs := Validate(validInput())
	require.Empty(t, errs)

	assert.Equal(t, "Summer Launch", c.Name)
	assert.Equal(t, 2500.50, c.Budget)
	assert.Equal(t, "78701", c.TargetZipCode)
	assert.True(t, c.StartDate.Before(c.EndDate))
}

func TestValidateBudget(t *testing.T) {
	cases := []struct {
		name    string
		budget  string
		wantErr string
	}{
		{"missing", "", "Budget is required"},
		{"not a number", "a lot", "Budget must be a number"},
		{"zero", "0", "Must be at least $1"},
		{"negative", "-5", "Must be at least $1"},
		{"below minimum", "0.99", "Must be at least $1"},
		{"at minimum", "1", ""},
		{"at maximum", "100000000", ""},
		{"above maximum", "100000001", "Cannot exceed $100,000,000"},
		{"decimal", "1234.56", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Budget = tc.budget
			_, errs := Validate(in)
			assert.Equal(t, tc.wantErr, errs["budget"])
		})
	}
}

func TestValidateDateOrdering(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		wantErr    string
	}{
		{"start before end", "2026-01-01", "2026-01-02", ""},
		{"start equals end", "2026-01-01", "2026-01-01", "End date must be after start date"},
		{"start after end", "2026-02-01", "2026-01-01", "End date must be after start date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.StartDate = tc.start
			in.EndDate = tc.end
			_, errs := Validate(in)
			assert.Equal(t, tc.wantErr, errs["end_date"])
			assert.Empty(t, errs["start_date"])
		})
	}
}

func TestValidateMissingDates(t *testing.T) {
	in := validInput()
	in.StartDate = ""
	in.EndDate = ""
	_, errs := Validate(in)
	assert.Equal(t, "Start date is required", errs["start_date"])
	assert.Equal(t, "End date is required", errs["end_date"])
}

func TestValidateZipCode(t *testing.T) {
	cases := []struct {
		zip     string
		want    string
		wantErr bool
	}{
		{"78701", "78701", false},
		{"78701-1234", "78701", false},
		{"7870", "", true},
		{"787011", "", true},
		{"78701-12", "", true},
		{"78701-12345", "", true},
		{"abcde", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.zip, func(t *testing.T) {
			in := validInput()
			in.TargetZipCode = tc.zip
			c, errs := Validate(in)
			if tc.wantErr {
				assert.Equal(t, "Must be XXXXX or XXXXX-XXXX format", errs["target_zip_code"])
				return
			}
			require.Empty(t, errs)
			assert.Equal(t, tc.want, c.TargetZipCode)
		})
	}
}

func TestValidateEnums(t *testing.T) {
	fields := []struct {
		field string
		set   func(in *CampaignInput, v string)
	}{
		{"target_age", func(in *CampaignInput, v string) { in.TargetAge = v }},
		{"target_gender", func(in *CampaignInput, v string) { in.TargetGender = v }},
		{"target_state", func(in *CampaignInput, v string) { in.TargetState = v }},
		{"publishers", func(in *CampaignInput, v string) { in.Publishers = v }},
		{"device", func(in *CampaignInput, v string) { in.Device = v }},
	}
	for _, f := range fields {
		t.Run(f.field, func(t *testing.T) {
			in := validInput()
			f.set(&in, "not-a-member")
			_, errs := Validate(in)
			assert.Equal(t, "Invalid value", errs[f.field])
		})
	}
}

// Empty name, country and city have always been accepted; keep it that way
// until the product decides otherwise.
func TestValidateAllowsEmptyFreeTextFields(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.TargetCountry = ""
	in.TargetCity = ""
	_, errs := Validate(in)
	assert.Empty(t, errs)
}

func TestInputFromCampaignRoundTrips(t *testing.T) {
	c, errs := Validate(validInput())
	require.Empty(t, errs)

	back, errs := Validate(InputFromCampaign(c))
	require.Empty(t, errs)
	assert.Equal(t, c, back)
}
