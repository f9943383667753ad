package domain

import "time"

// Campaign represents an advertising campaign as stored in the remote
// document collection. The ID is assigned by the store on creation and is
// absent from create payloads; Username records the owner and is stamped
// from the acting session, never taken from the form.
//
// Dates travel as ISO timestamps and budgets as plain JSON numbers, which
// is what the hosted store echoes back.
type Campaign struct {
	ID            string    `json:"_id,omitempty"`
	Name          string    `json:"name"`
	Budget        float64   `json:"budget"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TargetAge     string    `json:"target_age"`
	TargetGender  string    `json:"target_gender"`
	TargetCountry string    `json:"target_country"`
	TargetCity    string    `json:"target_city"`
	TargetState   string    `json:"target_state"`
	TargetZipCode string    `json:"target_zip_code"`
	Publishers    string    `json:"publishers"`
	Device        string    `json:"device"`
	Username      string    `json:"username,omitempty"`
}

// Budget bounds in whole dollars.
const (
	MinBudget = 1
	MaxBudget = 100_000_000
)

// AgeRanges is the closed set of target age brackets.
var AgeRanges = []string{"<18", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// Genders is the closed set of target genders.
var Genders = []string{"Male", "Female"}

// Publishers is the closed set of streaming publishers a campaign can run on.
var Publishers = []string{"Hulu", "Netflix", "Disney+", "Roku", "Peacock", "Max"}

// Devices is the closed set of target devices.
var Devices = []string{"Mobile", "Desktop", "Tablet"}

// States lists the USPS codes for the 50 states plus DC.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}
