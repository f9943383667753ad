// Package schema validates raw campaign form input and normalises it into a
// domain.Campaign. Validation is pure: the same input always yields the same
// campaign or the same field-indexed error messages, and nothing is touched
// outside the arguments.
package schema

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"adboard/internal/core/domain"
)

// FieldErrors maps a form field name to a human-readable message. A nil or
// empty map means the input validated.
type FieldErrors map[string]string

// zipPattern accepts XXXXX or XXXXX-XXXX; the four-digit suffix is stripped
// before storage so the canonical form is always five digits.
var zipPattern = regexp.MustCompile(`(^\d{5}$)|(^\d{5}-\d{4}$)`)

// CampaignInput carries the raw form values exactly as submitted. All fields
// are strings; coercion happens in Validate.
type CampaignInput struct {
	Name          string
	Budget        string
	StartDate     string
	EndDate       string
	TargetAge     string
	TargetGender  string
	TargetCountry string
	TargetCity    string
	TargetState   string
	TargetZipCode string
	Publishers    string
	Device        string
}

// Validate checks in against the campaign ruleset and returns the normalised
// campaign. When any rule fails the returned FieldErrors is non-empty and
// the campaign value must be ignored.
//
// Name, country and city accept any string including the empty one. That
// matches the behaviour the dashboard has always had, intended or not.
func Validate(in CampaignInput) (domain.Campaign, FieldErrors) {
	errs := FieldErrors{}
	var c domain.Campaign

	c.Name = in.Name
	c.TargetCountry = in.TargetCountry
	c.TargetCity = in.TargetCity

	switch budget := strings.TrimSpace(in.Budget); {
	case budget == "":
		errs["budget"] = "Budget is required"
	default:
		v, err := strconv.ParseFloat(budget, 64)
		switch {
		case err != nil:
			errs["budget"] = "Budget must be a number"
		case v < domain.MinBudget:
			errs["budget"] = "Must be at least $1"
		case v > domain.MaxBudget:
			errs["budget"] = "Cannot exceed $100,000,000"
		default:
			c.Budget = v
		}
	}

	start, startOK := parseDate(in.StartDate)
	if !startOK {
		errs["start_date"] = "Start date is required"
	} else {
		c.StartDate = start
	}
	end, endOK := parseDate(in.EndDate)
	if !endOK {
		errs["end_date"] = "End date is required"
	} else {
		c.EndDate = end
	}
	if startOK && endOK && !start.Before(end) {
		errs["end_date"] = "End date must be after start date"
	}

	if !zipPattern.MatchString(in.TargetZipCode) {
		errs["target_zip_code"] = "Must be XXXXX or XXXXX-XXXX format"
	} else {
		// canonical five-digit form
		c.TargetZipCode = in.TargetZipCode[:5]
	}

	c.TargetAge = enum(in.TargetAge, domain.AgeRanges, "target_age", errs)
	c.TargetGender = enum(in.TargetGender, domain.Genders, "target_gender", errs)
	c.TargetState = enum(in.TargetState, domain.States, "target_state", errs)
	c.Publishers = enum(in.Publishers, domain.Publishers, "publishers", errs)
	c.Device = enum(in.Device, domain.Devices, "device", errs)

	if len(errs) > 0 {
		return domain.Campaign{}, errs
	}
	return c, nil
}

// InputFromCampaign converts a stored campaign back into form values, used
// to prefill the edit form. Dates are rendered in the HTML date-input format.
func InputFromCampaign(c domain.Campaign) CampaignInput {
	return CampaignInput{
		Name:          c.Name,
		Budget:        strconv.FormatFloat(c.Budget, 'f', -1, 64),
		StartDate:     c.StartDate.Format(time.DateOnly),
		EndDate:       c.EndDate.Format(time.DateOnly),
		TargetAge:     c.TargetAge,
		TargetGender:  c.TargetGender,
		TargetCountry: c.TargetCountry,
		TargetCity:    c.TargetCity,
		TargetState:   c.TargetState,
		TargetZipCode: c.TargetZipCode,
		Publishers:    c.Publishers,
		Device:        c.Device,
	}
}

// parseDate accepts the HTML date-input format and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// enum returns value when it is a member of set, otherwise records a generic
// message under field and returns the empty string.
func enum(value string, set []string, field string, errs FieldErrors) string {
	if !slices.Contains(set, value) {
		errs[field] = "Invalid value"
		return ""
	}
	return value
}
