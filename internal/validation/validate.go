// internal/validation/validate.go
package validation

import (
	"fmt"
	"strings"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

// BriefInput is the unvalidated request body shape.
type BriefInput struct {
	BusinessName       string   `json:"businessName"`
	Industry           string   `json:"industry"`
	ProductDescription string   `json:"productDescription"`
	TargetCustomer     string   `json:"targetCustomer"`
	UniqueValue        string   `json:"uniqueValue"`
	Goals              []string `json:"goals"`
	Channels           []string `json:"channels"`
	Tone               string   `json:"tone"`
	Offer              string   `json:"offer"`
	Notes              string   `json:"notes"`
	BudgetLevel        string   `json:"budgetLevel"`
	Timeframe          string   `json:"timeframe"`
}

// FieldErrors maps a field name to the first violation found for it.
type FieldErrors map[string]string

const (
	maxNameLen  = 120
	maxShortLen = 200
	maxLongLen  = 600
	maxNotesLen = 1000
)

// Validate checks every field of the brief and returns either a validated
// CampaignBrief or a per-field error map. Exactly one of the two return
// values is non-nil.
func Validate(in BriefInput) (*model.CampaignBrief, FieldErrors) {
	errs := FieldErrors{}

	businessName := requiredString(errs, "businessName", in.BusinessName, maxNameLen)
	industry := requiredString(errs, "industry", in.Industry, maxShortLen)
	productDescription := requiredString(errs, "productDescription", in.ProductDescription, maxLongLen)
	targetCustomer := requiredString(errs, "targetCustomer", in.TargetCustomer, maxShortLen)
	uniqueValue := requiredString(errs, "uniqueValue", in.UniqueValue, maxLongLen)
	offer := requiredString(errs, "offer", in.Offer, maxShortLen)

	goals := enumList(errs, "goals", "goal", in.Goals, model.Goals)
	channels := enumList(errs, "channels", "channel", in.Channels, model.Channels)
	tone := enumValue(errs, "tone", in.Tone, model.Tones)
	budgetLevel := enumValue(errs, "budgetLevel", in.BudgetLevel, model.BudgetLevels)
	timeframe := enumValue(errs, "timeframe", in.Timeframe, model.Timeframes)

	notes := strings.TrimSpace(in.Notes)
	if len(notes) > maxNotesLen {
		errs["notes"] = fmt.Sprintf("notes must be at most %d characters", maxNotesLen)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.CampaignBrief{
		BusinessName:       businessName,
		Industry:           industry,
		ProductDescription: productDescription,
		TargetCustomer:     targetCustomer,
		UniqueValue:        uniqueValue,
		Goals:              goals,
		Channels:           channels,
		Tone:               tone,
		Offer:              offer,
		Notes:              notes,
		BudgetLevel:        budgetLevel,
		Timeframe:          timeframe,
	}, nil
}

func requiredString(errs FieldErrors, field, value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = field + " is required"
		return ""
	}
	if len(trimmed) > max {
		errs[field] = fmt.Sprintf("%s must be at most %d characters", field, max)
		return ""
	}
	return trimmed
}

func enumValue(errs FieldErrors, field, value string, allowed []string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs[field] = field + " is required"
		return ""
	}
	for _, v := range allowed {
		if trimmed == v {
			return trimmed
		}
	}
	errs[field] = fmt.Sprintf("%q is not a valid %s", trimmed, field)
	return ""
}

// enumList deduplicates while preserving insertion order, then checks each
// entry against the vocabulary. The first unknown entry is reported.
func enumList(errs FieldErrors, field, label string, values, allowed []string) []string {
	seen := map[string]bool{}
	deduped := []string{}
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		deduped = append(deduped, trimmed)
	}

	if len(deduped) == 0 {
		errs[field] = fmt.Sprintf("select at least one %s", label)
		return nil
	}

	for _, v := range deduped {
		ok := false
		for _, a := range allowed {
			if v == a {
				ok = true
				break
			}
		}
		if !ok {
			errs[field] = fmt.Sprintf("%q is not a valid %s", v, label)
			return nil
		}
	}
	return deduped
}
