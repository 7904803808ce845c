// internal/model/brief.go
package model

// Closed vocabularies for the brief's enumerated fields. The validator
// rejects anything outside these sets.
var (
	Goals = []string{
		"Generate qualified leads",
		"Book demos",
		"Grow signups",
		"Increase sales",
		"Build brand awareness",
	}

	Channels = []string{
		"Email",
		"LinkedIn",
		"Paid social",
		"SEO/Content",
		"Cold outreach",
		"Webinars",
	}

	Tones = []string{
		"Professional",
		"Friendly",
		"Bold",
		"Playful",
		"Authoritative",
	}

	BudgetLevels = []string{"lean", "balanced", "aggressive"}

	Timeframes = []string{"2 weeks", "30 days", "90 days"}
)

// CampaignBrief is a validated plan request. Fields are trimmed and
// guaranteed non-empty (Notes excepted); Goals and Channels are deduplicated
// non-empty subsets of the vocabularies above, insertion order preserved.
type CampaignBrief struct {
	BusinessName       string   `json:"businessName"`
	Industry           string   `json:"industry"`
	ProductDescription string   `json:"productDescription"`
	TargetCustomer     string   `json:"targetCustomer"`
	UniqueValue        string   `json:"uniqueValue"`
	Goals              []string `json:"goals"`
	Channels           []string `json:"channels"`
	Tone               string   `json:"tone"`
	Offer              string   `json:"offer"`
	Notes              string   `json:"notes,omitempty"`
	BudgetLevel        string   `json:"budgetLevel"`
	Timeframe          string   `json:"timeframe"`
}
