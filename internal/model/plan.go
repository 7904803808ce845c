// internal/model/plan.go
package model

type CampaignSummary struct {
	NorthStar        string   `json:"northStar"`
	SuccessMetrics   []string `json:"successMetrics"`
	PositioningTheme string   `json:"positioningTheme"`
}

type IdealCustomerProfile struct {
	CompanyTraits []string `json:"companyTraits"`
	BuyerPersona  []string `json:"buyerPersona"`
	PainPoints    []string `json:"painPoints"`
}

type MessagingPillar struct {
	Title       string   `json:"title"`
	Angle       string   `json:"angle"`
	ProofPoints []string `json:"proofPoints"`
}

type ChannelPlay struct {
	Channel    string `json:"channel"`
	Objective  string `json:"objective"`
	Play       string `json:"play"`
	Cadence    string `json:"cadence"`
	SampleCopy string `json:"sampleCopy"`
}

type AutomationFlow struct {
	Name    string   `json:"name"`
	Trigger string   `json:"trigger"`
	Steps   []string `json:"steps"`
}

type Experiment struct {
	Hypothesis string `json:"hypothesis"`
	Experiment string `json:"experiment"`
	Metric     string `json:"metric"`
}

// CampaignPlan is the blueprint returned to the client. ChannelStrategy
// entries correspond 1:1, in order, to the brief's channels.
type CampaignPlan struct {
	Summary              CampaignSummary      `json:"summary"`
	IdealCustomerProfile IdealCustomerProfile `json:"idealCustomerProfile"`
	MessagingPillars     []MessagingPillar    `json:"messagingPillars"`
	ChannelStrategy      []ChannelPlay        `json:"channelStrategy"`
	AutomationWorkflow   []AutomationFlow     `json:"automationWorkflow"`
	Experiments          []Experiment         `json:"experiments"`
	NextSteps            []string             `json:"nextSteps"`
}
