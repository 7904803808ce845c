// internal/planner/parser.go
package planner

import (
	"encoding/json"
	"strings"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

// ParseResult is the outcome of one parse attempt. When Plan is nil, Raw
// holds the model's original text so the caller can surface it unmodified.
type ParseResult struct {
	Plan    *model.CampaignPlan
	Raw     string
	Message string
}

// Parse extracts a complete CampaignPlan from model output. Strict decode
// first; if that fails, retry on the substring between the first '{' and the
// last '}', which handles models that wrap the JSON in prose or code fences.
// A stray '}' in leading prose can defeat the substring pass — known
// limitation, kept deliberately simple.
func Parse(modelText string) ParseResult {
	trimmed := strings.TrimSpace(modelText)

	if plan, ok := decodePlan(trimmed); ok {
		return ParseResult{Plan: plan}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		if plan, ok := decodePlan(trimmed[start : end+1]); ok {
			return ParseResult{
				Plan:    plan,
				Message: "plan was recovered from surrounding model text",
			}
		}
	}

	return ParseResult{
		Raw:     modelText,
		Message: "model output could not be parsed as a structured plan",
	}
}

func decodePlan(s string) (*model.CampaignPlan, bool) {
	var plan model.CampaignPlan
	if err := json.Unmarshal([]byte(s), &plan); err != nil {
		return nil, false
	}
	if !planComplete(&plan) {
		return nil, false
	}
	return &plan, true
}

// planComplete is the shape check behind "valid plan": every required string
// non-empty, every list non-empty.
func planComplete(p *model.CampaignPlan) bool {
	if p.Summary.NorthStar == "" || p.Summary.PositioningTheme == "" {
		return false
	}
	if len(p.Summary.SuccessMetrics) == 0 ||
		len(p.IdealCustomerProfile.CompanyTraits) == 0 ||
		len(p.IdealCustomerProfile.BuyerPersona) == 0 ||
		len(p.IdealCustomerProfile.PainPoints) == 0 {
		return false
	}
	if len(p.MessagingPillars) == 0 || len(p.ChannelStrategy) == 0 ||
		len(p.AutomationWorkflow) == 0 || len(p.Experiments) == 0 ||
		len(p.NextSteps) == 0 {
		return false
	}
	for _, pillar := range p.MessagingPillars {
		if pillar.Title == "" || pillar.Angle == "" || len(pillar.ProofPoints) == 0 {
			return false
		}
	}
	for _, play := range p.ChannelStrategy {
		if play.Channel == "" || play.Objective == "" || play.Play == "" ||
			play.Cadence == "" || play.SampleCopy == "" {
			return false
		}
	}
	for _, flow := range p.AutomationWorkflow {
		if flow.Name == "" || flow.Trigger == "" || len(flow.Steps) == 0 {
			return false
		}
	}
	for _, exp := range p.Experiments {
		if exp.Hypothesis == "" || exp.Experiment == "" || exp.Metric == "" {
			return false
		}
	}
	return true
}
