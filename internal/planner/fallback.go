// internal/planner/fallback.go
package planner

import (
	"fmt"
	"strings"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

// SynthesizeFallback builds a complete plan from the brief alone, with no
// external calls. Used when no model credential is configured or the model
// call fails. Pure and deterministic; inputs are already validated non-empty,
// so this never fails. The {first_name} token in sampleCopy is a placeholder
// for the caller's own mail-merge step.
func SynthesizeFallback(brief *model.CampaignBrief) *model.CampaignPlan {
	cadence := "Weekly"
	if brief.Timeframe == "2 weeks" {
		cadence = "3x weekly"
	}

	plays := make([]model.ChannelPlay, 0, len(brief.Channels))
	for _, channel := range brief.Channels {
		plays = append(plays, model.ChannelPlay{
			Channel:   channel,
			Objective: "Start conversations with high-fit prospects",
			Play: fmt.Sprintf("Run a %s-budget sequence of value-first touches before any direct ask.",
				brief.BudgetLevel),
			Cadence: cadence,
			SampleCopy: fmt.Sprintf("Hi {first_name} — %s. Worth a quick look?",
				brief.Offer),
		})
	}

	return &model.CampaignPlan{
		Summary: model.CampaignSummary{
			NorthStar: fmt.Sprintf("Make %s the obvious choice for its best-fit buyers within %s.",
				brief.BusinessName, brief.Timeframe),
			SuccessMetrics: []string{
				"Qualified leads per week",
				"Reply rate on outbound touches",
				"Meetings booked",
				"Cost per qualified lead",
			},
			PositioningTheme: fmt.Sprintf("Lead every message with %s.",
				strings.ToLower(brief.UniqueValue)),
		},
		IdealCustomerProfile: model.IdealCustomerProfile{
			CompanyTraits: []string{
				fmt.Sprintf("Operates in or adjacent to %s", brief.Industry),
				"Has an active budget for solving this problem",
				"Shows buying signals such as hiring or tooling changes",
			},
			BuyerPersona: []string{
				"Owns the number this product moves",
				"Short on time and skeptical of vendor claims",
				"Responds to peer proof and concrete outcomes",
			},
			PainPoints: []string{
				"Current approach is manual and inconsistent",
				"Hard to attribute results to effort",
				"Existing tools are either too heavy or too shallow",
			},
		},
		MessagingPillars: []model.MessagingPillar{
			{
				Title: "Value driver",
				Angle: fmt.Sprintf("Show exactly how %s changes the buyer's week.",
					brief.ProductDescription),
				ProofPoints: []string{
					"Lead with the before/after story",
					"Quantify the time or money saved",
					"Name the specific workflow it replaces",
				},
			},
			{
				Title: "Risk reducer",
				Angle: "Make trying it feel safe and reversible.",
				ProofPoints: []string{
					"Offer a low-commitment first step",
					"Surface social proof early",
					"Answer the top objection before it is raised",
				},
			},
		},
		ChannelStrategy: plays,
		AutomationWorkflow: []model.AutomationFlow{
			{
				Name:    "New lead follow-up",
				Trigger: "A prospect responds to the campaign offer",
				Steps: []string{
					"Send the offer immediately with a personal note",
					"Wait two days, then share one proof point",
					"Flag non-responders for a manual touch",
				},
			},
		},
		Experiments: []model.Experiment{
			{
				Hypothesis: "A sharper first line lifts replies",
				Experiment: "A/B test two opening lines on the primary channel",
				Metric:     "Reply rate",
			},
			{
				Hypothesis: "Social proof beats feature copy",
				Experiment: "Swap a feature bullet for a customer quote in week two",
				Metric:     "Click-through rate",
			},
		},
		NextSteps: []string{
			"Approve the positioning theme and messaging pillars",
			"Load the channel plays into your content calendar",
			"Set up tracking for the success metrics",
			"Review results after week one and adjust cadence",
		},
	}
}
