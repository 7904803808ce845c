package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

func testBrief() *model.CampaignBrief {
	return &model.CampaignBrief{
		BusinessName:       "Acme Analytics",
		Industry:           "B2B SaaS",
		ProductDescription: "a dashboard that unifies revenue data",
		TargetCustomer:     "RevOps leads at mid-market SaaS companies",
		UniqueValue:        "Setup in one afternoon",
		Goals:              []string{"Book demos"},
		Channels:           []string{"Email", "LinkedIn", "Webinars"},
		Tone:               "Professional",
		Offer:              "Free 14-day trial",
		BudgetLevel:        "lean",
		Timeframe:          "30 days",
	}
}

func TestSynthesizeFallbackIsDeterministic(t *testing.T) {
	brief := testBrief()

	first, err := json.Marshal(SynthesizeFallback(brief))
	require.NoError(t, err)
	second, err := json.Marshal(SynthesizeFallback(brief))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestFallbackChannelPlaysMirrorBriefChannels(t *testing.T) {
	brief := testBrief()
	plan := SynthesizeFallback(brief)

	require.Len(t, plan.ChannelStrategy, len(brief.Channels))
	for i, play := range plan.ChannelStrategy {
		assert.Equal(t, brief.Channels[i], play.Channel)
	}
}

func TestFallbackCadenceByTimeframe(t *testing.T) {
	cases := map[string]string{
		"2 weeks": "3x weekly",
		"30 days": "Weekly",
		"90 days": "Weekly",
	}
	for timeframe, want := range cases {
		brief := testBrief()
		brief.Timeframe = timeframe

		plan := SynthesizeFallback(brief)
		for _, play := range plan.ChannelStrategy {
			assert.Equal(t, want, play.Cadence, "timeframe %q", timeframe)
		}
	}
}

func TestFallbackInterpolatesBriefFields(t *testing.T) {
	brief := testBrief()
	plan := SynthesizeFallback(brief)

	assert.Contains(t, plan.Summary.NorthStar, brief.BusinessName)
	assert.Contains(t, plan.Summary.NorthStar, brief.Timeframe)
	assert.Contains(t, plan.Summary.PositioningTheme, "setup in one afternoon")
	assert.Contains(t, plan.IdealCustomerProfile.CompanyTraits[0], brief.Industry)
	assert.Contains(t, plan.MessagingPillars[0].Angle, brief.ProductDescription)

	for _, play := range plan.ChannelStrategy {
		assert.Contains(t, play.Play, brief.BudgetLevel)
		assert.Contains(t, play.SampleCopy, brief.Offer)
		assert.Contains(t, play.SampleCopy, "{first_name}")
	}
}

func TestFallbackFixedSectionCounts(t *testing.T) {
	plan := SynthesizeFallback(testBrief())

	assert.Len(t, plan.MessagingPillars, 2)
	assert.Equal(t, "Value driver", plan.MessagingPillars[0].Title)
	assert.Equal(t, "Risk reducer", plan.MessagingPillars[1].Title)
	assert.Len(t, plan.MessagingPillars[0].ProofPoints, 3)
	assert.Len(t, plan.MessagingPillars[1].ProofPoints, 3)
	assert.Len(t, plan.AutomationWorkflow, 1)
	assert.Len(t, plan.AutomationWorkflow[0].Steps, 3)
	assert.Len(t, plan.Experiments, 2)
	assert.Len(t, plan.NextSteps, 4)
}

func TestFallbackPlanPassesShapeCheck(t *testing.T) {
	assert.True(t, planComplete(SynthesizeFallback(testBrief())))
}
