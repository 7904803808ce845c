// internal/prompt/prompt.go
package prompt

import (
	"fmt"
	"strings"

	"github.com/unclebandit/leadplan-backend/internal/model"
)

// SystemInstruction pins the assistant persona and the JSON-only constraint
// for every model call.
const SystemInstruction = "You are a senior B2B growth marketer who designs lead-generation campaigns. " +
	"You always respond with a single JSON object and nothing else: no markdown, no code fences, no commentary."

// Build renders a brief into the user prompt. Pure and deterministic: the
// same brief always yields the same string, so prompt regressions are
// testable with plain equality.
func Build(brief *model.CampaignBrief) string {
	notes := brief.Notes
	if notes == "" {
		notes = "none"
	}

	return fmt.Sprintf(`Design a lead-generation campaign plan for the following business.

Business name: %s
Industry: %s
Product or service: %s
Target customer: %s
Unique value: %s
Goals: %s
Channels to use: %s
Tone of voice: %s
Current offer: %s
Budget level: %s
Timeframe: %s
Additional notes: %s

Return ONLY a single JSON object with exactly this shape (no surrounding prose):
{
  "summary": {"northStar": string, "successMetrics": [string], "positioningTheme": string},
  "idealCustomerProfile": {"companyTraits": [string], "buyerPersona": [string], "painPoints": [string]},
  "messagingPillars": [{"title": string, "angle": string, "proofPoints": [string]}],
  "channelStrategy": [{"channel": string, "objective": string, "play": string, "cadence": string, "sampleCopy": string}],
  "automationWorkflow": [{"name": string, "trigger": string, "steps": [string]}],
  "experiments": [{"hypothesis": string, "experiment": string, "metric": string}],
  "nextSteps": [string]
}

Rules:
- channelStrategy must contain exactly one entry per channel listed above, in the same order.
- Every array must be non-empty and every string non-empty.
- Write sampleCopy in the requested tone and reference the current offer.`,
		brief.BusinessName,
		brief.Industry,
		brief.ProductDescription,
		brief.TargetCustomer,
		brief.UniqueValue,
		strings.Join(brief.Goals, ", "),
		strings.Join(brief.Channels, ", "),
		brief.Tone,
		brief.Offer,
		brief.BudgetLevel,
		brief.Timeframe,
		notes,
	)
}
