// internal/service/plan_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unclebandit/leadplan-backend/internal/events"
	"github.com/unclebandit/leadplan-backend/internal/llm"
	"github.com/unclebandit/leadplan-backend/internal/metrics"
	"github.com/unclebandit/leadplan-backend/internal/model"
	"github.com/unclebandit/leadplan-backend/internal/planner"
	"github.com/unclebandit/leadplan-backend/internal/prompt"
	"github.com/unclebandit/leadplan-backend/internal/repository"
)

// Terminal outcomes of one plan request.
const (
	OutcomeFallbackNoKey      = "fallback_no_key"
	OutcomeFallbackModelError = "fallback_model_error"
	OutcomeSuccess            = "success"
	OutcomeRecovered          = "recovered"
	OutcomeRawSurfaced        = "raw_surfaced"
)

const (
	warningNoKey = "No model credential is configured, so this plan was generated by the built-in rules instead of the AI model."

	warningModelError = "The AI model could not be reached, so this plan was generated by the built-in rules instead."
)

// GenerateResult is the response body for a plan request. Exactly one of
// Plan and Raw is set.
type GenerateResult struct {
	Plan    *model.CampaignPlan `json:"plan"`
	Raw     *string             `json:"raw"`
	Warning string              `json:"warning,omitempty"`
	Notice  string              `json:"notice,omitempty"`
	Outcome string              `json:"-"`
}

type PlanService struct {
	Generator llm.TextGenerator // nil when no credential is configured
	Model     string
	AuditRepo repository.GenerationLogRepositoryInterface // optional
	Events    events.Publisher                            // optional
	Logger    *zap.Logger
}

// GeneratePlan runs the generation state machine for one validated brief:
// no credential → fallback + warning; model error → fallback + warning;
// parseable output → plan (with a notice when brace-extraction recovered it);
// unparseable output → raw text surfaced, never masked by a fallback.
// It always produces exactly one result and never returns an error.
func (s *PlanService) GeneratePlan(ctx context.Context, brief *model.CampaignBrief) *GenerateResult {
	start := time.Now()
	requestID := uuid.NewString()

	result := s.generate(ctx, brief)
	elapsed := time.Since(start)

	path := "llm"
	if s.Generator == nil {
		path = "fallback"
	}
	metrics.PlanRequests.WithLabelValues(result.Outcome).Inc()
	metrics.GenerationDuration.WithLabelValues(path).Observe(elapsed.Seconds())

	s.Logger.Info("plan generated",
		zap.String("request_id", requestID),
		zap.String("outcome", result.Outcome),
		zap.Duration("duration", elapsed),
	)

	// Audit row and event are fire-and-forget; they never delay or alter
	// the response.
	if s.AuditRepo != nil {
		entry := &model.GenerationLog{
			RequestID:    requestID,
			BusinessName: brief.BusinessName,
			Industry:     brief.Industry,
			Outcome:      result.Outcome,
			Model:        s.Model,
			DurationMs:   elapsed.Milliseconds(),
		}
		go func() {
			if err := s.AuditRepo.Insert(entry); err != nil {
				s.Logger.Warn("failed to write audit row", zap.Error(err))
			}
		}()
	}
	if s.Events != nil {
		evt := events.PlanGenerated{
			RequestID: requestID,
			Outcome:   result.Outcome,
			Channels:  len(brief.Channels),
		}
		go func() {
			if err := s.Events.PublishPlanGenerated(evt); err != nil {
				s.Logger.Warn("failed to publish plan event", zap.Error(err))
			}
		}()
	}

	return result
}

func (s *PlanService) generate(ctx context.Context, brief *model.CampaignBrief) *GenerateResult {
	if s.Generator == nil {
		return &GenerateResult{
			Plan:    planner.SynthesizeFallback(brief),
			Warning: warningNoKey,
			Outcome: OutcomeFallbackNoKey,
		}
	}

	text, err := s.Generator.Generate(ctx, prompt.SystemInstruction, prompt.Build(brief))
	if err != nil {
		// Logged server-side only; the client sees a generic warning.
		s.Logger.Error("model call failed", zap.Error(err))
		metrics.ModelCalls.WithLabelValues("error").Inc()
		return &GenerateResult{
			Plan:    planner.SynthesizeFallback(brief),
			Warning: warningModelError,
			Outcome: OutcomeFallbackModelError,
		}
	}
	metrics.ModelCalls.WithLabelValues("ok").Inc()

	parsed := planner.Parse(text)
	if parsed.Plan != nil {
		outcome := OutcomeSuccess
		if parsed.Message != "" {
			outcome = OutcomeRecovered
		}
		return &GenerateResult{
			Plan:    parsed.Plan,
			Notice:  parsed.Message,
			Outcome: outcome,
		}
	}

	raw := parsed.Raw
	return &GenerateResult{
		Raw:     &raw,
		Notice:  parsed.Message,
		Outcome: OutcomeRawSurfaced,
	}
}
