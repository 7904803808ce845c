// internal/controller/plan_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/leadplan-backend/internal/metrics"
	"github.com/unclebandit/leadplan-backend/internal/service"
	"github.com/unclebandit/leadplan-backend/internal/validation"
)

type PlanController struct {
	PlanService *service.PlanService
}

// GeneratePlan handles POST /api/plans. Validation failures return a 400
// with a per-field error map; everything past validation returns 200 with
// one of the three response shapes (plan, plan+warning, raw+notice).
func (c *PlanController) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var body validation.BriefInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "invalid request body",
		})
		return
	}

	brief, fieldErrors := validation.Validate(body)
	if fieldErrors != nil {
		metrics.PlanRequests.WithLabelValues("validation_rejected").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "invalid campaign brief",
			"issues": map[string]interface{}{
				"fieldErrors": fieldErrors,
			},
		})
		return
	}

	result := c.PlanService.GeneratePlan(r.Context(), brief)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
