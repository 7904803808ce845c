package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/leadplan-backend/internal/controller"
	"github.com/unclebandit/leadplan-backend/internal/model"
	"github.com/unclebandit/leadplan-backend/internal/planner"
	"github.com/unclebandit/leadplan-backend/internal/service"
)

// --- Mock generator ---

type mockGenerator struct {
	text string
	err  error
}

func (m *mockGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return m.text, m.err
}

// --- Helpers ---

func newController(gen *mockGenerator) *controller.PlanController {
	svc := &service.PlanService{
		Model:  "test-model",
		Logger: zap.NewNop(),
	}
	if gen != nil {
		svc.Generator = gen
	}
	return &controller.PlanController{PlanService: svc}
}

func validBriefBody() map[string]interface{} {
	return map[string]interface{}{
		"businessName":       "Acme Analytics",
		"industry":           "B2B SaaS",
		"productDescription": "a dashboard that unifies revenue data",
		"targetCustomer":     "RevOps leads at mid-market SaaS companies",
		"uniqueValue":        "Setup in one afternoon",
		"goals":              []string{"Book demos"},
		"channels":           []string{"Email", "LinkedIn"},
		"tone":               "Professional",
		"offer":              "Free 14-day trial",
		"budgetLevel":        "lean",
		"timeframe":          "2 weeks",
	}
}

type planResponse struct {
	Plan    *model.CampaignPlan `json:"plan"`
	Raw     *string             `json:"raw"`
	Warning string              `json:"warning"`
	Notice  string              `json:"notice"`
}

func postPlan(t *testing.T, ctrl *controller.PlanController, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/plans", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.GeneratePlan(w, req)
	return w
}

func decodePlanResponse(t *testing.T, w *httptest.ResponseRecorder) planResponse {
	t.Helper()
	var res planResponse
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&res))
	return res
}

func modelPlanJSON(t *testing.T) string {
	t.Helper()
	brief := &model.CampaignBrief{
		BusinessName:       "Acme Analytics",
		Industry:           "B2B SaaS",
		ProductDescription: "a dashboard",
		TargetCustomer:     "RevOps leads",
		UniqueValue:        "fast setup",
		Goals:              []string{"Book demos"},
		Channels:           []string{"Email", "LinkedIn"},
		Tone:               "Professional",
		Offer:              "Free trial",
		BudgetLevel:        "lean",
		Timeframe:          "2 weeks",
	}
	b, err := json.Marshal(planner.SynthesizeFallback(brief))
	require.NoError(t, err)
	return string(b)
}

// --- Tests ---

func TestGeneratePlanFallsBackWithoutCredential(t *testing.T) {
	ctrl := newController(nil)

	w := postPlan(t, ctrl, validBriefBody())
	require.Equal(t, http.StatusOK, w.Code)

	res := decodePlanResponse(t, w)
	require.NotNil(t, res.Plan)
	assert.Nil(t, res.Raw)
	assert.NotEmpty(t, res.Warning)
	assert.Len(t, res.Plan.ChannelStrategy, 2)
	assert.Equal(t, "3x weekly", res.Plan.ChannelStrategy[0].Cadence)
}

func TestGeneratePlanRejectsInvalidBrief(t *testing.T) {
	ctrl := newController(nil)

	body := validBriefBody()
	delete(body, "businessName")

	w := postPlan(t, ctrl, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var res struct {
		Error  string `json:"error"`
		Issues struct {
			FieldErrors map[string]string `json:"fieldErrors"`
		} `json:"issues"`
	}
	require.NoError(t, json.NewDecoder(w.Result().Body).Decode(&res))
	assert.Equal(t, "invalid campaign brief", res.Error)
	assert.Contains(t, res.Issues.FieldErrors, "businessName")
}

func TestGeneratePlanRejectsMalformedBody(t *testing.T) {
	ctrl := newController(nil)

	req := httptest.NewRequest("POST", "/api/plans", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	ctrl.GeneratePlan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlanFallsBackOnModelError(t *testing.T) {
	ctrl := newController(&mockGenerator{err: errors.New("connection refused")})

	w := postPlan(t, ctrl, validBriefBody())
	require.Equal(t, http.StatusOK, w.Code)

	res := decodePlanResponse(t, w)
	require.NotNil(t, res.Plan)
	assert.Nil(t, res.Raw)
	assert.NotEmpty(t, res.Warning)
	// The underlying error stays server-side.
	assert.NotContains(t, res.Warning, "connection refused")
}

func TestGeneratePlanReturnsParsedModelOutput(t *testing.T) {
	ctrl := newController(&mockGenerator{text: modelPlanJSON(t)})

	w := postPlan(t, ctrl, validBriefBody())
	require.Equal(t, http.StatusOK, w.Code)

	res := decodePlanResponse(t, w)
	require.NotNil(t, res.Plan)
	assert.Nil(t, res.Raw)
	assert.Empty(t, res.Warning)
	assert.Empty(t, res.Notice)
}

func TestGeneratePlanRecoversWrappedModelOutput(t *testing.T) {
	ctrl := newController(&mockGenerator{
		text: "Here is your plan:\n" + modelPlanJSON(t) + "\nLet me know!",
	})

	w := postPlan(t, ctrl, validBriefBody())
	require.Equal(t, http.StatusOK, w.Code)

	res := decodePlanResponse(t, w)
	require.NotNil(t, res.Plan)
	assert.NotEmpty(t, res.Notice)
	assert.Empty(t, res.Warning)
}

func TestGeneratePlanSurfacesUnparseableOutputRaw(t *testing.T) {
	text := "I cannot help with that."
	ctrl := newController(&mockGenerator{text: text})

	w := postPlan(t, ctrl, validBriefBody())
	require.Equal(t, http.StatusOK, w.Code)

	res := decodePlanResponse(t, w)
	assert.Nil(t, res.Plan)
	require.NotNil(t, res.Raw)
	assert.Equal(t, text, *res.Raw)
	assert.NotEmpty(t, res.Notice)
}
