package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"permitly/internal/assessment/handler/mocks"
	"permitly/internal/assessment/models"
	"permitly/internal/platform/middleware"
	"permitly/internal/report"
	dErrors "permitly/pkg/domain-errors"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.mockService, nil, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdminToken("test-admin-token", logger))
		h.RegisterAdmin(admin)
	})
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) postAssess(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/assess", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestAssess_Success() {
	fallback := report.Fallback(report.Input{Area: 80, Seats: 25, Features: []string{"gas"}})
	s.mockService.EXPECT().
		Assess(gomock.Any(), gomock.Any()).
		Return(&models.AssessmentResult{
			Summary:   models.Summary{Type: "restaurant", Area: 80, Seats: 25, FireTrack: "declaration"},
			Checklist: []models.ChecklistItem{{ID: "health-baseline", Title: "Sanitation requirements"}},
			AIReport:  fallback,
		}, nil)

	rec := s.postAssess(`{"area": 80, "seats": 25, "features": ["gas"]}`)

	assert.Equal(s.T(), http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Contains(resp, "summary")
	s.Contains(resp, "checklist")
	s.Contains(resp, "ai_report")
}

func (s *HandlerSuite) TestAssess_InvalidJSON() {
	rec := s.postAssess("not valid json")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestAssess_MissingFields() {
	rec := s.postAssess(`{"area": 80}`)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("validation_failed", resp["error"])
	s.Contains(resp["error_description"], "seats")
	s.Contains(resp["error_description"], "features")
}

func (s *HandlerSuite) TestAssess_ZeroAreaRejected() {
	rec := s.postAssess(`{"area": 0, "seats": 10, "features": []}`)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Contains(resp["error_description"], "area")
}

func (s *HandlerSuite) TestAssess_UnknownFeatureReported() {
	rec := s.postAssess(`{"area": 80, "seats": 10, "features": ["gas", "karaoke"]}`)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Contains(resp["error_description"], "karaoke")
}

func (s *HandlerSuite) TestAssess_NonNumericAreaRejected() {
	rec := s.postAssess(`{"area": "eighty", "seats": 10, "features": []}`)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestReload_Success() {
	s.mockService.EXPECT().ReloadRules(gomock.Any()).Return(42, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/rules/reload", nil)
	req.Header.Set("X-Admin-Token", "test-admin-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	var resp ReloadResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(42, resp.Rules)
}

func (s *HandlerSuite) TestReload_RequiresAdminToken() {
	req := httptest.NewRequest(http.MethodPost, "/admin/rules/reload", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestReload_SourceFailure() {
	s.mockService.EXPECT().
		ReloadRules(gomock.Any()).
		Return(0, dErrors.Wrap(errors.New("no such file"), dErrors.CodeRuleLoad, "rule corpus reload failed"))

	req := httptest.NewRequest(http.MethodPost, "/admin/rules/reload", nil)
	req.Header.Set("X-Admin-Token", "test-admin-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("rule_load_failed", resp["error"])
}
