package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"permitly/internal/llm"
	"permitly/internal/report"
	"permitly/internal/rules"
)

const sampleReportJSON = `{
  "summary": {
    "assessment": "Straightforward licensing process for a small restaurant.",
    "complexity_level": "low",
    "estimated_time": "2-4 weeks",
    "key_challenges": ["Gas certification"]
  },
  "actions": [
    {
      "title": "Obtain gas safety certification",
      "priority": "high",
      "category": "Gas Safety",
      "based_on_rule_id": "gas-cert",
      "required_professionals": ["Certified gas technician"],
      "estimated_cost_range": "4,000-15,000 ILS",
      "explanation": "The kitchen uses LPG."
    }
  ],
  "potential_risks": [
    {
      "risk_type": "Operational",
      "description": "Opening before permits are granted",
      "impact": "high",
      "mitigation": "Wait for all approvals before opening"
    }
  ],
  "tips": [
    {"category": "Process", "tip": "Submit documents together", "benefit": "Faster processing"}
  ],
  "open_questions": ["Is the gas installation already certified?"],
  "budget_planning": {
    "fixed_costs": ["Gas certification: 4,000-15,000 ILS"],
    "recurring_costs": ["License renewal"],
    "optional_costs": ["Licensing consultant"]
  }
}`

func sampleInput() report.Input {
	return report.Input{
		Area:      80,
		Seats:     40,
		Features:  []string{"gas"},
		FireTrack: "declaration",
		Matched: []rules.Rule{
			{ID: "gas-cert", Category: "Gas Safety", Title: "Gas safety certification", Status: rules.StatusMandatory},
		},
	}
}

func TestReportGenerator_Generate(t *testing.T) {
	var prompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []llm.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		prompt = req.Messages[1].Content

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("```json\n" + sampleReportJSON + "\n```"))
	}))
	defer server.Close()

	client := llm.NewClient(llm.Endpoint{
		Provider: "openai",
		BaseURL:  server.URL,
		Model:    "test-model",
		APIKey:   "test-key",
	})
	gen := llm.NewReportGenerator(client, nil)

	rep, err := gen.Generate(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, report.ComplexityLow, rep.Summary.ComplexityLevel)
	require.Len(t, rep.Actions, 1)
	assert.Equal(t, "gas-cert", rep.Actions[0].BasedOnRuleID)

	// The prompt must carry the profile and the matched requirements.
	assert.Contains(t, prompt, "80.0 square meters")
	assert.Contains(t, prompt, "Seats: 40")
	assert.Contains(t, prompt, "gas-cert")
	assert.Contains(t, prompt, "declaration")
}

func TestReportGenerator_NotConfigured(t *testing.T) {
	gen := llm.NewReportGenerator(nil, nil)

	_, err := gen.Generate(context.Background(), sampleInput())

	assert.ErrorIs(t, err, report.ErrNotConfigured)
}

func TestReportGenerator_EmptyAPIKey(t *testing.T) {
	client := llm.NewClient(llm.Endpoint{Provider: "openai", Model: "test-model"})
	gen := llm.NewReportGenerator(client, nil)

	_, err := gen.Generate(context.Background(), sampleInput())

	assert.ErrorIs(t, err, report.ErrNotConfigured)
}

func TestReportGenerator_NonJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("I am unable to produce a report right now."))
	}))
	defer server.Close()

	client := llm.NewClient(llm.Endpoint{
		Provider: "openai",
		BaseURL:  server.URL,
		Model:    "test-model",
		APIKey:   "test-key",
	})
	gen := llm.NewReportGenerator(client, nil)

	_, err := gen.Generate(context.Background(), sampleInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}
