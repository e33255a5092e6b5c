package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"permitly/internal/report"
)

// reportTemperature keeps advisory output mostly deterministic while leaving
// room for natural phrasing.
var reportTemperature = 0.3

const reportMaxTokens = 2000

const reportSystemPrompt = `You are a senior business licensing consultant specializing in restaurant permits. ` +
	`You produce concise, actionable advisory reports. ` +
	`Respond with a single JSON object only, no prose before or after it.`

// ReportGenerator produces advisory reports via an LLM endpoint. It implements
// report.Generator; structurally invalid output is rejected so the caller can
// fall back to the deterministic report.
type ReportGenerator struct {
	client     *Client
	configured bool
	logger     *slog.Logger
}

// NewReportGenerator builds a generator backed by the given client. A nil
// client or empty API key yields a generator that always reports
// ErrNotConfigured.
func NewReportGenerator(client *Client, logger *slog.Logger) *ReportGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	configured := client != nil && client.endpoint.APIKey != ""
	return &ReportGenerator{
		client:     client,
		configured: configured,
		logger:     logger,
	}
}

// Generate asks the LLM for an advisory report and parses the JSON reply.
func (g *ReportGenerator) Generate(ctx context.Context, in report.Input) (*report.Report, error) {
	if !g.configured {
		return nil, report.ErrNotConfigured
	}

	resp, err := g.client.Complete(ctx, Request{
		Messages: []Message{
			{Role: "system", Content: reportSystemPrompt},
			{Role: "user", Content: buildReportPrompt(in)},
		},
		Temperature: &reportTemperature,
		MaxTokens:   reportMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("llm completion: %w", err)
	}

	raw := ExtractJSON(resp.Content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in llm response")
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(raw), &rep); err != nil {
		return nil, fmt.Errorf("decode llm report: %w", err)
	}

	g.logger.Debug("Generated advisory report",
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
		"finish_reason", resp.FinishReason)

	return &rep, nil
}

// buildReportPrompt renders the business profile and matched requirements
// into the user prompt, including the exact JSON shape expected back.
func buildReportPrompt(in report.Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business profile:\n")
	fmt.Fprintf(&b, "- Type: restaurant\n")
	fmt.Fprintf(&b, "- Area: %.1f square meters\n", in.Area)
	fmt.Fprintf(&b, "- Seats: %d\n", in.Seats)
	if len(in.Features) > 0 {
		fmt.Fprintf(&b, "- Features: %s\n", strings.Join(in.Features, ", "))
	} else {
		fmt.Fprintf(&b, "- Features: none\n")
	}
	fmt.Fprintf(&b, "- Fire safety track: %s\n", in.FireTrack)
	if in.PoliceRequired {
		fmt.Fprintf(&b, "- Police licensing conditions: required\n")
	} else {
		fmt.Fprintf(&b, "- Police licensing conditions: exempt\n")
	}

	b.WriteString("\nApplicable licensing requirements:\n")
	for _, r := range in.Matched {
		fmt.Fprintf(&b, "- [%s] %s (%s, %s)", r.ID, r.Title, r.Category, r.Status)
		if r.Note != "" {
			fmt.Fprintf(&b, ": %s", r.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
Produce an advisory report as a JSON object with exactly this structure:
{
  "summary": {
    "assessment": "one-paragraph overall assessment",
    "complexity_level": "low|medium|high",
    "estimated_time": "estimated licensing duration, e.g. 4-8 weeks",
    "key_challenges": ["main challenge", ...]
  },
  "actions": [
    {
      "title": "action name",
      "priority": "low|medium|high",
      "category": "requirement category",
      "based_on_rule_id": "requirement id from the list above",
      "required_professionals": ["professional", ...],
      "estimated_cost_range": "cost range in ILS",
      "explanation": "why this action is needed"
    }
  ],
  "potential_risks": [
    {
      "risk_type": "risk category",
      "description": "what could go wrong",
      "impact": "low|medium|high",
      "mitigation": "how to reduce the risk"
    }
  ],
  "tips": [
    {"category": "tip category", "tip": "practical tip", "benefit": "expected benefit"}
  ],
  "open_questions": ["question the owner should clarify", ...],
  "budget_planning": {
    "fixed_costs": ["one-time cost item", ...],
    "recurring_costs": ["ongoing cost item", ...],
    "optional_costs": ["optional cost item", ...]
  }
}

Base every action on a requirement id from the list. Use only "low", "medium" or "high" for complexity, priority and impact.`)

	return b.String()
}
