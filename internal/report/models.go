// Package report defines the advisory report schema shared by the AI path and
// the deterministic fallback path, and the assembler that mediates between
// them. Both paths always produce the same top-level shape; is_fallback is
// the only discriminator.
package report

import (
	"fmt"
)

// Complexity levels for the overall assessment.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// Action priorities and risk impact levels share the same scale.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Summary is the overall assessment section.
type Summary struct {
	Assessment      string   `json:"assessment"`
	ComplexityLevel string   `json:"complexity_level"`
	EstimatedTime   string   `json:"estimated_time"`
	KeyChallenges   []string `json:"key_challenges"`
}

// Action is a single required licensing action.
type Action struct {
	Title                 string   `json:"title"`
	Priority              string   `json:"priority"`
	Category              string   `json:"category"`
	BasedOnRuleID         string   `json:"based_on_rule_id"`
	RequiredProfessionals []string `json:"required_professionals"`
	EstimatedCostRange    string   `json:"estimated_cost_range"`
	Explanation           string   `json:"explanation"`
}

// Risk describes a potential licensing or operational risk.
type Risk struct {
	RiskType    string `json:"risk_type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

// Tip is a practical recommendation with its expected benefit.
type Tip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
	Benefit  string `json:"benefit"`
}

// Budget is the cost planning breakdown.
type Budget struct {
	FixedCosts     []string `json:"fixed_costs"`
	RecurringCosts []string `json:"recurring_costs"`
	OptionalCosts  []string `json:"optional_costs"`
}

// Report is the composite advisory report. The AI path and the fallback path
// emit identical top-level keys; IsFallback marks the deterministic variant.
type Report struct {
	Summary        Summary  `json:"summary"`
	Actions        []Action `json:"actions"`
	PotentialRisks []Risk   `json:"potential_risks"`
	Tips           []Tip    `json:"tips"`
	OpenQuestions  []string `json:"open_questions"`
	BudgetPlanning Budget   `json:"budget_planning"`
	IsFallback     bool     `json:"is_fallback"`
}

// Normalize replaces nil collections with empty ones. The response contract
// prefers empty lists over omitted keys.
func (r *Report) Normalize() {
	if r.Summary.KeyChallenges == nil {
		r.Summary.KeyChallenges = []string{}
	}
	if r.Actions == nil {
		r.Actions = []Action{}
	}
	for i := range r.Actions {
		if r.Actions[i].RequiredProfessionals == nil {
			r.Actions[i].RequiredProfessionals = []string{}
		}
	}
	if r.PotentialRisks == nil {
		r.PotentialRisks = []Risk{}
	}
	if r.Tips == nil {
		r.Tips = []Tip{}
	}
	if r.OpenQuestions == nil {
		r.OpenQuestions = []string{}
	}
	if r.BudgetPlanning.FixedCosts == nil {
		r.BudgetPlanning.FixedCosts = []string{}
	}
	if r.BudgetPlanning.RecurringCosts == nil {
		r.BudgetPlanning.RecurringCosts = []string{}
	}
	if r.BudgetPlanning.OptionalCosts == nil {
		r.BudgetPlanning.OptionalCosts = []string{}
	}
}

// Validate checks structural conformance of a generated report. Reports that
// fail validation are discarded in favor of the fallback; natural-language
// quality is out of scope.
func (r *Report) Validate() error {
	if r.Summary.Assessment == "" {
		return fmt.Errorf("report summary assessment is empty")
	}
	if !validLevel(r.Summary.ComplexityLevel) {
		return fmt.Errorf("invalid complexity level %q", r.Summary.ComplexityLevel)
	}
	for i, a := range r.Actions {
		if a.Title == "" {
			return fmt.Errorf("action %d has no title", i)
		}
		if !validLevel(a.Priority) {
			return fmt.Errorf("action %d has invalid priority %q", i, a.Priority)
		}
	}
	for i, risk := range r.PotentialRisks {
		if !validLevel(risk.Impact) {
			return fmt.Errorf("risk %d has invalid impact %q", i, risk.Impact)
		}
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
