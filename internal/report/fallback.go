package report

import (
	"fmt"
	"strings"

	"permitly/internal/rules"
)

// Fallback deterministically synthesizes a report from the matched rule set.
// It is pure, never fails, and conforms to the same schema as the AI path,
// with IsFallback set.
func Fallback(in Input) *Report {
	complexity, challenges := complexityOf(in)

	rep := &Report{
		Summary: Summary{
			Assessment: fmt.Sprintf(
				"A %s business of %.0f sqm with %d seats. %d regulatory requirements apply; key items are listed below.",
				sizeLabel(complexity), in.Area, in.Seats, len(in.Matched)),
			ComplexityLevel: complexity,
			EstimatedTime:   timeEstimate(complexity),
			KeyChallenges:   challenges,
		},
		Actions:        fallbackActions(in.Matched),
		PotentialRisks: fallbackRisks(in),
		Tips:           fallbackTips(in),
		OpenQuestions: []string{
			"Are there additional requirements from the local licensing authority?",
			"Is the business located in a restricted or special zone?",
		},
		BudgetPlanning: fallbackBudget(in),
		IsFallback:     true,
	}
	rep.Normalize()
	return rep
}

func complexityOf(in Input) (string, []string) {
	complexity := ComplexityLow
	var challenges []string

	if hasFeature(in, "alcohol") {
		complexity = ComplexityHigh
		challenges = append(challenges, "serving alcohol")
	}
	switch {
	case in.Area > 300 || in.Seats > 100:
		complexity = ComplexityHigh
		challenges = append(challenges, "business size")
	case in.Area > 150 || in.Seats > 50:
		if complexity != ComplexityHigh {
			complexity = ComplexityMedium
		}
		challenges = append(challenges, "medium-sized premises")
	}

	if hasFeature(in, "delivery") {
		challenges = append(challenges, "food delivery operations")
	}
	if hasFeature(in, "gas") {
		challenges = append(challenges, "gas installation")
	}

	if len(challenges) == 0 {
		challenges = []string{"meeting baseline requirements"}
	}
	return complexity, challenges
}

func sizeLabel(complexity string) string {
	switch complexity {
	case ComplexityHigh:
		return "large"
	case ComplexityMedium:
		return "medium"
	default:
		return "small"
	}
}

func timeEstimate(complexity string) string {
	switch complexity {
	case ComplexityHigh:
		return "8-16 weeks"
	case ComplexityMedium:
		return "4-8 weeks"
	default:
		return "2-4 weeks"
	}
}

// fallbackActions derives one action per mandatory matched rule. Priority,
// professionals and cost ranges come from the rule's issuing category.
func fallbackActions(matched []rules.Rule) []Action {
	actions := make([]Action, 0, len(matched))
	for _, r := range matched {
		if r.Status != rules.StatusMandatory {
			continue
		}
		prio, pros, cost, explanation := categoryDefaults(r.Category)
		actions = append(actions, Action{
			Title:                 r.Title,
			Priority:              prio,
			Category:              r.Category,
			BasedOnRuleID:         r.ID,
			RequiredProfessionals: pros,
			EstimatedCostRange:    cost,
			Explanation:           explanation,
		})
	}
	return actions
}

func categoryDefaults(category string) (priority string, professionals []string, costRange, explanation string) {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "lpg") || strings.Contains(lower, "gas"):
		return PriorityHigh,
			[]string{"certified LPG installer", "engineer"},
			"4,000-15,000 ILS",
			"Gas safety requirement - approval by a certified LPG installer is needed"
	case strings.Contains(lower, "fire"):
		return PriorityHigh,
			[]string{"fire safety consultant"},
			"1,200-3,500 ILS",
			"Fire and rescue requirement - approval from the fire authority is needed"
	case strings.Contains(lower, "police"):
		return PriorityMedium,
			[]string{"licensing consultant"},
			"400-1,200 ILS",
			"Regulatory requirement - approval from the Israel Police is needed"
	case strings.Contains(lower, "health"):
		return PriorityMedium,
			[]string{"sanitation consultant"},
			"600-2,000 ILS",
			"Sanitation requirement - approval from the Ministry of Health is needed"
	default:
		return PriorityMedium,
			[]string{"licensing consultant"},
			"500-1,500 ILS",
			"Regulatory requirement for obtaining the business license"
	}
}

func fallbackRisks(in Input) []Risk {
	risks := []Risk{
		{
			RiskType:    "regulatory",
			Description: "Delays in obtaining approvals from the authorities",
			Impact:      PriorityMedium,
			Mitigation:  "Start the process early and follow up regularly",
		},
	}
	if hasFeature(in, "gas") {
		risks = append(risks, Risk{
			RiskType:    "safety",
			Description: "Safety hazards related to gas usage",
			Impact:      PriorityHigh,
			Mitigation:  "Professional installation and periodic inspections",
		})
	}
	if hasFeature(in, "alcohol") {
		risks = append(risks, Risk{
			RiskType:    "regulatory",
			Description: "Strict police requirements for serving alcohol",
			Impact:      PriorityHigh,
			Mitigation:  "Consult a specialist and comply strictly with the conditions",
		})
	}
	return risks
}

func fallbackTips(in Input) []Tip {
	var tips []Tip
	if hasFeature(in, "delivery") {
		tips = append(tips, Tip{
			Category: "food delivery",
			Tip:      "Prepare a dedicated delivery area with suitable refrigeration equipment",
			Benefit:  "Meets Ministry of Health requirements and avoids fines",
		})
	}
	if hasFeature(in, "gas") {
		tips = append(tips, Tip{
			Category: "gas safety",
			Tip:      "Run gas integrity checks every 6 months",
			Benefit:  "Prevents accidents and keeps you compliant",
		})
	}
	if in.FireTrack == "declaration" {
		tips = append(tips, Tip{
			Category: "fire safety",
			Tip:      "You qualify for the simplified declaration track - use it",
			Benefit:  "Saves time and cost in the licensing process",
		})
	}
	tips = append(tips,
		Tip{
			Category: "planning",
			Tip:      "Start the licensing process before completing construction work",
			Benefit:  "Saves time and prevents delays",
		},
		Tip{
			Category: "documentation",
			Tip:      "Keep all documents and approvals in one accessible place",
			Benefit:  "Simplifies inspections and license renewals",
		},
	)
	return tips
}

func fallbackBudget(in Input) Budget {
	budget := Budget{
		FixedCosts:     []string{"licensing fees", "professional inspections", "safety signage"},
		RecurringCosts: []string{"license renewals", "periodic inspections"},
		OptionalCosts:  []string{"additional safety upgrades", "ongoing professional consulting"},
	}
	if hasFeature(in, "gas") {
		budget.FixedCosts = append(budget.FixedCosts, "gas system installation", "hood suppression system")
		budget.RecurringCosts = append(budget.RecurringCosts, "periodic gas inspections")
	}
	if hasFeature(in, "delivery") {
		budget.FixedCosts = append(budget.FixedCosts, "delivery refrigeration equipment", "packaging area")
		budget.RecurringCosts = append(budget.RecurringCosts, "refrigeration equipment maintenance")
	}
	return budget
}

func hasFeature(in Input, tag string) bool {
	for _, f := range in.Features {
		if f == tag {
			return true
		}
	}
	return false
}
