package models

import (
	"permitly/internal/report"
	"permitly/internal/rules"
)

// Summary echoes the validated profile together with the track decisions.
type Summary struct {
	Type      string   `json:"type"`
	Area      float64  `json:"area"`
	Seats     int      `json:"seats"`
	Features  []string `json:"features"`
	FireTrack string   `json:"fire_track"`
	Police    string   `json:"police"`
}

// ChecklistItem is the caller-facing view of a matched rule.
type ChecklistItem struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Note       string `json:"note"`
	SectionRef string `json:"section_ref"`
}

// AssessmentResult is the composite response: profile summary, the ordered
// matched-rule checklist, and the advisory report from either branch.
type AssessmentResult struct {
	Summary   Summary         `json:"summary"`
	Checklist []ChecklistItem `json:"checklist"`
	AIReport  *report.Report  `json:"ai_report"`
}

// NewSummary builds the response summary from a profile and its decision.
func NewSummary(p BusinessProfile, d TrackDecision) Summary {
	return Summary{
		Type:      "restaurant",
		Area:      p.Area,
		Seats:     p.Seats,
		Features:  p.FeatureList(),
		FireTrack: string(d.FireTrack),
		Police:    d.PoliceNote,
	}
}

// NewChecklist converts matched rules into checklist items, preserving order.
func NewChecklist(matched []rules.Rule) []ChecklistItem {
	checklist := make([]ChecklistItem, 0, len(matched))
	for _, r := range matched {
		checklist = append(checklist, ChecklistItem{
			ID:         r.ID,
			Category:   r.Category,
			Title:      r.Title,
			Status:     string(r.Status),
			Note:       r.Note,
			SectionRef: r.SectionRef,
		})
	}
	return checklist
}
