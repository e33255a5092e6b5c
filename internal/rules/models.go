// Package rules defines the regulatory rule corpus and the profile matching
// predicate. Rules are immutable once loaded; the corpus is an ordered
// sequence whose order is preserved through matching.
package rules

// Status classifies how binding a rule is.
type Status string

const (
	StatusMandatory   Status = "mandatory"
	StatusRecommended Status = "recommended"
)

// Condition is a rule's optional-field predicate over a business profile.
// Absent fields never constrain; an empty condition matches every profile.
// Numeric bounds are inclusive.
type Condition struct {
	AreaMin     *float64 `json:"area_min,omitempty" yaml:"area_min,omitempty"`
	AreaMax     *float64 `json:"area_max,omitempty" yaml:"area_max,omitempty"`
	SeatsMin    *int     `json:"seats_min,omitempty" yaml:"seats_min,omitempty"`
	SeatsMax    *int     `json:"seats_max,omitempty" yaml:"seats_max,omitempty"`
	FeaturesAny []string `json:"features_any,omitempty" yaml:"features_any,omitempty"`
	FeaturesAll []string `json:"features_all,omitempty" yaml:"features_all,omitempty"`
}

// Rule is a single regulatory requirement with its applicability condition.
type Rule struct {
	ID         string    `json:"id" yaml:"id"`
	Category   string    `json:"category" yaml:"category"`
	Title      string    `json:"title" yaml:"title"`
	Status     Status    `json:"status" yaml:"status"`
	Note       string    `json:"note,omitempty" yaml:"note,omitempty"`
	SectionRef string    `json:"section_ref,omitempty" yaml:"section_ref,omitempty"`
	If         Condition `json:"if,omitempty" yaml:"if,omitempty"`
	Source     string    `json:"source,omitempty" yaml:"source,omitempty"`
}

// Subject is the matcher's read-only view of a validated business profile.
type Subject struct {
	Area     float64
	Seats    int
	Features map[string]struct{}
}

// HasFeature reports whether the subject declared the given feature tag.
func (s Subject) HasFeature(tag string) bool {
	_, ok := s.Features[tag]
	return ok
}
