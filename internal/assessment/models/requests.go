package models

import (
	"fmt"
	"strings"

	dErrors "permitly/pkg/domain-errors"
)

// AssessRequest is the raw assessment input. Pointer fields distinguish
// missing keys from zero values so validation can report them precisely.
type AssessRequest struct {
	Area     *float64  `json:"area"`
	Seats    *int      `json:"seats"`
	Features *[]string `json:"features"`
}

// Normalize trims and lowercases feature tags and drops duplicates, keeping
// first occurrence. Order is irrelevant after validation.
func (r *AssessRequest) Normalize() {
	if r == nil || r.Features == nil {
		return
	}
	seen := make(map[string]struct{}, len(*r.Features))
	normalized := make([]string, 0, len(*r.Features))
	for _, tag := range *r.Features {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	*r.Features = normalized
}

// Validate enforces the profile invariants: area > 0, seats >= 0, and every
// feature inside the closed enumeration. Offending feature values are
// reported back to the caller.
func (r *AssessRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	var missing []string
	if r.Area == nil {
		missing = append(missing, "area")
	}
	if r.Seats == nil {
		missing = append(missing, "seats")
	}
	if r.Features == nil {
		missing = append(missing, "features")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	if *r.Area <= 0 {
		return dErrors.New(dErrors.CodeValidation, "area must be a positive number")
	}
	if *r.Seats < 0 {
		return dErrors.New(dErrors.CodeValidation, "seats must be zero or greater")
	}

	var unknown []string
	for _, tag := range *r.Features {
		if _, ok := ParseFeature(tag); !ok {
			unknown = append(unknown, tag)
		}
	}
	if len(unknown) > 0 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("unknown features: %s (allowed: %s)",
				strings.Join(unknown, ", "), featureEnum()))
	}

	return nil
}

// Profile builds the immutable normalized profile. Callers must Validate first.
func (r *AssessRequest) Profile() BusinessProfile {
	features := make(map[Feature]struct{}, len(*r.Features))
	for _, tag := range *r.Features {
		if f, ok := ParseFeature(tag); ok {
			features[f] = struct{}{}
		}
	}
	return BusinessProfile{
		Area:     *r.Area,
		Seats:    *r.Seats,
		Features: features,
	}
}

func featureEnum() string {
	tags := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		tags[i] = string(f)
	}
	return strings.Join(tags, ", ")
}
