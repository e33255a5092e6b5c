package models

import (
	"sort"

	"permitly/internal/rules"
)

// Feature is a declared operational feature of the business, drawn from a
// closed enumeration. Free-form tags are mapped to this set at the validation
// boundary so matching code never sees unrecognized values.
type Feature string

const (
	FeatureGas      Feature = "gas"
	FeatureDelivery Feature = "delivery"
	FeatureAlcohol  Feature = "alcohol"
	FeatureHood     Feature = "hood"
	FeatureMeat     Feature = "meat"
)

// AllFeatures lists the closed feature enumeration in presentation order.
var AllFeatures = []Feature{FeatureGas, FeatureDelivery, FeatureAlcohol, FeatureHood, FeatureMeat}

// ParseFeature maps a raw tag onto the closed enumeration.
func ParseFeature(tag string) (Feature, bool) {
	switch Feature(tag) {
	case FeatureGas, FeatureDelivery, FeatureAlcohol, FeatureHood, FeatureMeat:
		return Feature(tag), true
	default:
		return "", false
	}
}

// BusinessProfile is the normalized business input. Immutable after
// validation; owned solely by the current request's evaluation.
type BusinessProfile struct {
	Area     float64
	Seats    int
	Features map[Feature]struct{}
}

// HasFeature reports whether the profile declared the given feature.
func (p BusinessProfile) HasFeature(f Feature) bool {
	_, ok := p.Features[f]
	return ok
}

// FeatureList returns the declared features as a sorted string slice for a
// stable response echo.
func (p BusinessProfile) FeatureList() []string {
	list := make([]string, 0, len(p.Features))
	for f := range p.Features {
		list = append(list, string(f))
	}
	sort.Strings(list)
	return list
}

// Subject converts the profile into the rule matcher's view.
func (p BusinessProfile) Subject() rules.Subject {
	features := make(map[string]struct{}, len(p.Features))
	for f := range p.Features {
		features[string(f)] = struct{}{}
	}
	return rules.Subject{Area: p.Area, Seats: p.Seats, Features: features}
}

// FireTrack is the fire-safety licensing track.
type FireTrack string

const (
	// FireTrackDeclaration is the simplified declaration track for small
	// establishments (chapter 5).
	FireTrackDeclaration FireTrack = "declaration"
	// FireTrackFullReview is the full review track (chapter 6).
	FireTrackFullReview FireTrack = "full-review"
)

// TrackDecision holds the two fixed regulatory-track classifications derived
// from a profile. Derived, never stored.
type TrackDecision struct {
	FireTrack      FireTrack
	PoliceRequired bool
	PoliceNote     string
}
