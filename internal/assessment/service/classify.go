package service

import (
	"permitly/internal/assessment/models"
)

// Fixed classification thresholds from the licensing regulation.
const (
	// declarationAreaMax and declarationSeatsMax bound the simplified fire
	// declaration track; both must hold (conjunction, inclusive).
	declarationAreaMax  = 150.0
	declarationSeatsMax = 50

	// policeSeatsThreshold triggers police conditions on occupancy. Strictly
	// greater-than: exactly 200 seats does not trigger.
	policeSeatsThreshold = 200
)

// Classify derives the two fixed regulatory-track decisions from a validated
// profile. Total and deterministic: every valid profile classifies, and the
// same profile always yields the same decision.
func Classify(p models.BusinessProfile) models.TrackDecision {
	d := models.TrackDecision{FireTrack: models.FireTrackFullReview}
	if p.Area <= declarationAreaMax && p.Seats <= declarationSeatsMax {
		d.FireTrack = models.FireTrackDeclaration
	}

	d.PoliceRequired = p.HasFeature(models.FeatureAlcohol) || p.Seats > policeSeatsThreshold
	if d.PoliceRequired {
		d.PoliceNote = "Police conditions apply"
	} else {
		d.PoliceNote = "Exempt from police requirements (at most 200 seats, no alcohol)"
	}
	return d
}
