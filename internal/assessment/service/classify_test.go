package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"permitly/internal/assessment/models"
)

func profile(area float64, seats int, features ...models.Feature) models.BusinessProfile {
	set := make(map[models.Feature]struct{}, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	return models.BusinessProfile{Area: area, Seats: seats, Features: set}
}

func TestClassifySmallGasRestaurant(t *testing.T) {
	// area 80, seats 25, gas
	d := Classify(profile(80, 25, models.FeatureGas))

	assert.Equal(t, models.FireTrackDeclaration, d.FireTrack)
	assert.False(t, d.PoliceRequired)
}

func TestClassifyLargeAlcoholVenue(t *testing.T) {
	// area 300, seats 150, alcohol+delivery
	d := Classify(profile(300, 150, models.FeatureAlcohol, models.FeatureDelivery))

	assert.Equal(t, models.FireTrackFullReview, d.FireTrack)
	assert.True(t, d.PoliceRequired)
}

func TestFireTrackBoundsAreInclusive(t *testing.T) {
	assert.Equal(t, models.FireTrackDeclaration, Classify(profile(150, 50)).FireTrack)
	assert.Equal(t, models.FireTrackFullReview, Classify(profile(150.0001, 50)).FireTrack)
	assert.Equal(t, models.FireTrackFullReview, Classify(profile(150, 51)).FireTrack)
}

func TestFireTrackIsConjunction(t *testing.T) {
	// Small seating does not rescue an oversized floor, and vice versa.
	assert.Equal(t, models.FireTrackFullReview, Classify(profile(400, 5)).FireTrack)
	assert.Equal(t, models.FireTrackFullReview, Classify(profile(20, 120)).FireTrack)
}

func TestPoliceSeatThresholdIsStrict(t *testing.T) {
	assert.False(t, Classify(profile(500, 200)).PoliceRequired)
	assert.True(t, Classify(profile(500, 201)).PoliceRequired)
}

func TestPoliceTriggeredByAlcoholAlone(t *testing.T) {
	d := Classify(profile(30, 10, models.FeatureAlcohol))
	assert.True(t, d.PoliceRequired)
	assert.Equal(t, "Police conditions apply", d.PoliceNote)
}

func TestClassifyIsDeterministic(t *testing.T) {
	p := profile(150, 50, models.FeatureGas, models.FeatureMeat)
	first := Classify(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(p))
	}
}
