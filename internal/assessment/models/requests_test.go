package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"permitly/internal/assessment/models"
	dErrors "permitly/pkg/domain-errors"
)

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }
func tags(v ...string) *[]string {
	s := append([]string{}, v...)
	return &s
}

func validRequest() *models.AssessRequest {
	return &models.AssessRequest{
		Area:     f(120),
		Seats:    n(45),
		Features: tags("gas", "delivery"),
	}
}

func TestAssessRequest_Normalize(t *testing.T) {
	req := &models.AssessRequest{
		Area:     f(120),
		Seats:    n(45),
		Features: tags(" Gas ", "ALCOHOL", "gas", "", "  "),
	}

	req.Normalize()

	assert.Equal(t, []string{"gas", "alcohol"}, *req.Features)
}

func TestAssessRequest_Normalize_NilFeatures(t *testing.T) {
	req := &models.AssessRequest{Area: f(120), Seats: n(45)}

	req.Normalize() // must not panic

	assert.Nil(t, req.Features)
}

func TestAssessRequest_Validate_OK(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestAssessRequest_Validate_EmptyFeaturesOK(t *testing.T) {
	req := validRequest()
	req.Features = tags()

	require.NoError(t, req.Validate())
}

func TestAssessRequest_Validate_ZeroSeatsOK(t *testing.T) {
	req := validRequest()
	req.Seats = n(0)

	require.NoError(t, req.Validate())
}

func TestAssessRequest_Validate_MissingFields(t *testing.T) {
	req := &models.AssessRequest{Area: f(120)}

	err := req.Validate()

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "seats")
	assert.Contains(t, err.Error(), "features")
	assert.NotContains(t, err.Error(), "area")
}

func TestAssessRequest_Validate_ZeroArea(t *testing.T) {
	req := validRequest()
	req.Area = f(0)

	err := req.Validate()

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "positive")
}

func TestAssessRequest_Validate_NegativeArea(t *testing.T) {
	req := validRequest()
	req.Area = f(-10)

	assert.Error(t, req.Validate())
}

func TestAssessRequest_Validate_NegativeSeats(t *testing.T) {
	req := validRequest()
	req.Seats = n(-1)

	err := req.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "seats")
}

func TestAssessRequest_Validate_UnknownFeature(t *testing.T) {
	req := validRequest()
	req.Features = tags("gas", "karaoke")

	err := req.Validate()

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(t, err.Error(), "karaoke")
	assert.Contains(t, err.Error(), "alcohol", "error should list the allowed enumeration")
}

func TestAssessRequest_Validate_NilRequest(t *testing.T) {
	var req *models.AssessRequest

	err := req.Validate()

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestAssessRequest_Profile(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	p := req.Profile()

	assert.Equal(t, 120.0, p.Area)
	assert.Equal(t, 45, p.Seats)
	assert.True(t, p.HasFeature(models.FeatureGas))
	assert.True(t, p.HasFeature(models.FeatureDelivery))
	assert.False(t, p.HasFeature(models.FeatureAlcohol))
}

func TestBusinessProfile_FeatureList_Sorted(t *testing.T) {
	req := &models.AssessRequest{
		Area:     f(100),
		Seats:    n(30),
		Features: tags("meat", "gas", "alcohol"),
	}
	require.NoError(t, req.Validate())

	assert.Equal(t, []string{"alcohol", "gas", "meat"}, req.Profile().FeatureList())
}

func TestBusinessProfile_Subject(t *testing.T) {
	p := validRequest().Profile()

	subject := p.Subject()

	assert.Equal(t, 120.0, subject.Area)
	assert.Equal(t, 45, subject.Seats)
	_, hasGas := subject.Features["gas"]
	assert.True(t, hasGas)
}
