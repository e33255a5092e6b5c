package report

import (
	"context"
	"errors"

	"permitly/internal/rules"
)

// ErrNotConfigured is returned by generators that have no credentials or
// endpoint to talk to. The assembler treats it like any other generation
// failure and falls back.
var ErrNotConfigured = errors.New("report generator not configured")

// Input carries everything a generator needs to produce an advisory report.
// It deliberately avoids depending on request DTOs so generators stay
// transport-agnostic.
type Input struct {
	Area           float64
	Seats          int
	Features       []string
	FireTrack      string
	PoliceRequired bool
	Matched        []rules.Rule
}

// Generator produces an advisory report from an assessment input. The call is
// bounded by the context deadline the assembler supplies; implementations
// must honor cancellation.
type Generator interface {
	Generate(ctx context.Context, in Input) (*Report, error)
}
