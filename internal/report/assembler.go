package report

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// FallbackReason classifies why the deterministic path was taken. Exposed for
// metrics labels.
type FallbackReason string

const (
	ReasonNone          FallbackReason = ""
	ReasonNotConfigured FallbackReason = "not_configured"
	ReasonTimeout       FallbackReason = "timeout"
	ReasonGenerateError FallbackReason = "generate_error"
	ReasonInvalidReport FallbackReason = "invalid_report"
)

// Assembler mediates between the AI report path and the deterministic
// fallback. Assemble never fails: every input yields a schema-conformant
// report from one of the two branches.
type Assembler struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// NewAssembler creates an assembler. A nil generator disables the AI path and
// every report comes from the fallback branch.
func NewAssembler(gen Generator, timeout time.Duration, logger *slog.Logger) *Assembler {
	return &Assembler{gen: gen, timeout: timeout, logger: logger}
}

// Assemble runs the AI attempt within its time bound and degrades to the
// fallback on any failure. The returned reason is ReasonNone for the AI path.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*Report, FallbackReason) {
	rep, reason := a.attempt(ctx, in)
	if reason == ReasonNone {
		return rep, reason
	}
	return Fallback(in), reason
}

// attempt is the AIAttempt state: a bounded, cancellable call to the
// generator followed by structural validation of whatever came back.
func (a *Assembler) attempt(ctx context.Context, in Input) (*Report, FallbackReason) {
	if a.gen == nil {
		return nil, ReasonNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	rep, err := a.gen.Generate(ctx, in)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotConfigured):
		a.logger.DebugContext(ctx, "report generator not configured, using fallback")
		return nil, ReasonNotConfigured
	case errors.Is(err, context.DeadlineExceeded):
		a.logger.WarnContext(ctx, "report generation timed out, using fallback",
			"timeout", a.timeout)
		return nil, ReasonTimeout
	default:
		a.logger.WarnContext(ctx, "report generation failed, using fallback",
			"error", err)
		return nil, ReasonGenerateError
	}

	rep.Normalize()
	if err := rep.Validate(); err != nil {
		a.logger.WarnContext(ctx, "generated report failed validation, using fallback",
			"error", err)
		return nil, ReasonInvalidReport
	}

	rep.IsFallback = false
	return rep, ReasonNone
}
