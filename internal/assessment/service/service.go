// Package service orchestrates an assessment request end to end: classify the
// profile, match it against the rule corpus, and assemble the advisory
// report. After validation a request cannot fail; both report branches
// produce a structurally complete result.
package service

import (
	"context"
	"log/slog"
	"time"

	assessmentmetrics "permitly/internal/assessment/metrics"
	"permitly/internal/assessment/models"
	"permitly/internal/report"
	"permitly/internal/rules"
)

// Thresholds above which profile values are implausible for a food business.
// Advisory only: large values are logged, never rejected.
const (
	implausibleArea  = 10000.0
	implausibleSeats = 2000
)

// RuleSource provides the current corpus snapshot and its reload operation.
type RuleSource interface {
	Snapshot() []rules.Rule
	Reload(ctx context.Context) (int, error)
}

// Service evaluates assessment requests against the shared rule corpus.
type Service struct {
	source    RuleSource
	assembler *report.Assembler
	metrics   *assessmentmetrics.Metrics
	logger    *slog.Logger
}

// New creates an assessment service. metrics may be nil in tests.
func New(source RuleSource, assembler *report.Assembler, m *assessmentmetrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		source:    source,
		assembler: assembler,
		metrics:   m,
		logger:    logger,
	}
}

// Assess evaluates a validated profile: classification and matching run
// against one corpus snapshot, then the report assembler resolves the AI
// attempt or its fallback. The result is complete in either case.
func (s *Service) Assess(ctx context.Context, profile models.BusinessProfile) (*models.AssessmentResult, error) {
	start := time.Now()

	if profile.Area > implausibleArea || profile.Seats > implausibleSeats {
		s.logger.WarnContext(ctx, "implausibly large profile values",
			"area", profile.Area,
			"seats", profile.Seats,
		)
	}

	decision := Classify(profile)

	// One snapshot for the whole evaluation: a concurrent reload must not
	// change the corpus mid-request.
	corpus := s.source.Snapshot()
	matched := rules.Match(corpus, profile.Subject())

	rep, reason := s.assembler.Assemble(ctx, report.Input{
		Area:           profile.Area,
		Seats:          profile.Seats,
		Features:       profile.FeatureList(),
		FireTrack:      string(decision.FireTrack),
		PoliceRequired: decision.PoliceRequired,
		Matched:        matched,
	})

	s.observe(len(corpus), len(matched), reason, time.Since(start))
	s.logger.InfoContext(ctx, "assessment completed",
		"area", profile.Area,
		"seats", profile.Seats,
		"fire_track", decision.FireTrack,
		"police_required", decision.PoliceRequired,
		"matched_rules", len(matched),
		"report_fallback", rep.IsFallback,
	)

	return &models.AssessmentResult{
		Summary:   models.NewSummary(profile, decision),
		Checklist: models.NewChecklist(matched),
		AIReport:  rep,
	}, nil
}

// ReloadRules re-reads the corpus source, retaining the previous corpus on
// failure.
func (s *Service) ReloadRules(ctx context.Context) (int, error) {
	count, err := s.source.Reload(ctx)
	if s.metrics != nil {
		if err != nil {
			s.metrics.Reloads.WithLabelValues("error").Inc()
		} else {
			s.metrics.Reloads.WithLabelValues("ok").Inc()
			s.metrics.CorpusRules.Set(float64(count))
		}
	}
	return count, err
}

func (s *Service) observe(corpusLen, matchedLen int, reason report.FallbackReason, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.Assessments.Inc()
	s.metrics.RulesMatched.Observe(float64(matchedLen))
	s.metrics.CorpusRules.Set(float64(corpusLen))
	s.metrics.AssessLatency.Observe(elapsed.Seconds())
	if reason == report.ReasonNone {
		s.metrics.AIReports.Inc()
	} else {
		s.metrics.FallbackReports.WithLabelValues(string(reason)).Inc()
	}
}
