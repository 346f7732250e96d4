// Package jobs contains scheduled background jobs.
package jobs

import (
	"context"
	"log/slog"

	"gridrr/internal/middleware"
	"gridrr/internal/observability"
	"gridrr/internal/service"

	"github.com/google/uuid"
)

// VerificationSweepJob flags accounts whose engagement totals crossed the
// verification thresholds. It satisfies cron.Job.
type VerificationSweepJob struct {
	verificationService *service.VerificationService
}

// NewVerificationSweepJob creates a new VerificationSweepJob.
func NewVerificationSweepJob(verificationService *service.VerificationService) *VerificationSweepJob {
	return &VerificationSweepJob{verificationService: verificationService}
}

func (j *VerificationSweepJob) Run() {
	runID := uuid.NewString()
	ctx := context.WithValue(context.Background(), middleware.TraceIDKey, "job-verification-"+runID)

	ctx, span := observability.GetTraceLayer().TraceJobRun(ctx, "verification_sweep", runID)
	defer span.End()

	flagged, err := j.verificationService.Sweep(ctx)
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		middleware.Logger.ErrorContext(ctx, "verification sweep failed", slog.String("error", err.Error()))
		return
	}

	middleware.Logger.InfoContext(ctx, "verification sweep finished", slog.Int("flagged", flagged))
}
