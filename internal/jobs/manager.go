package jobs

import (
	"log/slog"

	"gridrr/internal/middleware"

	"github.com/robfig/cron/v3"
)

// Manager owns the cron engine and the registered jobs.
type Manager struct {
	engine               *cron.Cron
	verificationSchedule string
	verificationSweepJob *VerificationSweepJob
}

// NewManager creates a Manager that runs the verification sweep on the given
// cron schedule ("@daily", "0 3 * * *", ...).
func NewManager(verificationSchedule string, verificationSweepJob *VerificationSweepJob) *Manager {
	return &Manager{
		engine:               cron.New(),
		verificationSchedule: verificationSchedule,
		verificationSweepJob: verificationSweepJob,
	}
}

// RegisterJobs adds all jobs to the engine.
func (m *Manager) RegisterJobs() error {
	if _, err := m.engine.AddJob(m.verificationSchedule, m.verificationSweepJob); err != nil {
		return err
	}
	return nil
}

// Start launches the cron engine in its own goroutine.
func (m *Manager) Start() {
	middleware.Logger.Info("cron engine started",
		slog.String("verification_schedule", m.verificationSchedule))
	m.engine.Start()
}

// Stop halts scheduling. Running jobs finish on their own.
func (m *Manager) Stop() {
	middleware.Logger.Info("cron engine stopped")
	m.engine.Stop()
}
