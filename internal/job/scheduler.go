package job

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs periodic background jobs on cron schedules
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	jobs   map[string]cron.Job
}

// NewScheduler creates a Scheduler. Panicking jobs are recovered and a job
// still running when its next tick arrives is skipped.
func NewScheduler(logger *zap.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
		jobs:   make(map[string]cron.Job),
	}
}

// Register adds a named job under a standard cron spec or descriptor such as "@every 1m"
func (s *Scheduler) Register(name, spec string, job cron.Job) error {
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("schedule job %q: %w", name, err)
	}
	s.jobs[name] = job
	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("schedule", spec))
	return nil
}

// RunNow runs every registered job once, synchronously
func (s *Scheduler) RunNow() {
	for name, j := range s.jobs {
		s.logger.Debug("Running job", zap.String("job", name))
		j.Run()
	}
}

// Start starts the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, zap.Any("details", keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, zap.Error(err), zap.Any("details", keysAndValues))
}
