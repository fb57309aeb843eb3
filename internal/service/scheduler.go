package service

import (
	"context"
	"fmt"
	"time"

	"trading-journal/config"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"

	"github.com/robfig/cron/v3"
)

type SchedulerService interface {
	// Start registers the periodic jobs and prefetches the economic calendar once.
	Start(ctx context.Context) error
	Stop()
}

type schedulerService struct {
	cfg             *config.Config
	log             *logger.Logger
	cronParser      cron.Parser
	cron            *cron.Cron
	calendarService EconomicCalendarService
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, calendarService EconomicCalendarService) *schedulerService {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	cronLog := &cronLogger{log: log}
	return &schedulerService{
		cfg:        cfg,
		log:        log,
		cronParser: parser,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		calendarService: calendarService,
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	if !s.cfg.Scheduler.Enabled {
		s.log.Info("Scheduler is disabled")
		return nil
	}

	spec := s.cfg.Calendar.RefreshSpec
	if _, err := s.cronParser.Parse(spec); err != nil {
		return fmt.Errorf("invalid calendar refresh spec %q: %w", spec, err)
	}

	if _, err := s.cron.AddFunc(spec, func() { s.refreshCalendar(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule calendar refresh: %w", err)
	}

	utils.GoSafe(func() { s.refreshCalendar(ctx) })
	s.cron.Start()
	s.log.Info("Scheduler started", logger.StringField("calendar_refresh_spec", spec))
	return nil
}

func (s *schedulerService) refreshCalendar(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	timeout := s.cfg.Scheduler.TimeoutDuration
	if timeout <= 0 {
		timeout = time.Minute
	}
	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := s.calendarService.Refresh(jobCtx); err != nil {
		s.log.WarnContext(jobCtx, "Scheduled calendar refresh failed", logger.ErrorField(err))
	}
}

func (s *schedulerService) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		s.log.Warn("Timeout while waiting for scheduled jobs to finish")
	}
	s.log.Info("Scheduler stopped")
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, logger.Field("details", keysAndValues))
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, logger.ErrorField(err), logger.Field("details", keysAndValues))
}
