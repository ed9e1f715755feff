// Package scheduler holds the background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sirupsen/logrus"
)

type ConnectivityProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// ConnectivityProbeService periodically checks whether the upstream sales
// service is reachable and keeps the last known state.
type ConnectivityProbeService struct {
	scheduler *gocron.Scheduler
	pinger    authenticating.Pinger
	config    ConnectivityProbeConfig

	probeRunning     bool
	probeMutex       sync.Mutex
	online           bool
	lastProbeAt      time.Time
	lastOnlineAt     time.Time
	transitionsCount int
}

func NewConnectivityProbeService(pinger authenticating.Pinger, cfg *config.Config) *ConnectivityProbeService {
	probeConfig := ConnectivityProbeConfig{
		CronSchedule: cfg.ConnectivityProbe.CronSchedule,
		Enabled:      cfg.ConnectivityProbe.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
	}).Info("connectivity probe scheduler configured")

	return &ConnectivityProbeService{
		scheduler: scheduler,
		pinger:    pinger,
		config:    probeConfig,
	}
}

func (s *ConnectivityProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("connectivity probe disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting connectivity probe")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Probe(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling connectivity probe: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping connectivity probe")
		s.scheduler.Stop()
	}()

	// Establish the initial state right away instead of waiting a full tick.
	s.Probe(ctx)

	return nil
}

// Probe checks the upstream service once and updates the known state.
func (s *ConnectivityProbeService) Probe(ctx context.Context) {
	s.probeMutex.Lock()
	if s.probeRunning {
		s.probeMutex.Unlock()
		logrus.Warn("connectivity probe already running")
		return
	}
	s.probeRunning = true
	s.probeMutex.Unlock()

	online := s.pinger.Ping(ctx)
	now := time.Now()

	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()

	if online != s.online {
		s.transitionsCount++
		logrus.WithFields(logrus.Fields{
			"online": online,
		}).Info("upstream sales service connectivity changed")
	}

	s.online = online
	s.lastProbeAt = now
	if online {
		s.lastOnlineAt = now
	}
	s.probeRunning = false
}

// Online reports the last observed upstream state.
func (s *ConnectivityProbeService) Online() bool {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()
	return s.online
}

// TriggerManualProbe runs a probe outside the schedule.
func (s *ConnectivityProbeService) TriggerManualProbe() {
	logrus.Info("starting manual connectivity probe")
	go s.Probe(context.Background())
}

// GetStatus returns the current probe state.
func (s *ConnectivityProbeService) GetStatus() map[string]any {
	s.probeMutex.Lock()
	defer s.probeMutex.Unlock()

	return map[string]any{
		"probe_enabled":     s.config.Enabled,
		"probe_cron":        s.config.CronSchedule,
		"online":            s.online,
		"last_probe_at":     s.lastProbeAt,
		"last_online_at":    s.lastOnlineAt,
		"transitions_count": s.transitionsCount,
	}
}
