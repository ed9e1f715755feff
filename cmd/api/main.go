package main

import (
	"context"
	"time"

	"github.com/sajangez/sajangez-api/infrastructure/localstore"
	"github.com/sajangez/sajangez-api/infrastructure/salesapi"
	"github.com/sajangez/sajangez-api/internal/api"
	"github.com/sajangez/sajangez-api/internal/api/handler"
	"github.com/sajangez/sajangez-api/internal/config"
	"github.com/sajangez/sajangez-api/internal/scheduler"
	"github.com/sajangez/sajangez-api/internal/usecases/aggregating"
	"github.com/sajangez/sajangez-api/internal/usecases/authenticating"
	"github.com/sajangez/sajangez-api/internal/usecases/comparing"
	"github.com/sajangez/sajangez-api/internal/usecases/insighting"
	"github.com/sajangez/sajangez-api/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	localStore, err := localstore.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not open the local store")
	}
	defer localStore.Close()

	salesClient := salesapi.NewClient(cfg)

	authenticator, err := authenticating.NewService(localStore, salesClient, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not initialize the authentication service")
	}

	trackerService := tracking.NewService(salesClient, localStore)
	aggregatorService := aggregating.NewService()
	insighterService := insighting.NewService(aggregatorService)
	compareService := comparing.NewService()

	connectivityProbe := scheduler.NewConnectivityProbeService(salesClient, cfg)
	if err := connectivityProbe.Start(ctx); err != nil {
		logrus.WithError(err).Error("could not start the connectivity probe")
	} else {
		logrus.Info("connectivity probe started")
	}

	reportDeps := handler.ReportDependencies{
		Auth:       authenticator,
		Tracker:    trackerService,
		Aggregator: aggregatorService,
		Insighter:  insighterService,
	}

	server, err := api.New(cfg, authenticator, compareService, reportDeps, connectivityProbe)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
