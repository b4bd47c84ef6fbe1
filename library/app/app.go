package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookhaven/library-service/library/config"
	"github.com/bookhaven/library-service/library/internal/handler"
	"github.com/bookhaven/library-service/library/internal/notify"
	"github.com/bookhaven/library-service/library/internal/repository"
	"github.com/bookhaven/library-service/library/internal/server"
	"github.com/bookhaven/library-service/library/internal/service"
	"github.com/bookhaven/library-service/library/migrations"
	"github.com/bookhaven/library-service/pkg/kafka"
	"github.com/bookhaven/library-service/pkg/logger"
	"github.com/bookhaven/library-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	notifier := notify.New(producer, log)

	svc := service.NewService(repo, notifier, service.NewSystemClock(), cfg.Library, log)
	h := handler.New(svc, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.RecordNotification, log), kafka.NotificationTopic, log)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.Library.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := svc.OverdueSweep(gCtx); err != nil {
					log.Error("overdue sweep", zap.Error(err))
				}
				if _, err := svc.ReminderSweep(gCtx); err != nil {
					log.Error("reminder sweep", zap.Error(err))
				}
			case <-gCtx.Done():
				return nil
			}
		}
	})

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = g.Wait(); err != nil {
		log.Error("g.Wait", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
