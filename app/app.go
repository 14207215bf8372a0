package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/config"
	"github.com/perpusid/perpustakaan-service/internal/handler"
	"github.com/perpusid/perpustakaan-service/internal/repository"
	"github.com/perpusid/perpustakaan-service/internal/server"
	"github.com/perpusid/perpustakaan-service/internal/service"
	"github.com/perpusid/perpustakaan-service/migrations"
	"github.com/perpusid/perpustakaan-service/pkg/kafka"
	"github.com/perpusid/perpustakaan-service/pkg/logger"
	"github.com/perpusid/perpustakaan-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "perpustakaan")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	events := service.NewNoopPublisher()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		events = service.NewKafkaPublisher(producer, log)
	}

	svc := service.New(repo, events, cfg.Loan.FinePerDay, log)

	h := handler.New(svc.Catalog, svc.Loans, svc.Trash, svc.Reports, log)
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

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
