package main

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/vstpayment/internal/api"
	"github.com/samandr77/microservices/vstpayment/internal/repository"
	"github.com/samandr77/microservices/vstpayment/internal/service"
	"github.com/samandr77/microservices/vstpayment/pkg/broker"
	"github.com/samandr77/microservices/vstpayment/pkg/config"
	"github.com/samandr77/microservices/vstpayment/pkg/job"
	"github.com/samandr77/microservices/vstpayment/pkg/logger"
	"github.com/samandr77/microservices/vstpayment/pkg/postgres"
	"github.com/samandr77/microservices/vstpayment/pkg/security"
)

const (
	ReadTimeout     = 3 * time.Second
	WriteTimeout    = 5 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.PaymentEventsTopic)
	defer producer.Close()

	gateway := service.Gateway{
		TerminalID:          cfg.VST.TerminalID,
		FallbackCallbackURL: cfg.VST.FallbackCallbackURL,
		ServicePaymentType:  cfg.VST.ServicePaymentType,
	}

	dispatcher := service.NewDispatcher(
		service.NewTaxResolver(repo, repo, repo, producer, gateway),
		service.NewServiceResolver(repo, repo, producer, gateway),
	)

	callbacks := service.NewCallbacks(repo, producer, cfg.VST.ExpireAfter)

	jobs := job.NewService().
		RegisterJob("expire stale vst payments", cfg.VST.ExpireInterval, callbacks.ExpireStale).
		Start(ctx)

	var callbackPublicKey *rsa.PublicKey

	if cfg.VST.CallbackCheckEnabled {
		callbackPublicKey, err = security.ParseBase64PublicKey(cfg.VST.CallbackPublicKey)
		panicOnErr("parse callback public key", err)
	}

	handler := api.NewHandler(dispatcher, callbacks, cfg.VST.CallbackCheckEnabled, callbackPublicKey)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, cfg.VST.CallbackIPWL)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()

	cancel()
	jobs.Stop()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
