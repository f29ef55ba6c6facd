package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/betsolutions/casino-sdk-go/internal/config"
	"github.com/betsolutions/casino-sdk-go/internal/core"
	"github.com/betsolutions/casino-sdk-go/internal/core/lifecycle"
	httpx "github.com/betsolutions/casino-sdk-go/internal/http"
	"github.com/betsolutions/casino-sdk-go/internal/store/memory"
	"github.com/betsolutions/casino-sdk-go/internal/store/postgres"
	"github.com/betsolutions/casino-sdk-go/internal/store/redisstore"
	"github.com/betsolutions/casino-sdk-go/internal/store/repositories"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if cfg.App.Env == "local" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := openStore(ctx, cfg)
	if err := core.Seed(ctx, store, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("seed catalogue")
	}

	var keys repositories.KeyStore
	if cfg.DB.DSN != "" {
		pool := postgres.MustOpen(ctx, cfg.DB.DSN)
		defer pool.Close()
		keys = postgresKeys(pool, cfg)
		log.Info().Msg("merchant keys: postgres")
	} else {
		keys = memory.NewKeyStore(map[int64]string{cfg.Merchant.ID: cfg.Merchant.PrivateKey})
		log.Info().Int64("merchant_id", cfg.Merchant.ID).Msg("merchant keys: static")
	}

	worker := lifecycle.NewWorker(store, cfg.Lifecycle.PollEvery)
	go worker.Run(ctx)

	r := httpx.NewRouter(httpx.RouterDependencies{
		Store:  store,
		Keys:   keys,
		Logger: log.Logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("casino sandbox listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}

func openStore(ctx context.Context, cfg config.Cfg) repositories.GameStore {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("game store: memory")
		return memory.New()
	}
	client, err := redisstore.Connect(ctx, cfg.Redis.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect fail")
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("game store: redis")
	return redisstore.New(client)
}

func postgresKeys(pool *pgxpool.Pool, cfg config.Cfg) repositories.KeyStore {
	return postgres.NewKeyStore(postgres.NewMerchantRepository(pool), cfg.Sec.AESKey)
}
