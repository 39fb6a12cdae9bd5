package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/IgorSouzaLima/rjlima/internal/adapter/queue"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/storage"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/config"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := storage.NewProofMinioStorage(cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	server := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
	})
	processor := queue.NewProcessor(store)
	mux := processor.Handler()

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	if err := server.Run(mux); err != nil {
		log.Printf("worker stopped: %v", err)
		os.Exit(1)
	}
}
