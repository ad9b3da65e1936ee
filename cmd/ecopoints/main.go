package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anandkv/ecopoints/internal/config"
	"github.com/anandkv/ecopoints/internal/server"
	"github.com/anandkv/ecopoints/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewConfig()

	var store server.Storage
	if config.DatabaseURI != "" {
		pg, err := storage.NewPostgresStorage(ctx, config.DatabaseURI)
		if err != nil {
			config.Logger.Fatal(err)
		}
		if err := pg.EnsureSeedData(ctx); err != nil {
			config.Logger.Fatal(err)
		}
		store = pg
	} else {
		config.Logger.Info("no database URI, using in-memory storage")
		mem := storage.NewMemStorage()
		storage.SeedMemStorage(ctx, mem)
		store = mem
	}

	srv := server.NewServer(store, config)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
