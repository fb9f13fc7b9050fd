package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sportsync/club-service/cmd/app"
	"github.com/sportsync/club-service/internal/adapters/config"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()

	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	a.Logger.Info("club service ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.Logger.Info("shutting down")
}
