// Command app runs the credits ledger HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LerianStudio/midaz-credits/internal/bootstrap"
)

func main() {
	cfg := bootstrap.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.NewService(ctx, cfg)
	if err != nil {
		panic(err)
	}

	go func() {
		if err := svc.App.Listen(":" + cfg.ServerPort); err != nil {
			svc.Logger.Errorf("server stopped: %s", err.Error())
		}
	}()

	<-ctx.Done()

	svc.Logger.Info("shutting down")
	svc.Shutdown()
}
