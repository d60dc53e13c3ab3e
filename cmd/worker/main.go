package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	shareLinkUsecases "github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	"github.com/niggl1/appsindico/internal/infrastructure/config"
	"github.com/niggl1/appsindico/internal/infrastructure/database"
	"github.com/niggl1/appsindico/internal/infrastructure/repository"
	"github.com/niggl1/appsindico/internal/infrastructure/scheduler"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting share link sweep worker", "environment", env)

	if err := biztime.Init(cfg.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone", "error", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	linkRepo := repository.NewShareLinkRepository(database.Get(), log)
	sweepUC := shareLinkUsecases.NewSweepExpiredUseCase(linkRepo, log)

	sweeper, err := scheduler.NewShareLinkSweepScheduler(sweepUC, cfg.Worker.SweepSchedule, log)
	if err != nil {
		log.Fatalw("failed to create sweep scheduler", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper.Start(ctx)

	<-ctx.Done()
	log.Infow("received signal, shutting down")

	sweeper.Stop()
	log.Infow("share link sweep worker stopped")
}
