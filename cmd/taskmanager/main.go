package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/repository"
	"task-manager/internal/service"
	"task-manager/internal/web"
	"task-manager/internal/web/handlers"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	configPath string
	verbosity  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "taskmanager",
		Short:        "Task manager - users, projects and tasks over HTTP",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file (or set CONFIG_PATH env var)")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("taskmanager %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch {
	case verbosity >= 2:
		cfg.Log.Level = "trace"
	case verbosity == 1:
		cfg.Log.Level = "debug"
	}
	logging.Apply(cfg.Log)

	log.Info().
		Str("version", version).
		Str("addr", cfg.Addr()).
		Str("driver", cfg.Database.Driver).
		Str("allowed_origin", cfg.Server.AllowedOrigin).
		Msg("Starting task manager")

	db, err := repository.NewDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userSvc := service.NewUserService(userRepo)
	projectSvc := service.NewProjectService(projectRepo)
	taskSvc := service.NewTaskService(taskRepo, projectRepo)

	server := web.NewServer(cfg, handlers.New(db, userSvc, taskSvc, projectSvc))
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server: %w", err)
	}

	log.Info().Msg("Shutdown complete")
	return nil
}
