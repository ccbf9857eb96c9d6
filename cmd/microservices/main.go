package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vadimbarashkov/microservices/internal/app"
	"github.com/vadimbarashkov/microservices/internal/config"
	"github.com/vadimbarashkov/microservices/pkg/postgres"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "microservices",
	Short:        "Timestamp, header parser, URL shortener, exercise tracker and file metadata APIs",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(postgres.Up), string(postgres.Down)},
	RunE:      runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (defaults to $CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	// .env is optional.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, fmt.Errorf("config path is not set: use --config or CONFIG_PATH")
	}

	return config.Load(path)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), cfg)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := postgres.Direction(args[0])
	if err := postgres.RunMigrations(cfg.Postgres.MigrationsPath, cfg.Postgres.DSN(), dir); err != nil {
		return err
	}

	cmd.Printf("migrations applied: %s\n", dir)
	return nil
}
