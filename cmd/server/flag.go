package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/layout-api/internal/config"
	redisclient "github.com/KirkDiggler/layout-api/internal/redis"
	"github.com/KirkDiggler/layout-api/internal/repositories/featureflag"
)

var flagCmd = &cobra.Command{
	Use:   "flag",
	Short: "Read or change feature flags in Redis",
	Long: `Feature flags are read by running servers with a short cache, so a change
takes effect within flags.ttl. Example:

  flag set unified_elevation_positioning true`,
}

var flagGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Print a flag's stored value",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlagGet,
}

var flagSetCmd = &cobra.Command{
	Use:   "set [name] [true|false]",
	Short: "Store a flag value",
	Args:  cobra.ExactArgs(2),
	RunE:  runFlagSet,
}

func init() {
	flagCmd.AddCommand(flagGetCmd)
	flagCmd.AddCommand(flagSetCmd)
}

func flagRepository() (featureflag.Repository, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	client, err := redisclient.Connect(cfg.Redis.Endpoints, &redisclient.Options{
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.ConnectTimeout,
		UseTLS:      cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := featureflag.NewRedisRepository(&featureflag.Config{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

func runFlagGet(cmd *cobra.Command, args []string) error {
	repo, cleanup, err := flagRepository()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := repo.Get(ctx, featureflag.GetInput{Name: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get flag: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", args[0], out.Enabled)
	return nil
}

func runFlagSet(cmd *cobra.Command, args []string) error {
	enabled, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("flag value must be true or false, got %q", args[1])
	}

	repo, cleanup, err := flagRepository()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.Set(ctx, featureflag.SetInput{Name: args[0], Enabled: enabled}); err != nil {
		return fmt.Errorf("failed to set flag: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", args[0], enabled)
	return nil
}
