// Package main is the entry point for the layout service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/layout-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "layout-api",
	Short: "Layout API server",
	Long: `Layout API keeps the plan, elevation and 3D views of a room design in agreement:
coordinate transforms, element positioning, collision checks, corner doors and
room geometry validation over gRPC and HTTP/JSON.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "layout-api: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serverCmd, validateGeometryCmd, flagCmd, client.ClientCmd)
}
