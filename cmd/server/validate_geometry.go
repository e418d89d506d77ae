package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/geometry"
)

var validateGeometryCmd = &cobra.Command{
	Use:   "validate-geometry [file]",
	Short: "Validate a room geometry file without a server",
	Long: `Validate a room geometry document (YAML, or JSON with a .json extension).
Vertices may be written as [x, y] pairs or {x, y} objects. Exits non-zero
when the geometry has errors; warnings are printed but do not fail.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidateGeometry,
}

func runValidateGeometry(cmd *cobra.Command, args []string) error {
	g, err := loadGeometry(args[0])
	if err != nil {
		return err
	}

	report := geometry.ValidateRoomGeometry(g)
	printReport(cmd, report)
	return report.Err()
}

func loadGeometry(path string) (layout.RoomGeometry, error) {
	var g layout.RoomGeometry

	data, err := os.ReadFile(path)
	if err != nil {
		return g, fmt.Errorf("reading geometry file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &g); err != nil {
			return g, fmt.Errorf("parsing geometry JSON: %w", err)
		}
		return g, nil
	}

	if err := yaml.Unmarshal(data, &g); err != nil {
		return g, fmt.Errorf("parsing geometry YAML: %w", err)
	}
	return g, nil
}

func printReport(cmd *cobra.Command, report *geometry.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary)
	for _, f := range report.Errors {
		fmt.Fprintf(out, "  error    %s\n", f)
	}
	for _, f := range report.Warnings {
		fmt.Fprintf(out, "  warning  %s\n", f)
	}
}
