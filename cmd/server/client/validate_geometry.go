package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	v1alpha1 "github.com/KirkDiggler/layout-api/internal/handlers/layout/v1alpha1"
)

var validateGeometryCmd = &cobra.Command{
	Use:   "validate-geometry [geometry.json|-]",
	Short: "Validate a room geometry document on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  validateGeometry,
}

func validateGeometry(cmd *cobra.Command, args []string) error {
	data, err := readRequest(args[0])
	if err != nil {
		return err
	}
	var g layout.RoomGeometry
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("parsing geometry JSON: %w", err)
	}

	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ValidateRoomGeometry(ctx, &apiv1alpha1.ValidateRoomGeometryRequest{
		Geometry: v1alpha1.ConvertRoomGeometryToProto(g),
	})
	if err != nil {
		return fmt.Errorf("failed to validate geometry: %w", err)
	}

	if err := printJSON(cmd, resp); err != nil {
		return err
	}
	if !resp.GetValid() {
		return fmt.Errorf("geometry is invalid: %s", resp.GetSummary())
	}
	return nil
}
