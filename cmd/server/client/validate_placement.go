package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
)

var validatePlacementCmd = &cobra.Command{
	Use:   "validate-placement [request.json|-]",
	Short: "Check a candidate element against placed elements",
	Long: `Sends a ValidatePlacement request read from a JSON file (or stdin with "-"):

  {"candidate": {"id": "b", "component_id": "base-cabinet-60", ...}, "placed": [...]}

Enum fields use their proto names, e.g. "corner_door_side": "DOOR_SIDE_LEFT".

Set room_id to bound the suggested position by an active room.`,
	Args: cobra.ExactArgs(1),
	RunE: validatePlacement,
}

func validatePlacement(cmd *cobra.Command, args []string) error {
	data, err := readRequest(args[0])
	if err != nil {
		return err
	}
	var req apiv1alpha1.ValidatePlacementRequest
	if err := protojson.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing request JSON: %w", err)
	}

	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ValidatePlacement(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to validate placement: %w", err)
	}

	return printJSON(cmd, resp)
}
