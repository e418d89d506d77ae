package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
)

var listTemplatesCmd = &cobra.Command{
	Use:   "list-templates",
	Short: "List the room templates the server can activate rooms from",
	Args:  cobra.NoArgs,
	RunE:  listTemplates,
}

func listTemplates(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListRoomTemplates(ctx, &apiv1alpha1.ListRoomTemplatesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list room templates: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, t := range resp.GetTemplates() {
		dims := t.GetDimensions()
		fmt.Fprintf(out, "%-12s %-16s %gx%gx%g cm, walls %g cm\n",
			t.GetRoomType(), t.GetName(),
			dims.GetWidth(), dims.GetHeight(), dims.GetCeilingHeight(),
			t.GetWallThickness())
	}
	return nil
}
