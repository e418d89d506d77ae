package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
)

var (
	transformRoomType string
	transformFrom     string
	transformWall     string
)

var transformCmd = &cobra.Command{
	Use:   "transform [x] [y] [z]",
	Short: "Activate a room from a template and convert a point into every space",
	Long: `Activates a room from a template, converts the point from the given space
into plan, world and (with --wall) elevation coordinates, then releases the room.

  transform 100 50 0 --room-type kitchen
  transform 0 120 0 --from world --wall front`,
	Args: cobra.ExactArgs(3),
	RunE: transform,
}

func init() {
	transformCmd.Flags().StringVar(&transformRoomType, "room-type", "kitchen", "room template to activate")
	transformCmd.Flags().StringVar(&transformFrom, "from", "plan", "space of the input point: plan, world or elevation")
	transformCmd.Flags().StringVar(&transformWall, "wall", "", "wall for elevation input or output: front, back, left or right")
}

func parseSpace(name string) (apiv1alpha1.CoordinateSpace, error) {
	v, ok := apiv1alpha1.CoordinateSpace_value["COORDINATE_SPACE_"+strings.ToUpper(name)]
	if !ok || v == 0 {
		return 0, fmt.Errorf("unknown space %q", name)
	}
	return apiv1alpha1.CoordinateSpace(v), nil
}

func parseWall(name string) (apiv1alpha1.Wall, error) {
	if name == "" {
		return apiv1alpha1.Wall_WALL_UNSPECIFIED, nil
	}
	v, ok := apiv1alpha1.Wall_value["WALL_"+strings.ToUpper(name)]
	if !ok || v == 0 {
		return 0, fmt.Errorf("unknown wall %q", name)
	}
	return apiv1alpha1.Wall(v), nil
}

func transform(cmd *cobra.Command, args []string) error {
	var coords [3]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("coordinate %d must be a number, got %q", i, a)
		}
		coords[i] = v
	}
	from, err := parseSpace(transformFrom)
	if err != nil {
		return err
	}
	wall, err := parseWall(transformWall)
	if err != nil {
		return err
	}

	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	activated, err := client.ActivateRoom(ctx, &apiv1alpha1.ActivateRoomRequest{RoomType: transformRoomType})
	if err != nil {
		return fmt.Errorf("failed to activate room: %w", err)
	}
	defer func() {
		_, _ = client.ReleaseRoom(ctx, &apiv1alpha1.ReleaseRoomRequest{RoomId: activated.GetRoomId()}) // nolint:errcheck // best effort
	}()

	resp, err := client.TransformPoint(ctx, &apiv1alpha1.TransformPointRequest{
		RoomId: activated.GetRoomId(),
		From:   from,
		Point:  &apiv1alpha1.Point3D{X: coords[0], Y: coords[1], Z: coords[2]},
		Wall:   wall,
	})
	if err != nil {
		return fmt.Errorf("failed to transform point: %w", err)
	}

	return printJSON(cmd, resp)
}
