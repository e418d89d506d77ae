// Package rest exposes the layout service to browser clients over HTTP/JSON.
// Every route decodes into the gRPC request message with protojson and
// delegates to the same service implementation, so both surfaces share
// validation and errors.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	apiv1alpha1 "github.com/KirkDiggler/layout-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/layout-api/internal/entities/layout"
	"github.com/KirkDiggler/layout-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/layout-api/internal/handlers/layout/v1alpha1"
)

var (
	unmarshaler = protojson.UnmarshalOptions{DiscardUnknown: true}
	marshaler   = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}
)

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	Service apiv1alpha1.LayoutServiceServer
	Logger  *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.Service == nil {
		return errors.InvalidArgument("layout service is required")
	}
	return nil
}

// Handler serves the layout routes
type Handler struct {
	service apiv1alpha1.LayoutServiceServer
	logger  *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: cfg.Service, logger: logger}, nil
}

// Register mounts the routes on a router
func (h *Handler) Register(r fiber.Router) {
	r.Get("/health/live", h.Live)

	api := r.Group("/api/v1")
	api.Get("/room-templates", h.ListRoomTemplates)
	api.Post("/rooms", h.ActivateRoom)
	api.Delete("/rooms/:id", h.ReleaseRoom)
	api.Post("/rooms/:id/transform", h.TransformPoint)
	api.Post("/rooms/:id/consistency", h.CheckConsistency)
	api.Post("/rooms/:id/positions", h.CalculateElementPosition)
	api.Post("/rooms/:id/placements/validate", h.ValidatePlacement)
	api.Post("/placements/validate", h.ValidatePlacement)
	api.Post("/rooms/:id/corner-door", h.ResolveCornerDoor)
	api.Post("/geometry/validate", h.ValidateRoomGeometry)
}

// Live reports that the process is serving
func (h *Handler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func (h *Handler) ListRoomTemplates(c fiber.Ctx) error {
	resp, err := h.service.ListRoomTemplates(c.Context(), &apiv1alpha1.ListRoomTemplatesRequest{})
	return h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) ActivateRoom(c fiber.Ctx) error {
	var req apiv1alpha1.ActivateRoomRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	resp, err := h.service.ActivateRoom(c.Context(), &req)
	return h.respond(c, http.StatusCreated, resp, err)
}

func (h *Handler) ReleaseRoom(c fiber.Ctx) error {
	_, err := h.service.ReleaseRoom(c.Context(), &apiv1alpha1.ReleaseRoomRequest{RoomId: c.Params("id")})
	if err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) TransformPoint(c fiber.Ctx) error {
	var req apiv1alpha1.TransformPointRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	req.RoomId = c.Params("id")
	resp, err := h.service.TransformPoint(c.Context(), &req)
	return h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) CheckConsistency(c fiber.Ctx) error {
	var req apiv1alpha1.CheckConsistencyRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	req.RoomId = c.Params("id")
	resp, err := h.service.CheckConsistency(c.Context(), &req)
	return h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) CalculateElementPosition(c fiber.Ctx) error {
	var req apiv1alpha1.CalculateElementPositionRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	req.RoomId = c.Params("id")
	resp, err := h.service.CalculateElementPosition(c.Context(), &req)
	return h.respond(c, http.StatusOK, resp, err)
}

// ValidatePlacement serves both the room-scoped and the unbounded route
func (h *Handler) ValidatePlacement(c fiber.Ctx) error {
	var req apiv1alpha1.ValidatePlacementRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	if id := c.Params("id"); id != "" {
		req.RoomId = id
	}
	resp, err := h.service.ValidatePlacement(c.Context(), &req)
	return h.respond(c, http.StatusOK, resp, err)
}

func (h *Handler) ResolveCornerDoor(c fiber.Ctx) error {
	var req apiv1alpha1.ResolveCornerDoorRequest
	if err := decode(c, &req); err != nil {
		return h.fail(c, err)
	}
	req.RoomId = c.Params("id")
	resp, err := h.service.ResolveCornerDoor(c.Context(), &req)
	return h.respond(c, http.StatusOK, resp, err)
}

// ValidateRoomGeometry accepts the authored geometry document, whose
// vertices may be written as [x, y] pairs
func (h *Handler) ValidateRoomGeometry(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return h.fail(c, errors.InvalidArgument("request body is required"))
	}
	var doc struct {
		Geometry layout.RoomGeometry `json:"geometry"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return h.fail(c, errors.InvalidArgumentf("invalid json: %v", err))
	}

	resp, err := h.service.ValidateRoomGeometry(c.Context(), &apiv1alpha1.ValidateRoomGeometryRequest{
		Geometry: v1alpha1.ConvertRoomGeometryToProto(doc.Geometry),
	})
	return h.respond(c, http.StatusOK, resp, err)
}

func decode(c fiber.Ctx, m proto.Message) error {
	body := c.Body()
	if len(body) == 0 {
		return errors.InvalidArgument("request body is required")
	}
	if err := unmarshaler.Unmarshal(body, m); err != nil {
		return errors.InvalidArgumentf("invalid json: %v", err)
	}
	return nil
}

func (h *Handler) respond(c fiber.Ctx, okStatus int, body proto.Message, err error) error {
	if err != nil {
		return h.fail(c, err)
	}

	data, err := marshaler.Marshal(body)
	if err != nil {
		return h.fail(c, errors.Wrap(err, "encode response"))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(okStatus).Send(data)
}

// fail writes a coded error. Errors arrive either as gRPC status errors from
// the service or as coded errors raised while decoding.
func (h *Handler) fail(c fiber.Ctx, err error) error {
	converted := errors.FromGRPCError(err)
	code := errors.GetCode(converted)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Context(), "request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err)
	}

	body := fiber.Map{
		"code":  code,
		"error": errors.GetMessage(converted),
	}
	if meta := errors.GetMeta(converted); len(meta) > 0 {
		body["meta"] = meta
	}
	return c.Status(status).JSON(body)
}
