package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	"omnikassa-status/internal/core/logger"
	"omnikassa-status/internal/features/status/domain"
	"omnikassa-status/internal/features/status/ports"
	"omnikassa-status/internal/features/status/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenHeader carries the notification token received from the gateway.
const TokenHeader = "X-Notification-Token"

// StatusHandler handles HTTP requests for order status checks.
type StatusHandler struct {
	provider ports.StatusProvider
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(provider ports.StatusProvider) *StatusHandler {
	return &StatusHandler{
		provider: provider,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
	// UpstreamStatus is the gateway's HTTP status when it answered outside 2xx.
	UpstreamStatus int `json:"upstream_status,omitempty"`
}

// GetStatus godoc
// @Summary Check whether an order is completed
// @Description Pulls the order status from Omnikassa using the notification token and reports whether it is COMPLETED
// @Tags status
// @Produce json
// @Param X-Notification-Token header string true "Notification token received from Omnikassa"
// @Success 200 {object} domain.StatusResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /status [get]
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	token := c.Get(TokenHeader)
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "notification token header is required",
			RayID:   rayID,
		})
	}

	checker := service.NewStatusChecker(h.provider, token)
	result, err := checker.Check(c.UserContext())
	if err != nil {
		logger.Get().Error("Order status check failed",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)

		status, resp := errorResponse(err)
		resp.RayID = rayID
		return c.Status(status).JSON(resp)
	}

	return c.Status(http.StatusOK).JSON(result)
}

// Health reports that the process is serving requests.
// @Summary Liveness probe
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorResponse maps a checker failure to an HTTP status and body.
func errorResponse(err error) (int, ErrorResponse) {
	var (
		transportErr *domain.TransportError
		statusErr    *domain.UnexpectedStatusError
		decodeErr    *domain.DecodeError
		shapeErr     *domain.ShapeError
	)

	switch {
	case errors.As(err, &transportErr):
		if isTimeout(err) {
			return http.StatusGatewayTimeout, ErrorResponse{Message: "payment gateway timed out"}
		}
		return http.StatusBadGateway, ErrorResponse{Message: "payment gateway unreachable"}
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, ErrorResponse{
			Message:        "payment gateway rejected the status request",
			UpstreamStatus: statusErr.StatusCode,
		}
	case errors.As(err, &decodeErr):
		return http.StatusBadGateway, ErrorResponse{Message: "payment gateway returned invalid JSON"}
	case errors.As(err, &shapeErr):
		return http.StatusBadGateway, ErrorResponse{Message: shapeErr.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: err.Error()}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
