package api

import (
	"errors"
	"log/slog"
	"strings"

	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidBody      = "INVALID_BODY"
	CodeInvalidID        = "INVALID_ID"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeUnknownUser      = "UNKNOWN_USER"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeFeatureDisabled  = "FEATURE_DISABLED"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{Code: code, Message: message})
}

// writeError maps service errors onto status codes. Anything unrecognised is logged with
// full detail and reported as a generic internal error.
func writeError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Invalid input",
			Details: strings.Join(verr.Fields, "; "),
		})
	case errors.Is(err, service.ErrUserNotFound):
		return respond(c, fiber.StatusNotFound, CodeNotFound, "User not found")
	case errors.Is(err, service.ErrStudyPlanNotFound):
		return respond(c, fiber.StatusNotFound, CodeNotFound, "Study plan not found")
	case errors.Is(err, service.ErrMessageNotFound):
		return respond(c, fiber.StatusNotFound, CodeNotFound, "Message not found")
	case errors.Is(err, service.ErrEmailTaken):
		return respond(c, fiber.StatusConflict, CodeConflict, "Email already exists")
	case errors.Is(err, service.ErrUnknownUser):
		return respond(c, fiber.StatusBadRequest, CodeUnknownUser,
			"Referenced user does not exist: the configured actor user (DEFAULT_ACTOR_ID) and any recipient must exist")
	case errors.Is(err, service.ErrAvatarUploadsDisabled):
		return respond(c, fiber.StatusServiceUnavailable, CodeFeatureDisabled, "Avatar uploads are not configured")
	default:
		slog.ErrorContext(c.UserContext(), "Unhandled request error",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return respond(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}

func badBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, CodeInvalidBody, "Cannot parse JSON")
}

// ErrorHandler handles errors that escape the handlers: unknown routes, framework errors
// and recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return respond(c, fe.Code, CodeNotFound, fe.Message)
		case fiber.StatusMethodNotAllowed:
			return respond(c, fe.Code, CodeMethodNotAllowed, fe.Message)
		case fiber.StatusTooManyRequests:
			return respond(c, fe.Code, CodeRateLimited, fe.Message)
		}
		if fe.Code < fiber.StatusInternalServerError {
			return respond(c, fe.Code, CodeInvalidBody, fe.Message)
		}
	}

	return writeError(c, err)
}
