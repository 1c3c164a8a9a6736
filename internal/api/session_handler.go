package api

import (
	"studyplanner/internal/model"
	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req model.SessionInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	session, err := h.sessionService.CreateSession(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.sessionService.ListSessions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sessions)
}
