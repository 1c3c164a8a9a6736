package api

import (
	"studyplanner/internal/model"
	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var req model.MessageInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	msg, err := h.messageService.SendMessage(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(msg)
}

func (h *MessageHandler) ListMessages(c *fiber.Ctx) error {
	var filter model.MessageFilter

	if t := c.Query("type"); t != "" {
		filter.Type = &t
	}

	userID, err := queryInt64Ptr(c, "user_id")
	if err != nil {
		return writeError(c, err)
	}
	filter.UserID = userID

	groupID, err := queryInt64Ptr(c, "group_id")
	if err != nil {
		return writeError(c, err)
	}
	filter.GroupID = groupID

	messages, err := h.messageService.ListMessages(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.messageService.DeleteMessage(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": "Message deleted"})
}
