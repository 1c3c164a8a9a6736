package api

import (
	"studyplanner/internal/model"
	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser ignores any id in the body; ids are assigned by the store.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req model.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user, err := h.userService.CreateUser(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req model.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) GetUserSettings(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	settings, err := h.userService.GetUserSettings(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(settings)
}

func (h *UserHandler) UpdateUserSettings(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var settings model.Settings
	if err := c.BodyParser(&settings); err != nil {
		return badBody(c)
	}

	stored, err := h.userService.UpdateUserSettings(c.UserContext(), id, settings)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(stored)
}

func (h *UserHandler) GetAvatarUploadURL(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	upload, err := h.userService.CreateAvatarUploadURL(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(upload)
}
