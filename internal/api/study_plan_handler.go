package api

import (
	"studyplanner/internal/model"
	"studyplanner/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StudyPlanHandler struct {
	planService service.StudyPlanService
}

func NewStudyPlanHandler(planService service.StudyPlanService) *StudyPlanHandler {
	return &StudyPlanHandler{planService: planService}
}

func (h *StudyPlanHandler) CreateStudyPlan(c *fiber.Ctx) error {
	var req model.StudyPlanInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	plan, err := h.planService.CreateStudyPlan(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

func (h *StudyPlanHandler) ListStudyPlans(c *fiber.Ctx) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return writeError(c, err)
	}
	limit, err := queryInt(c, "limit", service.DefaultListLimit)
	if err != nil {
		return writeError(c, err)
	}

	plans, err := h.planService.ListStudyPlans(c.UserContext(), skip, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(plans)
}

func (h *StudyPlanHandler) GetStudyPlan(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	plan, err := h.planService.GetStudyPlan(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

func (h *StudyPlanHandler) UpdateStudyPlan(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	var req model.StudyPlanInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	plan, err := h.planService.UpdateStudyPlan(c.UserContext(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(plan)
}

func (h *StudyPlanHandler) DeleteStudyPlan(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}

	if err := h.planService.DeleteStudyPlan(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Study plan deleted successfully"})
}
