package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/service"
	"github.com/rosterbook/gradebook-api/internal/utils"
)

// TeacherHandler wires teacher HTTP routes.
type TeacherHandler struct {
	service service.TeacherService
	logger  zerolog.Logger
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(service service.TeacherService, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		service: service,
		logger:  logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register attaches teacher endpoints to the router group.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Post("/:id/courses", h.addCourse)
	router.Delete("/:id/courses/:code", h.removeCourse)
	router.Get("/:id/dashboard", h.dashboard)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "teachers retrieved", h.service.ListTeachers())
}

func (h *TeacherHandler) create(c *fiber.Ctx) error {
	var payload dto.TeacherCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.CreateTeacher(payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, "teacher registered", teacher)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	teacher, err := h.service.GetTeacher(c.Params("id"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "teacher retrieved", teacher)
}

func (h *TeacherHandler) addCourse(c *fiber.Ctx) error {
	var payload dto.CourseRequest
	if err := c.BodyParser(&payload); err != nil || payload.Course == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "course is required")
	}

	teacher, err := h.service.AddTeacherCourse(c.Params("id"), payload.Course)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "course added", teacher)
}

func (h *TeacherHandler) removeCourse(c *fiber.Ctx) error {
	teacher, err := h.service.RemoveTeacherCourse(c.Params("id"), c.Params("code"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "course removed", teacher)
}

func (h *TeacherHandler) dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.TeacherDashboard(c.Params("id"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "dashboard assembled", dashboard)
}
