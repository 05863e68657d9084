package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/service"
	"github.com/rosterbook/gradebook-api/internal/utils"
)

// StudentHandler wires student HTTP routes.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Delete("/:id", h.delete)
	router.Post("/:id/enroll", h.enroll)
	router.Post("/:id/drop", h.drop)
	router.Get("/:id/average", h.average)
	router.Get("/:id/dashboard", h.dashboard)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "students retrieved", h.service.ListStudents())
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.CreateStudent(payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, "student registered", student)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	student, err := h.service.GetStudent(c.Params("id"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "student retrieved", student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteStudent(id); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "student removed", fiber.Map{"student_id": id})
}

func (h *StudentHandler) enroll(c *fiber.Ctx) error {
	var payload dto.EnrollmentRequest
	if err := c.BodyParser(&payload); err != nil || payload.Course == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "course is required")
	}

	student, err := h.service.EnrollStudent(c.Params("id"), payload.Course)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "student enrolled", student)
}

func (h *StudentHandler) drop(c *fiber.Ctx) error {
	var payload dto.EnrollmentRequest
	if err := c.BodyParser(&payload); err != nil || payload.Course == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "course is required")
	}

	student, err := h.service.DropStudent(c.Params("id"), payload.Course)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "course dropped", student)
}

func (h *StudentHandler) average(c *fiber.Ctx) error {
	average, err := h.service.StudentOverallAverage(c.Params("id"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "average computed", average)
}

func (h *StudentHandler) dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.StudentDashboard(c.Params("id"))
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "dashboard assembled", dashboard)
}
