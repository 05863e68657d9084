package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/service"
	"github.com/rosterbook/gradebook-api/internal/utils"
)

// GradeHandler wires grade and class aggregation HTTP routes. Grade
// mutations are registered behind the teacher-role guard by the router.
type GradeHandler struct {
	service service.GradeService
	logger  zerolog.Logger
}

// NewGradeHandler constructs the handler.
func NewGradeHandler(service service.GradeService, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		service: service,
		logger:  logger.With().Str("component", "grade_handler").Logger(),
	}
}

// Register attaches read endpoints; RegisterMutations attaches the
// teacher-only grade mutations.
func (h *GradeHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

// RegisterMutations attaches the grade mutation endpoints.
func (h *GradeHandler) RegisterMutations(router fiber.Router) {
	router.Post("", h.create)
	router.Patch("", h.update)
	router.Delete("", h.delete)
}

// RegisterClasses attaches the class aggregation endpoints.
func (h *GradeHandler) RegisterClasses(router fiber.Router) {
	router.Get("/:code/roster", h.roster)
	router.Get("/:code/average", h.average)
}

func (h *GradeHandler) list(c *fiber.Ctx) error {
	query := service.GradeQuery{
		Type:        c.Query("type"),
		Student:     c.Query("student"),
		LateOnly:    parseQueryBool(c, "late"),
		PassingOnly: parseQueryBool(c, "passing"),
	}

	var err error
	if query.MinScore, err = parseQueryFloat(c, "min_score"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if query.MaxScore, err = parseQueryFloat(c, "max_score"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if query.PassingScore, err = parseQueryFloat(c, "passing_score"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	if query.Week, err = parseQueryIntPtr(c, "week"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.SendSuccess(c, "grades retrieved", h.service.ListGrades(query))
}

func (h *GradeHandler) create(c *fiber.Ctx) error {
	var payload dto.GradeCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	grade, err := h.service.AddGrade(payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendCreated(c, "grade added", grade)
}

func (h *GradeHandler) update(c *fiber.Ctx) error {
	var payload dto.GradeUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	grade, err := h.service.UpdateGrade(payload)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "grade updated", grade)
}

func (h *GradeHandler) delete(c *fiber.Ctx) error {
	var payload dto.GradeDeleteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.DeleteGrade(payload); err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "grade deleted", fiber.Map{
		"student_id":      payload.StudentID,
		"class_name":      payload.ClassName,
		"assignment_name": payload.AssignmentName,
	})
}

func (h *GradeHandler) roster(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "roster retrieved", h.service.ClassRoster(c.Params("code")))
}

func (h *GradeHandler) average(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "class average computed", h.service.ClassAverage(c.Params("code")))
}
