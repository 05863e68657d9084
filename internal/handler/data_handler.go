package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/dto"
	"github.com/rosterbook/gradebook-api/internal/service"
	"github.com/rosterbook/gradebook-api/internal/utils"
)

// DataHandler wires persistence HTTP routes: snapshot save/load, CSV
// import and the report/CSV exports.
type DataHandler struct {
	service service.DataService
	logger  zerolog.Logger
}

// NewDataHandler constructs the handler.
func NewDataHandler(service service.DataService, logger zerolog.Logger) *DataHandler {
	return &DataHandler{
		service: service,
		logger:  logger.With().Str("component", "data_handler").Logger(),
	}
}

// Register attaches data endpoints to the router group.
func (h *DataHandler) Register(router fiber.Router) {
	router.Post("/save", h.save)
	router.Post("/load", h.load)
	router.Post("/import/grades", h.importGrades)
	router.Post("/import/students", h.importStudents)
	router.Post("/export/report", h.exportReport)
	router.Post("/export/grades", h.exportGrades)
	router.Post("/export/roster/:code", h.exportRoster)
}

func (h *DataHandler) save(c *fiber.Ctx) error {
	var payload dto.SnapshotRequest
	_ = c.BodyParser(&payload)

	result, err := h.service.Save(payload.Filename)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "gradebook saved", result)
}

func (h *DataHandler) load(c *fiber.Ctx) error {
	var payload dto.SnapshotRequest
	_ = c.BodyParser(&payload)

	result, err := h.service.Load(payload.Filename)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "gradebook loaded", result)
}

func (h *DataHandler) importGrades(c *fiber.Ctx) error {
	var payload dto.ImportRequest
	if err := c.BodyParser(&payload); err != nil || payload.Path == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "path is required")
	}

	result, err := h.service.ImportGrades(payload.Path)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result.Message, result)
}

func (h *DataHandler) importStudents(c *fiber.Ctx) error {
	var payload dto.ImportRequest
	if err := c.BodyParser(&payload); err != nil || payload.Path == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "path is required")
	}

	result, err := h.service.ImportStudents(payload.Path)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "students imported", result)
}

func (h *DataHandler) exportReport(c *fiber.Ctx) error {
	var payload dto.ExportRequest
	_ = c.BodyParser(&payload)

	result, err := h.service.ExportReport(payload.Filename)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "report exported", result)
}

func (h *DataHandler) exportGrades(c *fiber.Ctx) error {
	var payload dto.ExportRequest
	_ = c.BodyParser(&payload)

	result, err := h.service.ExportGrades(payload.Filename)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "grades exported", result)
}

func (h *DataHandler) exportRoster(c *fiber.Ctx) error {
	var payload dto.ExportRequest
	_ = c.BodyParser(&payload)

	result, err := h.service.ExportRoster(c.Params("code"), payload.Filename)
	if err != nil {
		return sendDomainError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "roster exported", result)
}
