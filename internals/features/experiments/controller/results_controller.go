package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/service"
	helper "github.com/sthiefaine/psycholinguistique-back/internals/helpers"
)

type ResultsController struct {
	Ingestion *service.IngestionService
	Query     *service.QueryService
}

func NewResultsController(ingestion *service.IngestionService, query *service.QueryService) *ResultsController {
	return &ResultsController{Ingestion: ingestion, Query: query}
}

// =======================
// POST /api/results
// =======================
func (ctrl *ResultsController) SubmitResults(c *fiber.Ctx) error {
	var body dto.SubmitResultsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := ctrl.Ingestion.SubmitResults(c.UserContext(), &body, helper.ClientIP(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}

// =======================
// GET /api/results/:participantId
// =======================
func (ctrl *ResultsController) GetResultsByParticipantID(c *fiber.Ctx) error {
	participantID := c.Params("participantId")

	resp, err := ctrl.Query.GetByParticipantID(c.UserContext(), participantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *fiber.Ctx, err error) error {
	if se, ok := service.AsServiceError(err); ok {
		switch se.Code {
		case service.ErrorInvalid:
			return helper.JsonError(c, fiber.StatusBadRequest, se.Message)
		case service.ErrorNotFound:
			return helper.JsonError(c, fiber.StatusNotFound, se.Message)
		}
		return helper.JsonServerError(c, se.Message)
	}
	return helper.JsonServerError(c, err.Error())
}
