package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/service"
	helper "github.com/sthiefaine/psycholinguistique-back/internals/helpers"
)

type ParticipantsController struct {
	Query *service.QueryService
}

func NewParticipantsController(query *service.QueryService) *ParticipantsController {
	return &ParticipantsController{Query: query}
}

// =======================
// GET /api/participants
// Query: ?page=1&limit=50&nativeLanguage=french&germanLevel=B1
// =======================
func (ctrl *ParticipantsController) GetParticipants(c *fiber.Ctx) error {
	participants, err := ctrl.Query.ListParticipants(c.UserContext(), service.ListParticipantsQuery{
		Page:           helper.QueryInt(c, "page", 1),
		Limit:          helper.QueryInt(c, "limit", 0),
		NativeLanguage: c.Query("nativeLanguage"),
		GermanLevel:    c.Query("germanLevel"),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(participants)
}

// =======================
// GET /api/participants/:participantId
// =======================
func (ctrl *ParticipantsController) GetParticipantByID(c *fiber.Ctx) error {
	participantID := c.Params("participantId")

	participant, err := ctrl.Query.GetParticipantDetail(c.UserContext(), participantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(participant)
}

// =======================
// POST /api/participants/process
// Body: { "participantIds": ["P001", "P002"] }
// =======================
func (ctrl *ParticipantsController) ProcessParticipants(c *fiber.Ctx) error {
	var body dto.ProcessParticipantsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: participantIds must be a non-empty list")
	}

	resp, err := ctrl.Query.ProcessParticipants(c.UserContext(), &body)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}
