package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/service"
	helper "github.com/sthiefaine/psycholinguistique-back/internals/helpers"
)

type QuestionnaireController struct {
	Questionnaire *service.QuestionnaireService
}

func NewQuestionnaireController(questionnaire *service.QuestionnaireService) *QuestionnaireController {
	return &QuestionnaireController{Questionnaire: questionnaire}
}

// =======================
// POST /api/participants/:participantId/questionnaire
// =======================
func (ctrl *QuestionnaireController) SubmitQuestionnaire(c *fiber.Ctx) error {
	participantID := c.Params("participantId")

	var body dto.SubmitQuestionnaireRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resp, err := ctrl.Questionnaire.SubmitQuestionnaire(c.UserContext(), participantID, &body)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(resp)
}
