package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/controller"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/service"
)

// ExperimentRoutes wires the results, participants, questionnaire and stats
// endpoints under the given router. Services share the injected repository.
func ExperimentRoutes(api fiber.Router, repo repository.Repository) {
	ingestionService := service.NewIngestionService(repo)
	queryService := service.NewQueryService(repo)
	questionnaireService := service.NewQuestionnaireService(repo)
	statsService := service.NewStatsService(repo)

	resultsCtrl := controller.NewResultsController(ingestionService, queryService)
	participantsCtrl := controller.NewParticipantsController(queryService)
	questionnaireCtrl := controller.NewQuestionnaireController(questionnaireService)
	statsCtrl := controller.NewStatsController(statsService)

	results := api.Group("/results")
	results.Post("/", resultsCtrl.SubmitResults)
	results.Get("/:participantId", resultsCtrl.GetResultsByParticipantID)

	participants := api.Group("/participants")
	participants.Get("/", participantsCtrl.GetParticipants)
	// /process before /:participantId so it is not captured as an id
	participants.Post("/process", participantsCtrl.ProcessParticipants)
	participants.Get("/:participantId", participantsCtrl.GetParticipantByID)
	participants.Post("/:participantId/questionnaire", questionnaireCtrl.SubmitQuestionnaire)

	api.Get("/stats", statsCtrl.GetStats)
}
