package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/service"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// =======================
// GET /api/stats
// =======================
func (ctrl *StatsController) GetStats(c *fiber.Ctx) error {
	stats, err := ctrl.Stats.GetStats(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(stats)
}
