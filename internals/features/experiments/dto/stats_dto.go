package dto

type StatsDTO struct {
	TotalParticipants int64  `json:"totalParticipants"`
	TotalExperiments  int64  `json:"totalExperiments"`
	TotalTrials       int64  `json:"totalTrials"`
	AverageAccuracy   string `json:"averageAccuracy"` // "70.00%", "0%" when no trials
}
