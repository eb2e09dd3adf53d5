package models

type TopCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	WorkoutCount int    `json:"workoutCount"`
}

type OverviewStats struct {
	TotalUsers      int           `json:"totalUsers"`
	TotalWorkouts   int           `json:"totalWorkouts"`
	TotalCategories int           `json:"totalCategories"`
	AverageDuration float64       `json:"averageDuration"`
	TopCategories   []TopCategory `json:"topCategories"`
}

type CategoryStats struct {
	Category     string `json:"category"`
	Count        int    `json:"count"`
	TotalMinutes int    `json:"totalMinutes"`
}

type UserStats struct {
	UserID          int64           `json:"userId"`
	TotalWorkouts   int             `json:"totalWorkouts"`
	TotalMinutes    int             `json:"totalMinutes"`
	AverageDuration int             `json:"averageDuration"`
	ThisWeek        int             `json:"thisWeek"`
	ByCategory      []CategoryStats `json:"byCategory"`
}
