package models

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CategoryWithCount struct {
	Category
	WorkoutCount int `json:"workoutCount"`
}

// CategoryDetail embeds the category's workouts, each with its owner,
// for GET /categories/:id.
type CategoryDetail struct {
	Category
	Workouts []WorkoutWithUser `json:"workouts"`
}
