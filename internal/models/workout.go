package models

import "time"

type Workout struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	UserID          int64     `json:"userId"`
	CategoryID      *int64    `json:"categoryId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type WorkoutWithUser struct {
	Workout
	User *User `json:"user,omitempty"`
}

// WorkoutDetail embeds the owning user and the optional category for
// GET /workouts/:id.
type WorkoutDetail struct {
	Workout
	User     *User     `json:"user,omitempty"`
	Category *Category `json:"category,omitempty"`
}
