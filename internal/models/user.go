package models

import "time"

type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserDetail embeds the user's workouts for GET /users/:id.
type UserDetail struct {
	User
	Workouts []Workout `json:"workouts"`
}
