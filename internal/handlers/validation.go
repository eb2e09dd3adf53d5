package handlers

import (
	"regexp"
	"strings"
)

var digitPattern = regexp.MustCompile(`\d`)

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validateCreateUser(req createUserRequest) []string {
	errs := []string{}

	if req.FirstName == nil || isBlank(*req.FirstName) {
		errs = append(errs, "firstName is required")
	} else if digitPattern.MatchString(*req.FirstName) {
		errs = append(errs, "firstName cannot contain numbers")
	}

	if req.LastName == nil || isBlank(*req.LastName) {
		errs = append(errs, "lastName is required")
	}
	if req.Email == nil || isBlank(*req.Email) {
		errs = append(errs, "email is required")
	}
	if req.Age == nil {
		errs = append(errs, "age must be a number")
	}

	return errs
}

func validateUpdateUser(req updateUserRequest) []string {
	errs := []string{}

	if req.FirstName != nil {
		if isBlank(*req.FirstName) {
			errs = append(errs, "firstName cannot be empty")
		} else if digitPattern.MatchString(*req.FirstName) {
			errs = append(errs, "firstName cannot contain numbers")
		}
	}
	if req.LastName != nil && isBlank(*req.LastName) {
		errs = append(errs, "lastName cannot be empty")
	}
	if req.Email != nil && isBlank(*req.Email) {
		errs = append(errs, "email cannot be empty")
	}

	return errs
}

func validateCreateWorkout(req createWorkoutRequest) []string {
	errs := []string{}

	if req.Title == nil || isBlank(*req.Title) {
		errs = append(errs, "title is required")
	}
	if req.Description != nil && isBlank(*req.Description) {
		errs = append(errs, "description cannot be empty if provided")
	}
	if req.DurationMinutes == nil {
		errs = append(errs, "durationMinutes must be a number")
	}
	if req.UserID == nil {
		errs = append(errs, "userId must be a number")
	}

	return errs
}

func validateUpdateWorkout(req updateWorkoutRequest) []string {
	errs := []string{}

	if req.Title != nil && isBlank(*req.Title) {
		errs = append(errs, "title cannot be empty")
	}
	if req.Description != nil && isBlank(*req.Description) {
		errs = append(errs, "description cannot be empty")
	}

	return errs
}
