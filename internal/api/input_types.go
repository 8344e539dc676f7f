package api

import "github.com/terraincognita07/weekmark/internal/models"

type userPayload struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

type entryPayload struct {
	UserID string            `json:"userId"`
	Action string            `json:"action"`
	Status models.WeekStatus `json:"status"`
}

type statusPayload struct {
	Status models.WeekStatus `json:"status"`
}
