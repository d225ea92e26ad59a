package domain

import "time"

const EmotionalCheckinMaxLength = 100

type EmotionalCheckin struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CheckinDate time.Time `json:"checkin_date"`
	Value       string    `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SaveEmotionalCheckinRequest struct {
	Value string `json:"value" validate:"required,max=100"`
}
