package dto

import "time"

type CreateGigRequestDTO struct {
	Title       string `json:"title" example:"Paint the fence"`
	Description string `json:"description" example:"Two coats, white"`
	Reward      int64  `json:"reward" example:"50"`
}

type GigResponseDTO struct {
	ID          int       `json:"id" example:"10"`
	PosterID    int       `json:"poster_id" example:"1"`
	Title       string    `json:"title" example:"Paint the fence"`
	Description string    `json:"description,omitempty" example:"Two coats, white"`
	Reward      int64     `json:"reward" example:"50"`
	State       string    `json:"state" example:"OPEN"`
	AssigneeID  *int      `json:"assignee_id,omitempty" example:"2"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-01T12:00:00Z"`
}

type ApplyRequestDTO struct {
	Message string `json:"message" example:"I have my own brushes"`
}

type ApplicationResponseDTO struct {
	ID          int       `json:"id" example:"3"`
	GigID       int       `json:"gig_id" example:"10"`
	ApplicantID int       `json:"applicant_id" example:"2"`
	Message     string    `json:"message,omitempty" example:"I have my own brushes"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-01T12:00:00Z"`
}

type AcceptRequestDTO struct {
	ApplicantID int `json:"applicant_id" example:"2"`
}
