package model

// Homework is one submission record from the statuses API
type Homework struct {
	ID              int64  `json:"id"`
	Name            string `json:"homework_name" validate:"required"`
	Status          string `json:"status" validate:"required"`
	ReviewerComment string `json:"reviewer_comment"`
	LessonName      string `json:"lesson_name"`
}

// StatusesResponse is the body the statuses endpoint answers with
type StatusesResponse struct {
	Homeworks   []Homework `json:"homeworks" validate:"required,dive"`
	CurrentDate int64      `json:"current_date" validate:"required"`
}
