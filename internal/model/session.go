package model

type Session struct {
	ID       int64  `json:"id"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

type SessionInput struct {
	Subject  string `json:"subject" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
}
