package domain

import "time"

// Template is a reusable email subject and body owned by one user.
type Template struct {
	ID        string
	UserID    string
	Name      string
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TemplateInput struct {
	Name    string `validate:"required,max=200"`
	Subject string `validate:"required,max=998"`
	Body    string `validate:"required"`
}

type TemplatePatch struct {
	Name    *string `validate:"omitempty,min=1,max=200"`
	Subject *string `validate:"omitempty,min=1,max=998"`
	Body    *string `validate:"omitempty,min=1"`
}
