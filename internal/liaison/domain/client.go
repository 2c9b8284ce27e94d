package domain

import "time"

// Client is a contact record owned by one user.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientInput struct {
	Name  string  `validate:"required,max=200"`
	Email string  `validate:"required,email,max=320"`
	Phone *string `validate:"omitempty,max=50"`
	Notes *string `validate:"omitempty,max=5000"`
}

// ClientPatch changes only the non-nil fields.
type ClientPatch struct {
	Name  *string `validate:"omitempty,min=1,max=200"`
	Email *string `validate:"omitempty,email,max=320"`
	Phone *string `validate:"omitempty,max=50"`
	Notes *string `validate:"omitempty,max=5000"`
}
