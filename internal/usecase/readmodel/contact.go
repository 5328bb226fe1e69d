package readmodel

import "time"

type ContactRM struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Date      *string    `json:"date,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
