package domain

import "time"

type Course struct {
	ID        string
	UserID    string
	Name      string
	Code      string
	Color     string // hex, e.g. "#83a598"
	Term      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
