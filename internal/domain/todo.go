package domain

import "time"

// Todo is the domain entity for a task record. OwnerID is set at
// creation and never changes; all reads and writes are scoped to it.
type Todo struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
