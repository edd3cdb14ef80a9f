package entities

import "time"

// Comment is a discussion entry on a task.
type Comment struct {
	ID        string
	TaskID    string
	AuthorID  string
	Content   string
	CreatedAt *time.Time
}
