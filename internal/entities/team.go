// Package entities contains core business entities.
package entities

import "time"

// Team groups members under a manager. The team references users but does
// not own them.
type Team struct {
	ID          string
	Name        string
	Description string
	ManagerID   string
	CreatedAt   *time.Time
}

// TeamMember is a membership record, unique per (team, user).
type TeamMember struct {
	TeamID   string
	UserID   string
	JoinedAt time.Time
}
