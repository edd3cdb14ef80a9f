// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrSubtaskNotFound signals missing subtask.
	ErrSubtaskNotFound = errors.New("subtask not found")
	// ErrCommentNotFound signals missing comment.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrMemberNotFound signals the user is not a member of the team.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserExists signals email conflict at registration.
	ErrUserExists = errors.New("user exists")
	// ErrMemberExists signals duplicate team membership.
	ErrMemberExists = errors.New("member exists")
	// ErrUnauthenticated signals a request with no bound principal.
	ErrUnauthenticated = errors.New("unauthenticated")
)
