package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrSubtaskNotFound),
		errors.Is(err, entities.ErrCommentNotFound),
		errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.CodeConflict
		msg = "email already registered"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = api.CodeConflict
		msg = "user is already a team member"
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = api.CodeUnauthenticated
		msg = "authentication required"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, msg))
}

func principal(c *fiber.Ctx) (entities.Principal, error) {
	p, ok := c.Locals(middleware.PrincipalKey).(entities.Principal)
	if !ok {
		return entities.Principal{}, entities.ErrUnauthenticated
	}
	return p, nil
}
