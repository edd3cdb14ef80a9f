package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUsers registers a user account.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body api.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	user := entities.User{
		Email:             body.Email,
		FirstName:         body.FirstName,
		LastName:          body.LastName,
		Skills:            body.Skills,
		MaxCapacityPoints: body.MaxCapacityPoints,
	}
	if body.Role != "" {
		role, err := entities.ParseUserRole(body.Role)
		if err != nil {
			return writeError(c, err)
		}
		user.Role = role
	}

	created, err := h.uc.RegisterUser(c.Context(), user)
	if err != nil {
		h.log.Errorw("failed to register user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*created))
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.User(c.Context(), c.Params("userID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// GetUserTasks returns tasks assigned to a user.
func (h *Handler) GetUserTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.UserTasks(c.Context(), c.Params("userID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskList(tasks))
}

// GetUserDeadlines returns the user's unfinished tasks due within the
// next days (query param "days", default 7).
func (h *Handler) GetUserDeadlines(c *fiber.Ctx) error {
	days := c.QueryInt("days", 0)
	summaries, err := h.uc.UserDeadlines(c.Context(), c.Params("userID"), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskSummaryList(summaries))
}

// GetUserWorkload returns a user's workload view.
func (h *Handler) GetUserWorkload(c *fiber.Ctx) error {
	workload, err := h.uc.UserWorkload(c.Context(), c.Params("userID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIMemberWorkload(*workload))
}
