package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTaskComments records a comment on a task by the caller.
func (h *Handler) PostTaskComments(c *fiber.Ctx) error {
	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.AddCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	comment, err := h.uc.AddComment(c.Context(), c.Params("taskID"), caller.UserID, body.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIComment(*comment))
}

// GetTaskComments lists a task's comments oldest first.
func (h *Handler) GetTaskComments(c *fiber.Ctx) error {
	comments, err := h.uc.TaskComments(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICommentList(comments))
}

// PutComment replaces a comment's content.
func (h *Handler) PutComment(c *fiber.Ctx) error {
	var body api.UpdateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	comment, err := h.uc.UpdateComment(c.Context(), c.Params("commentID"), body.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIComment(*comment))
}

// DeleteComment removes a comment.
func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	if err := h.uc.DeleteComment(c.Context(), c.Params("commentID")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
