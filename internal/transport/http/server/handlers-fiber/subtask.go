package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTaskSubtasks creates a checklist item under a task.
func (h *Handler) PostTaskSubtasks(c *fiber.Ctx) error {
	var body api.AddSubtaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	subtask, err := h.uc.AddSubtask(c.Context(), c.Params("taskID"), body.Title)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPISubtask(*subtask))
}

// GetTaskSubtasks lists a task's checklist items.
func (h *Handler) GetTaskSubtasks(c *fiber.Ctx) error {
	subtasks, err := h.uc.Subtasks(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISubtaskList(subtasks))
}

// PatchSubtaskToggle flips a subtask's completion state.
func (h *Handler) PatchSubtaskToggle(c *fiber.Ctx) error {
	subtask, err := h.uc.ToggleSubtask(c.Context(), c.Params("subtaskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISubtask(*subtask))
}

// DeleteSubtask removes a subtask.
func (h *Handler) DeleteSubtask(c *fiber.Ctx) error {
	if err := h.uc.DeleteSubtask(c.Context(), c.Params("subtaskID")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
