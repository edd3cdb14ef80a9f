package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTasks creates a task.
func (h *Handler) PostTasks(c *fiber.Ctx) error {
	var body api.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	task := entities.Task{
		ProjectID:        body.ProjectID,
		Title:            body.Title,
		Description:      body.Description,
		StoryPoints:      body.StoryPoints,
		AssignedToUserID: body.AssignedToUserID,
		EstimatedHours:   body.EstimatedHours,
		DueDate:          body.DueDate,
		CreatedByUserID:  caller.UserID,
	}
	if body.Priority != "" {
		priority, err := entities.ParseTaskPriority(body.Priority)
		if err != nil {
			return writeError(c, err)
		}
		task.Priority = priority
	}

	created, err := h.uc.CreateTask(c.Context(), task)
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITask(*created))
}

// GetTask returns a task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	task, err := h.uc.Task(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PutTask replaces the mutable task details.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	var body api.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	priority, err := entities.ParseTaskPriority(body.Priority)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("taskID"), entities.TaskUpdate{
		Title:          body.Title,
		Description:    body.Description,
		Priority:       priority,
		StoryPoints:    body.StoryPoints,
		EstimatedHours: body.EstimatedHours,
		DueDate:        body.DueDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskAssign moves a task to a user.
func (h *Handler) PostTaskAssign(c *fiber.Ctx) error {
	var body api.AssignTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.AssignTask(c.Context(), c.Params("taskID"), body.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PatchTaskStatus transitions a task.
func (h *Handler) PatchTaskStatus(c *fiber.Ctx) error {
	var body api.UpdateTaskStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	status, err := entities.ParseTaskStatus(body.Status)
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.UpdateTaskStatus(c.Context(), c.Params("taskID"), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskSubmitReview attaches PR metadata and moves the task to review.
func (h *Handler) PostTaskSubmitReview(c *fiber.Ctx) error {
	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.SubmitForReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.SubmitForReview(c.Context(), c.Params("taskID"), body.PullRequestURL, body.ActualHours, caller.UserID, body.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskApprove accepts a review and completes the task.
func (h *Handler) PostTaskApprove(c *fiber.Ctx) error {
	task, err := h.uc.ApproveTask(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskRequestChanges sends a reviewed task back to work.
func (h *Handler) PostTaskRequestChanges(c *fiber.Ctx) error {
	task, err := h.uc.RequestChanges(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}

// PostTaskPredictRisk re-runs the risk advisor for the task.
func (h *Handler) PostTaskPredictRisk(c *fiber.Ctx) error {
	task, err := h.uc.PredictTaskRisk(c.Context(), c.Params("taskID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*task))
}
