package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostProjects creates a project owned by the calling manager.
func (h *Handler) PostProjects(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.CreateProject(c.Context(), entities.Project{
		Name:        body.Name,
		Description: body.Description,
		TeamID:      body.TeamID,
		ManagerID:   caller.UserID,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	})
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIProject(*project))
}

// GetProject returns a project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), c.Params("projectID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}

// PatchProject applies a partial project update.
func (h *Handler) PatchProject(c *fiber.Ctx) error {
	var body api.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	upd := entities.ProjectUpdate{
		Name:        body.Name,
		Description: body.Description,
		EndDate:     body.EndDate,
	}
	if body.Status != nil {
		status, err := entities.ParseProjectStatus(*body.Status)
		if err != nil {
			return writeError(c, err)
		}
		upd.Status = &status
	}

	project, err := h.uc.UpdateProject(c.Context(), c.Params("projectID"), upd)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}

// GetProjectTasks lists the project's tasks.
func (h *Handler) GetProjectTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.ProjectTasks(c.Context(), c.Params("projectID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITaskList(tasks))
}

// GetProjectProgress returns the derived completion snapshot.
func (h *Handler) GetProjectProgress(c *fiber.Ctx) error {
	progress, err := h.uc.ProjectProgress(c.Context(), c.Params("projectID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProgress(*progress))
}

// PostProjectRecomputeRisk rolls up task risk levels into the project.
func (h *Handler) PostProjectRecomputeRisk(c *fiber.Ctx) error {
	projectID := c.Params("projectID")
	if err := h.uc.RecomputeProjectRisk(c.Context(), projectID); err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.Project(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*project))
}

// GetMyProjects lists the calling manager's projects, with an optional
// status filter.
func (h *Handler) GetMyProjects(c *fiber.Ctx) error {
	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	var status *entities.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := entities.ParseProjectStatus(raw)
		if err != nil {
			return writeError(c, err)
		}
		status = &parsed
	}

	projects, err := h.uc.ProjectsByManager(c.Context(), caller.UserID, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProjectList(projects))
}
