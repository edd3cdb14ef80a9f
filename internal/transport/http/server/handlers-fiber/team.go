package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeams creates a team.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.uc.CreateTeam(c.Context(), entities.Team{
		Name:        body.Name,
		Description: body.Description,
		ManagerID:   body.ManagerID,
	})
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeam returns a team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PostTeamMembers adds a user to a team.
func (h *Handler) PostTeamMembers(c *fiber.Ctx) error {
	var body api.AddTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.AddTeamMember(c.Context(), c.Params("teamID"), body.UserID); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteTeamMember removes a user from a team.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	if err := h.uc.RemoveTeamMember(c.Context(), c.Params("teamID"), c.Params("userID")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetTeamMembers lists a team's users.
func (h *Handler) GetTeamMembers(c *fiber.Ctx) error {
	members, err := h.uc.TeamMembers(c.Context(), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(members))
}

// GetTeamWorkload returns the team's balance view.
func (h *Handler) GetTeamWorkload(c *fiber.Ctx) error {
	workload, err := h.uc.TeamWorkload(c.Context(), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamWorkload(*workload))
}

// GetTeamProjects lists a team's projects.
func (h *Handler) GetTeamProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ProjectsByTeam(c.Context(), c.Params("teamID"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProjectList(projects))
}
