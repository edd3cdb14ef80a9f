package handlers_fiber

import (
	"net/http"

	"github.com/Vedant634/flowdesk-project/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetManagerDashboard returns the calling manager's aggregate view.
func (h *Handler) GetManagerDashboard(c *fiber.Ctx) error {
	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	dash, err := h.uc.ManagerDashboard(c.Context(), caller.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIManagerDashboard(*dash))
}

// GetDeveloperDashboard returns the calling developer's personal view.
func (h *Handler) GetDeveloperDashboard(c *fiber.Ctx) error {
	caller, err := principal(c)
	if err != nil {
		return writeError(c, err)
	}

	dash, err := h.uc.DeveloperDashboard(c.Context(), caller.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDeveloperDashboard(*dash))
}
