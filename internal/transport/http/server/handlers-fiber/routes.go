package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API. Everything except registration sits behind
// the auth middleware; manager-only routes add a role check.
func (h *Handler) RegisterRoutes(app *fiber.App, auth fiber.Handler, requireManager fiber.Handler) {
	root := app.Group("/api")

	root.Post("/users", h.PostUsers)

	v := root.Group("", auth)

	v.Get("/users/:userID", h.GetUser)
	v.Get("/users/:userID/tasks", h.GetUserTasks)
	v.Get("/users/:userID/workload", h.GetUserWorkload)
	v.Get("/users/:userID/deadlines", h.GetUserDeadlines)

	v.Post("/teams", requireManager, h.PostTeams)
	v.Get("/teams/:teamID", h.GetTeam)
	v.Post("/teams/:teamID/members", requireManager, h.PostTeamMembers)
	v.Delete("/teams/:teamID/members/:userID", requireManager, h.DeleteTeamMember)
	v.Get("/teams/:teamID/members", h.GetTeamMembers)
	v.Get("/teams/:teamID/workload", h.GetTeamWorkload)
	v.Get("/teams/:teamID/projects", h.GetTeamProjects)

	v.Post("/projects", requireManager, h.PostProjects)
	v.Get("/projects/my", h.GetMyProjects)
	v.Get("/projects/:projectID", h.GetProject)
	v.Patch("/projects/:projectID", requireManager, h.PatchProject)
	v.Get("/projects/:projectID/tasks", h.GetProjectTasks)
	v.Get("/projects/:projectID/progress", h.GetProjectProgress)
	v.Post("/projects/:projectID/recompute-risk", requireManager, h.PostProjectRecomputeRisk)

	v.Post("/tasks", h.PostTasks)
	v.Get("/tasks/:taskID", h.GetTask)
	v.Put("/tasks/:taskID", h.PutTask)
	v.Post("/tasks/:taskID/assign", h.PostTaskAssign)
	v.Patch("/tasks/:taskID/status", h.PatchTaskStatus)
	v.Post("/tasks/:taskID/submit-review", h.PostTaskSubmitReview)
	v.Post("/tasks/:taskID/approve", requireManager, h.PostTaskApprove)
	v.Post("/tasks/:taskID/request-changes", requireManager, h.PostTaskRequestChanges)
	v.Post("/tasks/:taskID/predict-risk", h.PostTaskPredictRisk)

	v.Post("/tasks/:taskID/comments", h.PostTaskComments)
	v.Get("/tasks/:taskID/comments", h.GetTaskComments)
	v.Put("/comments/:commentID", h.PutComment)
	v.Delete("/comments/:commentID", h.DeleteComment)

	v.Post("/tasks/:taskID/subtasks", h.PostTaskSubtasks)
	v.Get("/tasks/:taskID/subtasks", h.GetTaskSubtasks)
	v.Patch("/subtasks/:subtaskID/toggle", h.PatchSubtaskToggle)
	v.Delete("/subtasks/:subtaskID", h.DeleteSubtask)

	v.Get("/dashboard/manager", requireManager, h.GetManagerDashboard)
	v.Get("/dashboard/developer", h.GetDeveloperDashboard)
}
