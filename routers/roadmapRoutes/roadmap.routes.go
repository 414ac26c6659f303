package roadmapRoutes

import (
	roadmapControllers "dojo/controllers/roadmap"
	studentControllers "dojo/controllers/student"
	"dojo/middleware"
	validators "dojo/validators/roadmap"

	"github.com/gofiber/fiber/v2"
)

// SetupRoadmapRoutes sets up the shared and student-facing roadmap routes
func SetupRoadmapRoutes(app *fiber.App) {
	roadmapGroup := app.Group("/roadmaps")

	// Listing and details (role-aware: admins see drafts too)
	roadmapGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAuth(), roadmapControllers.ListRoadmaps)
	roadmapGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireAuth(), validators.RoadmapParam(), roadmapControllers.GetRoadmapDetails)

	// Enrollment and progression
	roadmapGroup.Post("/:id/join", middleware.JWTMiddleware, middleware.RequireStudent(), validators.RoadmapParam(), studentControllers.JoinRoadmap)
	roadmapGroup.Get("/:id/unlocked-nodes", middleware.JWTMiddleware, middleware.RequireStudent(), validators.RoadmapParam(), studentControllers.GetUnlockedNodes)
	roadmapGroup.Get("/:id/progress", middleware.JWTMiddleware, middleware.RequireStudent(), validators.RoadmapParam(), studentControllers.GetRoadmapProgress)

	// Quiz submission
	roadmapGroup.Post("/:id/nodes/:nodeId/quiz/:quizId/submit",
		middleware.JWTMiddleware, middleware.RequireStudent(),
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.Answers(),
		studentControllers.SubmitQuiz)

	// Project submission and peer review
	roadmapGroup.Post("/:id/nodes/:nodeId/project/:projectId/submit",
		middleware.JWTMiddleware, middleware.RequireStudent(),
		validators.RoadmapParam(), validators.NodeParam(), validators.ProjectParam(), validators.Submission(),
		studentControllers.SubmitProject)
	roadmapGroup.Get("/:id/nodes/:nodeId/project/:projectId/submissions",
		middleware.JWTMiddleware, middleware.RequireStudent(),
		validators.RoadmapParam(), validators.NodeParam(), validators.ProjectParam(),
		studentControllers.ListSubmissions)
	roadmapGroup.Post("/:id/nodes/:nodeId/project/:projectId/submissions/:submissionId/upvote",
		middleware.JWTMiddleware, middleware.RequireStudent(),
		validators.RoadmapParam(), validators.NodeParam(), validators.ProjectParam(), validators.SubmissionParam(),
		studentControllers.UpvoteSubmission)

	// Account-level statistics
	studentGroup := app.Group("/student")
	studentGroup.Get("/statistics", middleware.JWTMiddleware, middleware.RequireStudent(), studentControllers.GetStatistics)
}
