package roadmapRoutes

import (
	roadmapControllers "dojo/controllers/roadmap"
	"dojo/middleware"
	validators "dojo/validators/roadmap"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoadmapRoutes sets up all admin authoring routes
func SetupAdminRoadmapRoutes(app *fiber.App) {
	adminGroup := app.Group("/roadmaps", middleware.JWTMiddleware, middleware.RequireAdmin())

	// Roadmap CRUD and publishing
	adminGroup.Post("/", validators.Roadmap(), roadmapControllers.AdminCreateRoadmap)
	adminGroup.Put("/:id", validators.RoadmapParam(), validators.Roadmap(), roadmapControllers.AdminUpdateRoadmap)
	adminGroup.Delete("/:id", validators.RoadmapParam(), roadmapControllers.AdminDeleteRoadmap)
	adminGroup.Post("/:id/publish", validators.RoadmapParam(), roadmapControllers.AdminPublishRoadmap)
	adminGroup.Post("/:id/unpublish", validators.RoadmapParam(), roadmapControllers.AdminUnpublishRoadmap)

	// Node management (nested payload carries quiz, project, objectives and resources)
	adminGroup.Post("/:id/nodes", validators.RoadmapParam(), validators.Node(), roadmapControllers.AdminCreateNode)
	adminGroup.Put("/:id/nodes/:nodeId", validators.RoadmapParam(), validators.NodeParam(), validators.Node(), roadmapControllers.AdminUpdateNode)
	adminGroup.Delete("/:id/nodes/:nodeId", validators.RoadmapParam(), validators.NodeParam(), roadmapControllers.AdminDeleteNode)

	// Quiz management
	adminGroup.Post("/:id/nodes/:nodeId/quiz",
		validators.RoadmapParam(), validators.NodeParam(), validators.Quiz(),
		roadmapControllers.AdminCreateQuiz)
	adminGroup.Put("/:id/nodes/:nodeId/quiz/:quizId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.Quiz(),
		roadmapControllers.AdminUpdateQuiz)
	adminGroup.Delete("/:id/nodes/:nodeId/quiz/:quizId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(),
		roadmapControllers.AdminDeleteQuiz)

	adminGroup.Post("/:id/nodes/:nodeId/quiz/:quizId/questions",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.Question(),
		roadmapControllers.AdminAddQuestion)
	adminGroup.Put("/:id/nodes/:nodeId/quiz/:quizId/questions/:questionId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.QuestionParam(), validators.Question(),
		roadmapControllers.AdminUpdateQuestion)
	adminGroup.Delete("/:id/nodes/:nodeId/quiz/:quizId/questions/:questionId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.QuestionParam(),
		roadmapControllers.AdminDeleteQuestion)

	adminGroup.Post("/:id/nodes/:nodeId/quiz/:quizId/questions/:questionId/options",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.QuestionParam(), validators.Option(),
		roadmapControllers.AdminAddOption)
	adminGroup.Put("/:id/nodes/:nodeId/quiz/:quizId/questions/:questionId/options/:optionId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.QuestionParam(), validators.OptionParam(), validators.Option(),
		roadmapControllers.AdminUpdateOption)
	adminGroup.Delete("/:id/nodes/:nodeId/quiz/:quizId/questions/:questionId/options/:optionId",
		validators.RoadmapParam(), validators.NodeParam(), validators.QuizParam(), validators.QuestionParam(), validators.OptionParam(),
		roadmapControllers.AdminDeleteOption)

	// Project management
	adminGroup.Post("/:id/nodes/:nodeId/project",
		validators.RoadmapParam(), validators.NodeParam(), validators.Project(),
		roadmapControllers.AdminCreateProject)
	adminGroup.Put("/:id/nodes/:nodeId/project/:projectId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ProjectParam(), validators.Project(),
		roadmapControllers.AdminUpdateProject)
	adminGroup.Delete("/:id/nodes/:nodeId/project/:projectId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ProjectParam(),
		roadmapControllers.AdminDeleteProject)

	// Objectives and resources
	adminGroup.Post("/:id/nodes/:nodeId/key-learning-objectives",
		validators.RoadmapParam(), validators.NodeParam(), validators.Objective(),
		roadmapControllers.AdminAddObjective)
	adminGroup.Put("/:id/nodes/:nodeId/key-learning-objectives/:objectiveId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ObjectiveParam(), validators.Objective(),
		roadmapControllers.AdminUpdateObjective)
	adminGroup.Delete("/:id/nodes/:nodeId/key-learning-objectives/:objectiveId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ObjectiveParam(),
		roadmapControllers.AdminDeleteObjective)
	adminGroup.Post("/:id/nodes/:nodeId/resources",
		validators.RoadmapParam(), validators.NodeParam(), validators.Resource(),
		roadmapControllers.AdminAddResource)
	adminGroup.Put("/:id/nodes/:nodeId/resources/:resourceId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ResourceParam(), validators.Resource(),
		roadmapControllers.AdminUpdateResource)
	adminGroup.Delete("/:id/nodes/:nodeId/resources/:resourceId",
		validators.RoadmapParam(), validators.NodeParam(), validators.ResourceParam(),
		roadmapControllers.AdminDeleteResource)

	// Dashboard
	dashGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin())
	dashGroup.Get("/statistics", roadmapControllers.AdminDashboardStats)
}
