package roadmapValidator

import (
	"dojo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// uintParam parses a positive integer route parameter into locals
// under localKey, failing the request with 400 otherwise
func uintParam(param, localKey, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || value == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(localKey, uint(value))
		return c.Next()
	}
}

func RoadmapParam() fiber.Handler {
	return uintParam("id", "roadmapID", "Roadmap ID")
}

func NodeParam() fiber.Handler {
	return uintParam("nodeId", "nodeID", "Node ID")
}

func QuizParam() fiber.Handler {
	return uintParam("quizId", "quizID", "Quiz ID")
}

func QuestionParam() fiber.Handler {
	return uintParam("questionId", "questionID", "Question ID")
}

func OptionParam() fiber.Handler {
	return uintParam("optionId", "optionID", "Option ID")
}

func ProjectParam() fiber.Handler {
	return uintParam("projectId", "projectID", "Project ID")
}

func SubmissionParam() fiber.Handler {
	return uintParam("submissionId", "submissionID", "Submission ID")
}

func ObjectiveParam() fiber.Handler {
	return uintParam("objectiveId", "objectiveID", "Objective ID")
}

func ResourceParam() fiber.Handler {
	return uintParam("resourceId", "resourceID", "Resource ID")
}
