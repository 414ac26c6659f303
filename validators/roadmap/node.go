package roadmapValidator

import (
	"dojo/middleware"
	"dojo/validators/validate"

	"github.com/gofiber/fiber/v2"
)

// NodePayload is the nested create/update body for a node together
// with all of its children
type NodePayload struct {
	Title            string `json:"title" validate:"required,max=255"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Icon             string `json:"icon"`
	Position         *int   `json:"position" validate:"omitempty,min=1"`

	Quiz                  QuizPayload        `json:"quiz" validate:"required"`
	Project               ProjectPayload     `json:"project" validate:"required"`
	KeyLearningObjectives []ObjectivePayload `json:"key_learning_objectives" validate:"required,min=1,dive"`
	Resources             []ResourcePayload  `json:"resources" validate:"required,min=1,dive"`
}

type QuizPayload struct {
	TimeLimit *int              `json:"time_limit" validate:"omitempty,min=1"`
	Questions []QuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

type QuestionPayload struct {
	Body    string          `json:"body" validate:"required"`
	Options []OptionPayload `json:"options" validate:"required,min=1,max=4,dive"`
}

type OptionPayload struct {
	Body      string `json:"body" validate:"required"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

type ProjectPayload struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
}

type ObjectivePayload struct {
	Body string `json:"body" validate:"required"`
}

type ResourcePayload struct {
	Link string `json:"link" validate:"required,url"`
}

// Node validates the nested node payload
func Node() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NodePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNode", reqData)
		return c.Next()
	}
}
