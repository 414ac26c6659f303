package roadmapValidator

import (
	"dojo/middleware"
	"dojo/progression"
	"dojo/validators/validate"

	"github.com/gofiber/fiber/v2"
)

// Roadmap validates the roadmap create/update body
func Roadmap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title" validate:"required,max=255"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRoadmap", reqData)
		return c.Next()
	}
}

// Quiz validates the quiz create/update body
func Quiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TimeLimit *int `json:"time_limit" validate:"omitempty,min=1"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// Question validates the question create/update body
func Question() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Body string `json:"body" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// Option validates the option create/update body
func Option() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Body      string `json:"body" validate:"required"`
			IsCorrect *bool  `json:"is_correct" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOption", reqData)
		return c.Next()
	}
}

// Project validates the project create/update body
func Project() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,max=255"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProject", reqData)
		return c.Next()
	}
}

// Objective validates the key learning objective body
func Objective() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Body string `json:"body" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedObjective", reqData)
		return c.Next()
	}
}

// Resource validates the resource body
func Resource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Link string `json:"link" validate:"required,url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// Submission validates the project submission body
func Submission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Link string `json:"link" validate:"required,url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// Answers validates the quiz submission body
func Answers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []progression.Answer `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "This field is required!",
			})
		}

		c.Locals("validatedAnswers", &reqData.Answers)
		return c.Next()
	}
}
