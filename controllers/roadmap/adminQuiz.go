package controllers

import (
	"dojo/database"
	"dojo/middleware"
	roadmapModels "dojo/models/roadmap"
	"dojo/progression"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateQuiz attaches a quiz to a node that has none yet
func AdminCreateQuiz(c *fiber.Ctx) error {
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ?", nodeID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	var existing roadmapModels.Quiz
	if err := db.Where("node_id = ?", node.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Node already has a quiz!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		TimeLimit *int `json:"time_limit" validate:"omitempty,min=1"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := roadmapModels.Quiz{
		NodeID:    node.ID,
		TimeLimit: reqData.TimeLimit,
	}
	if err := db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz changes a quiz's time limit
func AdminUpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	db := database.Database.Db

	var quiz roadmapModels.Quiz
	if err := db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		TimeLimit *int `json:"time_limit" validate:"omitempty,min=1"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz.TimeLimit = reqData.TimeLimit
	if err := db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz removes a quiz with its questions, options and statuses
func AdminDeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	db := database.Database.Db

	var quiz roadmapModels.Quiz
	if err := db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deleteQuizQuestions(tx, quiz.ID); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).
			Delete(&roadmapModels.QuizStatus{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&quiz).Error
	})
	if err != nil {
		log.Printf("Error deleting quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminAddQuestion adds a question to a quiz
func AdminAddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	db := database.Database.Db

	var quiz roadmapModels.Quiz
	if err := db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Body string `json:"body" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := roadmapModels.Question{
		QuizID: quiz.ID,
		Body:   reqData.Body,
	}
	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuestion changes a question's body
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)
	db := database.Database.Db

	var question roadmapModels.Question
	if err := db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Body string `json:"body" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question.Body = reqData.Body
	if err := db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion removes a question and its options
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)
	db := database.Database.Db

	var question roadmapModels.Question
	if err := db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("question_id = ?", question.ID).
			Delete(&roadmapModels.Option{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&question).Error
	})
	if err != nil {
		log.Printf("Error deleting question %d: %v", question.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

// AdminAddOption adds an answer option to a question. A question never
// holds more than the publishable option count.
func AdminAddOption(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)
	db := database.Database.Db

	var question roadmapModels.Question
	if err := db.Where("id = ?", questionID).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	var optionCount int64
	if err := db.Model(&roadmapModels.Option{}).Where("question_id = ?", question.ID).Count(&optionCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create option!", nil)
	}
	if optionCount >= progression.OptionsPerQuestion {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Question already has the maximum number of options!", nil)
	}

	reqData, ok := c.Locals("validatedOption").(*struct {
		Body      string `json:"body" validate:"required"`
		IsCorrect *bool  `json:"is_correct" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	option := roadmapModels.Option{
		QuestionID: question.ID,
		Body:       reqData.Body,
		IsCorrect:  *reqData.IsCorrect,
	}
	if err := db.Create(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Option created successfully!", option)
}

// AdminUpdateOption changes an option's body or correctness
func AdminUpdateOption(c *fiber.Ctx) error {
	optionID := c.Locals("optionID").(uint)
	db := database.Database.Db

	var option roadmapModels.Option
	if err := db.Where("id = ?", optionID).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
	}

	reqData, ok := c.Locals("validatedOption").(*struct {
		Body      string `json:"body" validate:"required"`
		IsCorrect *bool  `json:"is_correct" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	option.Body = reqData.Body
	option.IsCorrect = *reqData.IsCorrect
	if err := db.Save(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Option updated successfully!", option)
}

// AdminDeleteOption removes an option
func AdminDeleteOption(c *fiber.Ctx) error {
	optionID := c.Locals("optionID").(uint)
	db := database.Database.Db

	var option roadmapModels.Option
	if err := db.Where("id = ?", optionID).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
	}

	if err := db.Unscoped().Delete(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Option deleted successfully!", nil)
}
