package controllers

import (
	"dojo/database"
	"dojo/middleware"
	roadmapModels "dojo/models/roadmap"
	roadmapValidators "dojo/validators/roadmap"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateNode creates a node with its quiz, questions, options,
// project, objectives and resources in one nested payload, all within
// a single transaction. The node lands at the end of the roadmap
// unless an explicit position is given.
func AdminCreateNode(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	db := database.Database.Db

	var roadmap roadmapModels.Roadmap
	if err := db.Where("id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	reqData, ok := c.Locals("validatedNode").(*roadmapValidators.NodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var node roadmapModels.Node
	err := db.Transaction(func(tx *gorm.DB) error {
		position := 0
		if reqData.Position != nil {
			position = *reqData.Position
		} else {
			var maxPosition int64
			if err := tx.Model(&roadmapModels.Node{}).
				Where("roadmap_id = ?", roadmap.ID).
				Select("COALESCE(MAX(position), 0)").
				Scan(&maxPosition).Error; err != nil {
				return err
			}
			position = int(maxPosition) + 1
		}

		node = roadmapModels.Node{
			RoadmapID:        roadmap.ID,
			Title:            reqData.Title,
			ShortDescription: reqData.ShortDescription,
			LongDescription:  reqData.LongDescription,
			Icon:             reqData.Icon,
			Position:         position,
		}
		if err := tx.Create(&node).Error; err != nil {
			return err
		}
		return createNodeChildren(tx, node.ID, reqData)
	})
	if err != nil {
		log.Printf("Error creating node under roadmap %d: %v", roadmap.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create node!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Node created successfully!", node)
}

// AdminUpdateNode replaces a node's fields and children wholesale
func AdminUpdateNode(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ? AND roadmap_id = ?", nodeID, roadmapID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	reqData, ok := c.Locals("validatedNode").(*roadmapValidators.NodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		node.Title = reqData.Title
		node.ShortDescription = reqData.ShortDescription
		node.LongDescription = reqData.LongDescription
		node.Icon = reqData.Icon
		if reqData.Position != nil {
			node.Position = *reqData.Position
		}
		if err := tx.Save(&node).Error; err != nil {
			return err
		}

		// Children are replaced wholesale. Quiz statuses and project
		// submissions survive since their parent rows are kept.
		var quiz roadmapModels.Quiz
		if err := tx.Where("node_id = ?", node.ID).First(&quiz).Error; err != nil {
			return err
		}
		quiz.TimeLimit = reqData.Quiz.TimeLimit
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}
		if err := deleteQuizQuestions(tx, quiz.ID); err != nil {
			return err
		}
		if err := createQuestions(tx, quiz.ID, reqData.Quiz.Questions); err != nil {
			return err
		}

		var project roadmapModels.Project
		if err := tx.Where("node_id = ?", node.ID).First(&project).Error; err != nil {
			return err
		}
		project.Title = reqData.Project.Title
		project.Description = reqData.Project.Description
		if err := tx.Save(&project).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("node_id = ?", node.ID).
			Delete(&roadmapModels.KeyLearningObjective{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("node_id = ?", node.ID).
			Delete(&roadmapModels.Resource{}).Error; err != nil {
			return err
		}
		return createObjectivesAndResources(tx, node.ID, reqData)
	})
	if err != nil {
		log.Printf("Error updating node %d: %v", node.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update node!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Node updated successfully!", node)
}

// AdminDeleteNode deletes a node and everything it owns
func AdminDeleteNode(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ? AND roadmap_id = ?", nodeID, roadmapID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return deleteNodeCascade(tx, node.ID)
	}); err != nil {
		log.Printf("Error deleting node %d: %v", node.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete node!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Node deleted successfully!", nil)
}

func createNodeChildren(tx *gorm.DB, nodeID uint, reqData *roadmapValidators.NodePayload) error {
	quiz := roadmapModels.Quiz{
		NodeID:    nodeID,
		TimeLimit: reqData.Quiz.TimeLimit,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		return err
	}
	if err := createQuestions(tx, quiz.ID, reqData.Quiz.Questions); err != nil {
		return err
	}

	project := roadmapModels.Project{
		NodeID:      nodeID,
		Title:       reqData.Project.Title,
		Description: reqData.Project.Description,
	}
	if err := tx.Create(&project).Error; err != nil {
		return err
	}

	return createObjectivesAndResources(tx, nodeID, reqData)
}

func createQuestions(tx *gorm.DB, quizID uint, questions []roadmapValidators.QuestionPayload) error {
	for _, questionData := range questions {
		question := roadmapModels.Question{
			QuizID: quizID,
			Body:   questionData.Body,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, optionData := range questionData.Options {
			option := roadmapModels.Option{
				QuestionID: question.ID,
				Body:       optionData.Body,
				IsCorrect:  optionData.IsCorrect != nil && *optionData.IsCorrect,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createObjectivesAndResources(tx *gorm.DB, nodeID uint, reqData *roadmapValidators.NodePayload) error {
	for _, objective := range reqData.KeyLearningObjectives {
		if err := tx.Create(&roadmapModels.KeyLearningObjective{
			NodeID: nodeID,
			Body:   objective.Body,
		}).Error; err != nil {
			return err
		}
	}
	for _, resource := range reqData.Resources {
		if err := tx.Create(&roadmapModels.Resource{
			NodeID: nodeID,
			Link:   resource.Link,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteQuizQuestions hard deletes a quiz's questions and their options
func deleteQuizQuestions(tx *gorm.DB, quizID uint) error {
	var questionIDs []uint
	if err := tx.Model(&roadmapModels.Question{}).
		Where("quiz_id = ?", quizID).
		Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Unscoped().Where("question_id IN ?", questionIDs).
			Delete(&roadmapModels.Option{}).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Where("quiz_id = ?", quizID).Delete(&roadmapModels.Question{}).Error
}

// deleteNodeCascade hard deletes a node with its quiz, questions,
// options, quiz statuses, project, submissions, upvotes, objectives
// and resources
func deleteNodeCascade(tx *gorm.DB, nodeID uint) error {
	var quiz roadmapModels.Quiz
	err := tx.Where("node_id = ?", nodeID).First(&quiz).Error
	if err == nil {
		if err := deleteQuizQuestions(tx, quiz.ID); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("quiz_id = ?", quiz.ID).
			Delete(&roadmapModels.QuizStatus{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&quiz).Error; err != nil {
			return err
		}
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	var project roadmapModels.Project
	err = tx.Where("node_id = ?", nodeID).First(&project).Error
	if err == nil {
		if err := deleteProjectCascade(tx, project.ID); err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&project).Error; err != nil {
			return err
		}
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	if err := tx.Unscoped().Where("node_id = ?", nodeID).
		Delete(&roadmapModels.KeyLearningObjective{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("node_id = ?", nodeID).
		Delete(&roadmapModels.Resource{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("id = ?", nodeID).Delete(&roadmapModels.Node{}).Error
}

// deleteProjectCascade hard deletes a project's submissions and their upvotes
func deleteProjectCascade(tx *gorm.DB, projectID uint) error {
	var submissionIDs []uint
	if err := tx.Model(&roadmapModels.ProjectSubmission{}).
		Where("project_id = ?", projectID).
		Pluck("id", &submissionIDs).Error; err != nil {
		return err
	}
	if len(submissionIDs) > 0 {
		if err := tx.Unscoped().Where("project_submission_id IN ?", submissionIDs).
			Delete(&roadmapModels.ProjectSubmissionUpvote{}).Error; err != nil {
			return err
		}
	}
	return tx.Unscoped().Where("project_id = ?", projectID).
		Delete(&roadmapModels.ProjectSubmission{}).Error
}
