package controllers

import (
	"dojo/database"
	"dojo/middleware"
	"dojo/models"
	roadmapModels "dojo/models/roadmap"
	"dojo/progression"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateRoadmap creates a new unpublished roadmap
func AdminCreateRoadmap(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRoadmap").(*struct {
		Title string `json:"title" validate:"required,max=255"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	roadmap := roadmapModels.Roadmap{
		Title:     reqData.Title,
		Published: false,
		CreatedBy: principal.ID,
	}

	if err := database.Database.Db.Create(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Roadmap created successfully!", roadmap)
}

// AdminUpdateRoadmap updates a roadmap's title
func AdminUpdateRoadmap(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)

	var roadmap roadmapModels.Roadmap
	if err := database.Database.Db.Where("id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	reqData, ok := c.Locals("validatedRoadmap").(*struct {
		Title string `json:"title" validate:"required,max=255"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	roadmap.Title = reqData.Title
	if err := database.Database.Db.Save(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap updated successfully!", roadmap)
}

// AdminDeleteRoadmap deletes a roadmap and everything it owns
func AdminDeleteRoadmap(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	db := database.Database.Db

	var roadmap roadmapModels.Roadmap
	if err := db.Where("id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var nodes []roadmapModels.Node
		if err := tx.Where("roadmap_id = ?", roadmap.ID).Find(&nodes).Error; err != nil {
			return err
		}
		for _, node := range nodes {
			if err := deleteNodeCascade(tx, node.ID); err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("roadmap_id = ?", roadmap.ID).
			Delete(&roadmapModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&roadmap).Error
	})
	if err != nil {
		log.Printf("Error deleting roadmap %d: %v", roadmap.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap deleted successfully!", nil)
}

// AdminPublishRoadmap validates the roadmap and marks it published.
// Validation returns the first violation found; the published flag is
// only written after validation passes.
func AdminPublishRoadmap(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	db := database.Database.Db

	var roadmap roadmapModels.Roadmap
	if err := db.Where("id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	if err := progression.CanPublish(db, roadmap.ID); err != nil {
		var violation *progression.Violation
		if errors.As(err, &violation) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, violation.Error(), fiber.Map{
				"code":        violation.Code,
				"node_id":     violation.NodeID,
				"question_id": violation.QuestionID,
			})
		}
		log.Printf("Error validating roadmap %d for publish: %v", roadmap.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate roadmap!", nil)
	}

	roadmap.Published = true
	if err := db.Save(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap published successfully!", roadmap)
}

// AdminUnpublishRoadmap hides a roadmap from students. Always allowed.
func AdminUnpublishRoadmap(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	db := database.Database.Db

	var roadmap roadmapModels.Roadmap
	if err := db.Where("id = ?", roadmapID).First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	roadmap.Published = false
	if err := db.Save(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unpublish roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap unpublished successfully!", roadmap)
}

// AdminDashboardStats returns platform-wide counters
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, totalRoadmaps, publishedRoadmaps int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&totalStudents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&roadmapModels.Roadmap{}).Count(&totalRoadmaps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}
	if err := db.Model(&roadmapModels.Roadmap{}).Where("published = ?", true).Count(&publishedRoadmaps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", fiber.Map{
		"total_students":       totalStudents,
		"total_roadmaps":       totalRoadmaps,
		"published_roadmaps":   publishedRoadmaps,
		"unpublished_roadmaps": totalRoadmaps - publishedRoadmaps,
	})
}
