package controllers

import (
	"dojo/database"
	"dojo/middleware"
	roadmapModels "dojo/models/roadmap"
	"dojo/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateProject attaches a project to a node that has none yet
func AdminCreateProject(c *fiber.Ctx) error {
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ?", nodeID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	var existing roadmapModels.Project
	if err := db.Where("node_id = ?", node.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Node already has a project!", nil)
	}

	reqData, ok := c.Locals("validatedProject").(*struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	project := roadmapModels.Project{
		NodeID:      node.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if err := db.Create(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", project)
}

// AdminUpdateProject changes a project's title or description
func AdminUpdateProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(uint)
	db := database.Database.Db

	var project roadmapModels.Project
	if err := db.Where("id = ?", projectID).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	reqData, ok := c.Locals("validatedProject").(*struct {
		Title       string `json:"title" validate:"required,max=255"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	project.Title = reqData.Title
	project.Description = reqData.Description
	if err := db.Save(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully!", project)
}

// AdminDeleteProject removes a project with its submissions and upvotes
func AdminDeleteProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(uint)
	db := database.Database.Db

	var project roadmapModels.Project
	if err := db.Where("id = ?", projectID).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deleteProjectCascade(tx, project.ID); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&project).Error
	})
	if err != nil {
		log.Printf("Error deleting project %d: %v", project.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}

// AdminAddObjective adds a key learning objective to a node
func AdminAddObjective(c *fiber.Ctx) error {
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ?", nodeID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	reqData, ok := c.Locals("validatedObjective").(*struct {
		Body string `json:"body" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	objective := roadmapModels.KeyLearningObjective{
		NodeID: node.ID,
		Body:   reqData.Body,
	}
	if err := db.Create(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create objective!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Objective created successfully!", objective)
}

// AdminUpdateObjective changes an objective's body
func AdminUpdateObjective(c *fiber.Ctx) error {
	objectiveID := c.Locals("objectiveID").(uint)
	db := database.Database.Db

	var objective roadmapModels.KeyLearningObjective
	if err := db.Where("id = ?", objectiveID).First(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Objective not found!", nil)
	}

	reqData, ok := c.Locals("validatedObjective").(*struct {
		Body string `json:"body" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	objective.Body = reqData.Body
	if err := db.Save(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update objective!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Objective updated successfully!", objective)
}

// AdminDeleteObjective removes a key learning objective
func AdminDeleteObjective(c *fiber.Ctx) error {
	objectiveID := c.Locals("objectiveID").(uint)
	db := database.Database.Db

	var objective roadmapModels.KeyLearningObjective
	if err := db.Where("id = ?", objectiveID).First(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Objective not found!", nil)
	}

	if err := db.Unscoped().Delete(&objective).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete objective!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Objective deleted successfully!", nil)
}

// AdminAddResource adds a resource link to a node. Dead links are
// probed in the background and only logged, never rejected.
func AdminAddResource(c *fiber.Ctx) error {
	nodeID := c.Locals("nodeID").(uint)
	db := database.Database.Db

	var node roadmapModels.Node
	if err := db.Where("id = ?", nodeID).First(&node).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Node not found!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		Link string `json:"link" validate:"required,url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := roadmapModels.Resource{
		NodeID: node.ID,
		Link:   reqData.Link,
	}
	if err := db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	go func(link string) {
		if err := utils.CheckLink(link); err != nil {
			log.Printf("Resource link %s failed health check: %v", link, err)
		}
	}(resource.Link)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// AdminUpdateResource changes a resource's link. The new link goes
// through the same background health check as a fresh one.
func AdminUpdateResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(uint)
	db := database.Database.Db

	var resource roadmapModels.Resource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		Link string `json:"link" validate:"required,url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource.Link = reqData.Link
	if err := db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	go func(link string) {
		if err := utils.CheckLink(link); err != nil {
			log.Printf("Resource link %s failed health check: %v", link, err)
		}
	}(resource.Link)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", resource)
}

// AdminDeleteResource removes a resource
func AdminDeleteResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(uint)
	db := database.Database.Db

	var resource roadmapModels.Resource
	if err := db.Where("id = ?", resourceID).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	if err := db.Unscoped().Delete(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
