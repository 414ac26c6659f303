package controllers

import (
	"dojo/database"
	"dojo/middleware"
	roadmapModels "dojo/models/roadmap"

	"github.com/gofiber/fiber/v2"
)

// ListRoadmaps lists roadmaps. Admins see every roadmap with its
// publish state; students only see published ones.
func ListRoadmaps(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	var roadmaps []roadmapModels.Roadmap

	query := db.Order("id asc")
	if !principal.IsAdmin() {
		query = query.Where("published = ?", true)
	}
	if err := query.Find(&roadmaps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roadmaps!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmaps fetched successfully!", roadmaps)
}

// GetRoadmapDetails returns one roadmap with its ordered nodes.
// Students get 404 for unpublished roadmaps.
func GetRoadmapDetails(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)
	db := database.Database.Db

	query := db.Where("id = ?", roadmapID)
	if !principal.IsAdmin() {
		query = query.Where("published = ?", true)
	}

	var roadmap roadmapModels.Roadmap
	if err := query.First(&roadmap).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	}

	var nodes []roadmapModels.Node
	if err := db.Where("roadmap_id = ?", roadmap.ID).Order("position asc, id asc").Find(&nodes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch nodes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap fetched successfully!", fiber.Map{
		"roadmap": roadmap,
		"nodes":   nodes,
	})
}
