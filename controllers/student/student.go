package controllers

import (
	"dojo/database"
	"dojo/middleware"
	roadmapModels "dojo/models/roadmap"
	"dojo/progression"
	"log"

	"github.com/gofiber/fiber/v2"
)

// JoinRoadmap enrolls the student into a published roadmap
func JoinRoadmap(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	roadmapID := c.Locals("roadmapID").(uint)

	enrollment, err := progression.Join(database.Database.Db, principal.ID, roadmapID)
	switch err {
	case nil:
	case progression.ErrNotPublished:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	case progression.ErrAlreadyEnrolled:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Already enrolled in this roadmap!", nil)
	default:
		log.Printf("Error joining roadmap %d: %v", roadmapID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join roadmap!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Joined roadmap successfully!", enrollment)
}

// GetUnlockedNodes lists the prefix of roadmap nodes the student may access
func GetUnlockedNodes(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	roadmapID := c.Locals("roadmapID").(uint)

	nodes, err := progression.UnlockedNodes(database.Database.Db, principal.ID, roadmapID)
	switch err {
	case nil:
	case progression.ErrNotPublished:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	case progression.ErrNotEnrolled:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this roadmap!", nil)
	default:
		log.Printf("Error resolving unlocked nodes for roadmap %d: %v", roadmapID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unlocked nodes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unlocked nodes fetched successfully!", nodes)
}

// SubmitQuiz grades the submitted answers and records the attempt outcome
func SubmitQuiz(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	quizID := c.Locals("quizID").(uint)
	db := database.Database.Db

	quiz, err := resolveQuiz(db, roadmapID, nodeID, quizID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	}

	answers, ok := c.Locals("validatedAnswers").(*[]progression.Answer)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := progression.GradeQuiz(db, principal.ID, quiz.ID, *answers)
	if err != nil {
		log.Printf("Error grading quiz %d for student %d: %v", quiz.ID, principal.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade quiz!", nil)
	}

	message := "Quiz failed"
	if result.Passed {
		message = "Quiz passed"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, result)
}

// SubmitProject upserts the student's project link; the score resets to zero
func SubmitProject(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	projectID := c.Locals("projectID").(uint)
	db := database.Database.Db

	project, err := resolveProject(db, roadmapID, nodeID, projectID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Link string `json:"link" validate:"required,url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission, err := progression.SubmitProject(db, principal.ID, project.ID, reqData.Link)
	if err != nil {
		log.Printf("Error submitting project %d for student %d: %v", project.ID, principal.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project submitted successfully!", submission)
}

// ListSubmissions lists peer submissions on a project for review
func ListSubmissions(c *fiber.Ctx) error {
	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	projectID := c.Locals("projectID").(uint)
	db := database.Database.Db

	project, err := resolveProject(db, roadmapID, nodeID, projectID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	}

	var submissions []roadmapModels.ProjectSubmission
	if err := db.Where("project_id = ?", project.ID).Order("score desc, id asc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// UpvoteSubmission records a peer upvote and returns the new score
func UpvoteSubmission(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)
	nodeID := c.Locals("nodeID").(uint)
	projectID := c.Locals("projectID").(uint)
	submissionID := c.Locals("submissionID").(uint)
	db := database.Database.Db

	if _, err := resolveProject(db, roadmapID, nodeID, projectID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	}

	newScore, err := progression.Upvote(db, principal.ID, submissionID)
	switch err {
	case nil:
	case progression.ErrSubmissionNotFound:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	case progression.ErrSelfUpvote:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Cannot upvote your own submission!", nil)
	case progression.ErrAlreadyUpvoted:
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Already upvoted this submission!", nil)
	default:
		log.Printf("Error upvoting submission %d by student %d: %v", submissionID, principal.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record upvote!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upvote recorded!", fiber.Map{
		"new_score": newScore,
	})
}

// GetStatistics returns the student's account-level progress numbers
func GetStatistics(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := progression.StudentStatistics(database.Database.Db, principal.ID)
	if err != nil {
		log.Printf("Error computing statistics for student %d: %v", principal.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", stats)
}

// GetRoadmapProgress returns the student's standing in one roadmap
func GetRoadmapProgress(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	roadmapID := c.Locals("roadmapID").(uint)

	progress, err := progression.RoadmapProgress(database.Database.Db, principal.ID, roadmapID)
	switch err {
	case nil:
	case progression.ErrNotPublished:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Roadmap not found!", nil)
	default:
		log.Printf("Error computing progress for roadmap %d: %v", roadmapID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}
