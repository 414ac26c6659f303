package controllers

import (
	roadmapModels "dojo/models/roadmap"
	"errors"

	"gorm.io/gorm"
)

var (
	errRoadmapNotFound = errors.New("Roadmap not found!")
	errNodeNotFound    = errors.New("Node not found!")
	errQuizNotFound    = errors.New("Quiz not found!")
	errProjectNotFound = errors.New("Project not found!")
)

// resolveNode checks the roadmap is published and owns the node
func resolveNode(db *gorm.DB, roadmapID, nodeID uint) (roadmapModels.Node, error) {
	var roadmap roadmapModels.Roadmap
	if err := db.Where("id = ? AND published = ?", roadmapID, true).First(&roadmap).Error; err != nil {
		return roadmapModels.Node{}, errRoadmapNotFound
	}

	var node roadmapModels.Node
	if err := db.Where("id = ? AND roadmap_id = ?", nodeID, roadmap.ID).First(&node).Error; err != nil {
		return roadmapModels.Node{}, errNodeNotFound
	}
	return node, nil
}

// resolveQuiz checks the published roadmap, node, quiz chain
func resolveQuiz(db *gorm.DB, roadmapID, nodeID, quizID uint) (roadmapModels.Quiz, error) {
	node, err := resolveNode(db, roadmapID, nodeID)
	if err != nil {
		return roadmapModels.Quiz{}, err
	}

	var quiz roadmapModels.Quiz
	if err := db.Where("id = ? AND node_id = ?", quizID, node.ID).First(&quiz).Error; err != nil {
		return roadmapModels.Quiz{}, errQuizNotFound
	}
	return quiz, nil
}

// resolveProject checks the published roadmap, node, project chain
func resolveProject(db *gorm.DB, roadmapID, nodeID, projectID uint) (roadmapModels.Project, error) {
	node, err := resolveNode(db, roadmapID, nodeID)
	if err != nil {
		return roadmapModels.Project{}, err
	}

	var project roadmapModels.Project
	if err := db.Where("id = ? AND node_id = ?", projectID, node.ID).First(&project).Error; err != nil {
		return roadmapModels.Project{}, errProjectNotFound
	}
	return project, nil
}
