package progression

import (
	roadmapModels "dojo/models/roadmap"

	"gorm.io/gorm"
)

// IsNodeComplete reports whether the student has both passed the
// node's quiz and had their project submission peer approved
// (score >= ApprovalScore). Completion is always derived from
// QuizStatus and ProjectSubmission; it is never stored on the node,
// since it is per-student state.
func IsNodeComplete(db *gorm.DB, studentID, nodeID uint) (bool, error) {
	var quiz roadmapModels.Quiz
	if err := db.Where("node_id = ?", nodeID).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	var passedCount int64
	if err := db.Model(&roadmapModels.QuizStatus{}).
		Where("quiz_id = ? AND student_id = ? AND passed = ?", quiz.ID, studentID, true).
		Count(&passedCount).Error; err != nil {
		return false, err
	}
	if passedCount == 0 {
		return false, nil
	}

	var project roadmapModels.Project
	if err := db.Where("node_id = ?", nodeID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}

	var approvedCount int64
	if err := db.Model(&roadmapModels.ProjectSubmission{}).
		Where("project_id = ? AND student_id = ? AND score >= ?", project.ID, studentID, ApprovalScore).
		Count(&approvedCount).Error; err != nil {
		return false, err
	}
	return approvedCount > 0, nil
}

// Statistics are the account-level progress numbers for a student
type Statistics struct {
	TotalNodesCompleted    int `json:"total_nodes_completed"`
	TotalRoadmapsCompleted int `json:"total_roadmaps_completed"`
	QuizzesPassed          int `json:"quizzes_passed"`
	ProjectsCompleted      int `json:"projects_completed"`
	TotalUpvotesGained     int `json:"total_upvotes_gained"`
}

// StudentStatistics aggregates completion over all published roadmaps.
// Nodes of unpublished roadmaps never count, even when their completion
// predicate would evaluate true from manually probed records.
func StudentStatistics(db *gorm.DB, studentID uint) (Statistics, error) {
	var stats Statistics

	var roadmaps []roadmapModels.Roadmap
	if err := db.Where("published = ?", true).Find(&roadmaps).Error; err != nil {
		return stats, err
	}

	for _, rm := range roadmaps {
		total, completed, err := roadmapCompletion(db, studentID, rm.ID)
		if err != nil {
			return stats, err
		}
		stats.TotalNodesCompleted += completed
		if total > 0 && completed == total {
			stats.TotalRoadmapsCompleted++
		}
	}

	var quizzesPassed int64
	if err := db.Model(&roadmapModels.QuizStatus{}).
		Where("student_id = ? AND passed = ?", studentID, true).
		Count(&quizzesPassed).Error; err != nil {
		return stats, err
	}
	stats.QuizzesPassed = int(quizzesPassed)

	var projectsCompleted int64
	if err := db.Model(&roadmapModels.ProjectSubmission{}).
		Where("student_id = ? AND score >= ?", studentID, ApprovalScore).
		Count(&projectsCompleted).Error; err != nil {
		return stats, err
	}
	stats.ProjectsCompleted = int(projectsCompleted)

	var totalUpvotes int64
	if err := db.Model(&roadmapModels.ProjectSubmission{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(SUM(score), 0)").
		Scan(&totalUpvotes).Error; err != nil {
		return stats, err
	}
	stats.TotalUpvotesGained = int(totalUpvotes)

	return stats, nil
}

// Progress describes a student's standing within one roadmap
type Progress struct {
	RoadmapID          uint    `json:"roadmap_id"`
	RoadmapTitle       string  `json:"roadmap_title"`
	TotalNodes         int     `json:"total_nodes"`
	CompletedNodes     int     `json:"completed_nodes"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// RoadmapProgress computes node completion counts for a published
// roadmap. Returns ErrNotPublished when the roadmap is missing or
// unpublished (students cannot tell the two apart).
func RoadmapProgress(db *gorm.DB, studentID, roadmapID uint) (Progress, error) {
	var rm roadmapModels.Roadmap
	if err := db.Where("id = ? AND published = ?", roadmapID, true).First(&rm).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return Progress{}, ErrNotPublished
		}
		return Progress{}, err
	}

	total, completed, err := roadmapCompletion(db, studentID, rm.ID)
	if err != nil {
		return Progress{}, err
	}

	progress := Progress{
		RoadmapID:      rm.ID,
		RoadmapTitle:   rm.Title,
		TotalNodes:     total,
		CompletedNodes: completed,
	}
	if total > 0 {
		progress.ProgressPercentage = float64(completed) / float64(total) * 100
	}
	return progress, nil
}

// roadmapCompletion counts a roadmap's nodes and how many of them the
// student has completed
func roadmapCompletion(db *gorm.DB, studentID, roadmapID uint) (total, completed int, err error) {
	var nodes []roadmapModels.Node
	if err = db.Where("roadmap_id = ?", roadmapID).Find(&nodes).Error; err != nil {
		return 0, 0, err
	}

	for _, node := range nodes {
		done, err := IsNodeComplete(db, studentID, node.ID)
		if err != nil {
			return 0, 0, err
		}
		if done {
			completed++
		}
	}
	return len(nodes), completed, nil
}
