package roadmap

import "gorm.io/gorm"

// Project belongs to exactly one node
type Project struct {
	gorm.Model
	NodeID      uint   `json:"node_id" gorm:"uniqueIndex;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectSubmission is a student's project link, one per (project, student).
// Score is derived from upvotes and is never written by the submitter.
type ProjectSubmission struct {
	gorm.Model
	ProjectID  uint   `json:"project_id" gorm:"index;not null;uniqueIndex:idx_project_student"`
	StudentID  uint   `json:"student_id" gorm:"index;not null;uniqueIndex:idx_project_student"`
	Link       string `json:"link"`
	Score      int    `json:"score" gorm:"default:0"`
	ShareToken string `json:"share_token" gorm:"uniqueIndex"` // public token for peer review links
}

// ProjectSubmissionUpvote records at most one upvote per (submission, voter)
type ProjectSubmissionUpvote struct {
	gorm.Model
	ProjectSubmissionID uint `json:"project_submission_id" gorm:"index;not null;uniqueIndex:idx_submission_voter"`
	StudentID           uint `json:"student_id" gorm:"index;not null;uniqueIndex:idx_submission_voter"`
}
