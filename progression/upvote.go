package progression

import (
	roadmapModels "dojo/models/roadmap"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upvote records the voter's upvote on a submission and recomputes the
// submission's score as the count of its upvote rows. Fails with
// ErrSelfUpvote when the voter owns the submission and ErrAlreadyUpvoted
// when a row for (submission, voter) already exists. There is no
// un-upvote; scores only grow.
func Upvote(db *gorm.DB, voterID, submissionID uint) (newScore int, err error) {
	var submission roadmapModels.ProjectSubmission
	if err := db.Where("id = ?", submissionID).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrSubmissionNotFound
		}
		return 0, err
	}

	if submission.StudentID == voterID {
		return 0, ErrSelfUpvote
	}

	var existingCount int64
	if err := db.Model(&roadmapModels.ProjectSubmissionUpvote{}).
		Where("project_submission_id = ? AND student_id = ?", submissionID, voterID).
		Count(&existingCount).Error; err != nil {
		return 0, err
	}
	if existingCount > 0 {
		return 0, ErrAlreadyUpvoted
	}

	// Insert and recount atomically; the unique index on
	// (project_submission_id, student_id) turns a concurrent duplicate
	// into a constraint error instead of a second row.
	err = db.Transaction(func(tx *gorm.DB) error {
		upvote := roadmapModels.ProjectSubmissionUpvote{
			ProjectSubmissionID: submissionID,
			StudentID:           voterID,
		}
		if err := tx.Create(&upvote).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&roadmapModels.ProjectSubmissionUpvote{}).
			Where("project_submission_id = ?", submissionID).
			Count(&count).Error; err != nil {
			return err
		}

		submission.Score = int(count)
		return tx.Save(&submission).Error
	})
	if err != nil {
		return 0, err
	}
	return submission.Score, nil
}

// SubmitProject upserts the student's submission for a project. A
// resubmission replaces the previous one wholesale: the link changes,
// the score resets to zero and prior upvotes are removed so the
// score == count(upvotes) invariant keeps holding. The share token is
// kept stable across resubmissions.
func SubmitProject(db *gorm.DB, studentID, projectID uint, link string) (roadmapModels.ProjectSubmission, error) {
	var submission roadmapModels.ProjectSubmission

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("project_id = ? AND student_id = ?", projectID, studentID).First(&submission).Error
		if err == gorm.ErrRecordNotFound {
			submission = roadmapModels.ProjectSubmission{
				ProjectID:  projectID,
				StudentID:  studentID,
				Link:       link,
				Score:      0,
				ShareToken: uuid.New().String(),
			}
			return tx.Create(&submission).Error
		}
		if err != nil {
			return err
		}

		// Hard delete: a soft-deleted row would still occupy the
		// (submission, voter) unique index and block future upvotes.
		if err := tx.Unscoped().Where("project_submission_id = ?", submission.ID).
			Delete(&roadmapModels.ProjectSubmissionUpvote{}).Error; err != nil {
			return err
		}
		submission.Link = link
		submission.Score = 0
		return tx.Save(&submission).Error
	})
	if err != nil {
		return roadmapModels.ProjectSubmission{}, err
	}
	return submission, nil
}
