package progression

import (
	roadmapModels "dojo/models/roadmap"

	"gorm.io/gorm"
)

// Answer is one submitted (question, option) pair
type Answer struct {
	QuestionID uint `json:"question_id"`
	OptionID   uint `json:"option_id"`
}

// GradeResult is the outcome of a quiz attempt
type GradeResult struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

// GradeQuiz scores the submitted answers and upserts the student's
// QuizStatus for this quiz. An answer counts as correct only when the
// option exists, belongs to the submitted question and is marked
// correct; unknown option or question ids are skipped, never errors.
// Passing needs PassScore correct answers. The threshold is an absolute
// count, so a student who submits fewer answers simply cannot reach it.
func GradeQuiz(db *gorm.DB, studentID, quizID uint, answers []Answer) (GradeResult, error) {
	score := 0
	for _, answer := range answers {
		var option roadmapModels.Option
		if err := db.Where("id = ?", answer.OptionID).First(&option).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return GradeResult{}, err
		}
		if option.QuestionID == answer.QuestionID && option.IsCorrect {
			score++
		}
	}

	result := GradeResult{Score: score, Passed: score >= PassScore}

	// Upsert the status; re-attempts overwrite the previous outcome
	err := db.Transaction(func(tx *gorm.DB) error {
		var status roadmapModels.QuizStatus
		err := tx.Where("quiz_id = ? AND student_id = ?", quizID, studentID).First(&status).Error
		if err == gorm.ErrRecordNotFound {
			status = roadmapModels.QuizStatus{
				QuizID:    quizID,
				StudentID: studentID,
				Passed:    result.Passed,
				Score:     result.Score,
			}
			return tx.Create(&status).Error
		}
		if err != nil {
			return err
		}
		status.Passed = result.Passed
		status.Score = result.Score
		return tx.Save(&status).Error
	})
	if err != nil {
		return GradeResult{}, err
	}
	return result, nil
}
