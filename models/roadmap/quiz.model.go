package roadmap

import "gorm.io/gorm"

// Quiz belongs to exactly one node. TimeLimit is informational for the
// client countdown; the server never enforces it.
type Quiz struct {
	gorm.Model
	NodeID    uint `json:"node_id" gorm:"uniqueIndex;not null"`
	TimeLimit *int `json:"time_limit"` // minutes
}

// Question is a single multiple-choice question of a quiz
type Question struct {
	gorm.Model
	QuizID uint   `json:"quiz_id" gorm:"index;not null"`
	Body   string `json:"body"`
}

// Option is one answer choice for a question
type Option struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Body       string `json:"body"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}

// QuizStatus records the latest attempt outcome per (student, quiz).
// Re-attempts overwrite the previous row; history is not retained.
type QuizStatus struct {
	gorm.Model
	QuizID    uint `json:"quiz_id" gorm:"index;not null;uniqueIndex:idx_quiz_student"`
	StudentID uint `json:"student_id" gorm:"index;not null;uniqueIndex:idx_quiz_student"`
	Passed    bool `json:"passed" gorm:"default:false"`
	Score     int  `json:"score" gorm:"default:0"`
}
