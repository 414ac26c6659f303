// Package progression holds the roadmap business rules: publish
// validation, sequential node unlocking, quiz grading, per-student
// completion and the peer upvote ledger. Handlers stay thin and call
// into here with an explicit *gorm.DB so the rules are testable
// without HTTP plumbing.
package progression

import (
	"errors"
	"fmt"
)

const (
	// QuestionsPerQuiz is the quiz size required for publishing
	QuestionsPerQuiz = 10
	// OptionsPerQuestion is the option count required per question
	OptionsPerQuestion = 4
	// PassScore is the minimum correct-answer count to pass a quiz.
	// It is an absolute count, not a ratio of submitted answers.
	PassScore = 7
	// ApprovalScore is the upvote score at which a project submission
	// counts as peer approved
	ApprovalScore = 5
)

var (
	ErrNotPublished       = errors.New("roadmap is not published")
	ErrNotEnrolled        = errors.New("student is not enrolled in this roadmap")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this roadmap")
	ErrSelfUpvote         = errors.New("cannot upvote your own submission")
	ErrAlreadyUpvoted     = errors.New("already upvoted this submission")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// ViolationCode identifies which publish invariant a roadmap breaks
type ViolationCode string

const (
	MissingQuiz           ViolationCode = "MISSING_QUIZ"
	WrongQuestionCount    ViolationCode = "WRONG_QUESTION_COUNT"
	WrongOptionCount      ViolationCode = "WRONG_OPTION_COUNT"
	BadCorrectOptionCount ViolationCode = "BAD_CORRECT_OPTION_COUNT"
	MissingProject        ViolationCode = "MISSING_PROJECT"
	NoObjectives          ViolationCode = "NO_OBJECTIVES"
	NoResources           ViolationCode = "NO_RESOURCES"
)

// Violation is a publish-validation failure for a specific node (and
// question, where applicable). Count carries the offending cardinality
// for the count-based codes.
type Violation struct {
	Code       ViolationCode
	NodeID     uint
	QuestionID uint
	Count      int
}

func (v *Violation) Error() string {
	switch v.Code {
	case MissingQuiz:
		return fmt.Sprintf("Node %d is missing a quiz", v.NodeID)
	case WrongQuestionCount:
		return fmt.Sprintf("Node %d quiz must have exactly %d questions", v.NodeID, QuestionsPerQuiz)
	case WrongOptionCount:
		return fmt.Sprintf("Question %d in node %d must have exactly %d options", v.QuestionID, v.NodeID, OptionsPerQuestion)
	case BadCorrectOptionCount:
		return fmt.Sprintf("Question %d in node %d must have exactly one correct option", v.QuestionID, v.NodeID)
	case MissingProject:
		return fmt.Sprintf("Node %d is missing a project", v.NodeID)
	case NoObjectives:
		return fmt.Sprintf("Node %d must have at least one key learning objective", v.NodeID)
	case NoResources:
		return fmt.Sprintf("Node %d must have at least one resource", v.NodeID)
	}
	return fmt.Sprintf("Node %d violates publish rules", v.NodeID)
}
