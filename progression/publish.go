package progression

import (
	roadmapModels "dojo/models/roadmap"

	"gorm.io/gorm"
)

// CanPublish validates every node of the roadmap against the publish
// invariants: a quiz of exactly QuestionsPerQuiz questions, each with
// exactly OptionsPerQuestion options of which exactly one is correct,
// plus a project, at least one key learning objective and at least one
// resource. It returns the first *Violation found, walking nodes in
// roadmap order, or nil when the roadmap is publishable.
func CanPublish(db *gorm.DB, roadmapID uint) error {
	var nodes []roadmapModels.Node
	if err := db.Where("roadmap_id = ?", roadmapID).
		Order("position asc, id asc").
		Find(&nodes).Error; err != nil {
		return err
	}

	for _, node := range nodes {
		if err := validateNode(db, node); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(db *gorm.DB, node roadmapModels.Node) error {
	var quiz roadmapModels.Quiz
	if err := db.Where("node_id = ?", node.ID).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &Violation{Code: MissingQuiz, NodeID: node.ID}
		}
		return err
	}

	var questions []roadmapModels.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("id asc").Find(&questions).Error; err != nil {
		return err
	}
	if len(questions) != QuestionsPerQuiz {
		return &Violation{Code: WrongQuestionCount, NodeID: node.ID, Count: len(questions)}
	}

	for _, question := range questions {
		var optionCount, correctCount int64
		if err := db.Model(&roadmapModels.Option{}).
			Where("question_id = ?", question.ID).
			Count(&optionCount).Error; err != nil {
			return err
		}
		if optionCount != OptionsPerQuestion {
			return &Violation{Code: WrongOptionCount, NodeID: node.ID, QuestionID: question.ID, Count: int(optionCount)}
		}

		if err := db.Model(&roadmapModels.Option{}).
			Where("question_id = ? AND is_correct = ?", question.ID, true).
			Count(&correctCount).Error; err != nil {
			return err
		}
		if correctCount != 1 {
			return &Violation{Code: BadCorrectOptionCount, NodeID: node.ID, QuestionID: question.ID, Count: int(correctCount)}
		}
	}

	var projectCount int64
	if err := db.Model(&roadmapModels.Project{}).Where("node_id = ?", node.ID).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount == 0 {
		return &Violation{Code: MissingProject, NodeID: node.ID}
	}

	var objectiveCount int64
	if err := db.Model(&roadmapModels.KeyLearningObjective{}).Where("node_id = ?", node.ID).Count(&objectiveCount).Error; err != nil {
		return err
	}
	if objectiveCount == 0 {
		return &Violation{Code: NoObjectives, NodeID: node.ID}
	}

	var resourceCount int64
	if err := db.Model(&roadmapModels.Resource{}).Where("node_id = ?", node.ID).Count(&resourceCount).Error; err != nil {
		return err
	}
	if resourceCount == 0 {
		return &Violation{Code: NoResources, NodeID: node.ID}
	}

	return nil
}
