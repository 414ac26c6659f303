package progression

import (
	"fmt"
	"testing"

	"dojo/database"
	"dojo/models"
	roadmapModels "dojo/models/roadmap"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@test.dev",
		Role:     models.RoleStudent,
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// seedQuestion attaches four options to the question, one correct
func seedQuestion(t *testing.T, db *gorm.DB, quizID uint, n int) roadmapModels.Question {
	t.Helper()

	question := roadmapModels.Question{QuizID: quizID, Body: fmt.Sprintf("Question %d?", n)}
	require.NoError(t, db.Create(&question).Error)
	for i := 0; i < OptionsPerQuestion; i++ {
		option := roadmapModels.Option{
			QuestionID: question.ID,
			Body:       fmt.Sprintf("Option %d", i),
			IsCorrect:  i == 0,
		}
		require.NoError(t, db.Create(&option).Error)
	}
	return question
}

// seedNode builds a node that satisfies every publish invariant
func seedNode(t *testing.T, db *gorm.DB, roadmapID uint, position int) roadmapModels.Node {
	t.Helper()

	node := roadmapModels.Node{
		RoadmapID: roadmapID,
		Title:     fmt.Sprintf("Node %d", position),
		Position:  position,
	}
	require.NoError(t, db.Create(&node).Error)

	quiz := roadmapModels.Quiz{NodeID: node.ID}
	require.NoError(t, db.Create(&quiz).Error)
	for q := 0; q < QuestionsPerQuiz; q++ {
		seedQuestion(t, db, quiz.ID, q)
	}

	project := roadmapModels.Project{NodeID: node.ID, Title: "Build it", Description: "Ship something real"}
	require.NoError(t, db.Create(&project).Error)

	objective := roadmapModels.KeyLearningObjective{NodeID: node.ID, Body: "Understand the topic"}
	require.NoError(t, db.Create(&objective).Error)

	resource := roadmapModels.Resource{NodeID: node.ID, Link: "https://example.dev/docs"}
	require.NoError(t, db.Create(&resource).Error)

	return node
}

// seedRoadmap creates a roadmap with the given number of complete nodes
func seedRoadmap(t *testing.T, db *gorm.DB, published bool, nodeCount int) (roadmapModels.Roadmap, []roadmapModels.Node) {
	t.Helper()

	rm := roadmapModels.Roadmap{Title: "Backend Path", Published: published}
	require.NoError(t, db.Create(&rm).Error)

	nodes := make([]roadmapModels.Node, 0, nodeCount)
	for i := 1; i <= nodeCount; i++ {
		nodes = append(nodes, seedNode(t, db, rm.ID, i))
	}
	return rm, nodes
}

// nodeQuiz loads the quiz belonging to a node
func nodeQuiz(t *testing.T, db *gorm.DB, nodeID uint) roadmapModels.Quiz {
	t.Helper()

	var quiz roadmapModels.Quiz
	require.NoError(t, db.Where("node_id = ?", nodeID).First(&quiz).Error)
	return quiz
}

// nodeProject loads the project belonging to a node
func nodeProject(t *testing.T, db *gorm.DB, nodeID uint) roadmapModels.Project {
	t.Helper()

	var project roadmapModels.Project
	require.NoError(t, db.Where("node_id = ?", nodeID).First(&project).Error)
	return project
}

// correctAnswers builds a full set of correct answers for a quiz,
// optionally limited to the first n questions
func correctAnswers(t *testing.T, db *gorm.DB, quizID uint, n int) []Answer {
	t.Helper()

	var questions []roadmapModels.Question
	require.NoError(t, db.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error)

	answers := make([]Answer, 0, n)
	for i, question := range questions {
		if i >= n {
			break
		}
		var option roadmapModels.Option
		require.NoError(t, db.Where("question_id = ? AND is_correct = ?", question.ID, true).First(&option).Error)
		answers = append(answers, Answer{QuestionID: question.ID, OptionID: option.ID})
	}
	return answers
}

// wrongAnswers picks an incorrect option for the first n questions
func wrongAnswers(t *testing.T, db *gorm.DB, quizID uint, n int) []Answer {
	t.Helper()

	var questions []roadmapModels.Question
	require.NoError(t, db.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error)

	answers := make([]Answer, 0, n)
	for i, question := range questions {
		if i >= n {
			break
		}
		var option roadmapModels.Option
		require.NoError(t, db.Where("question_id = ? AND is_correct = ?", question.ID, false).First(&option).Error)
		answers = append(answers, Answer{QuestionID: question.ID, OptionID: option.ID})
	}
	return answers
}

// completeNode passes the node's quiz and peer-approves a submission for
// the student, using extra voter accounts to reach the approval score
func completeNode(t *testing.T, db *gorm.DB, studentID uint, node roadmapModels.Node) {
	t.Helper()

	quiz := nodeQuiz(t, db, node.ID)
	result, err := GradeQuiz(db, studentID, quiz.ID, correctAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)
	require.True(t, result.Passed)

	project := nodeProject(t, db, node.ID)
	submission, err := SubmitProject(db, studentID, project.ID, "https://github.com/student/project")
	require.NoError(t, err)

	for i := 0; i < ApprovalScore; i++ {
		voter := createStudent(t, db, fmt.Sprintf("voter-%d-%d", node.ID, i))
		_, err := Upvote(db, voter.ID, submission.ID)
		require.NoError(t, err)
	}
}
