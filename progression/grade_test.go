package progression

import (
	"testing"

	roadmapModels "dojo/models/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeQuizAllCorrect(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	result, err := GradeQuiz(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)
	assert.Equal(t, QuestionsPerQuiz, result.Score)
	assert.True(t, result.Passed)

	var status roadmapModels.QuizStatus
	require.NoError(t, db.Where("quiz_id = ? AND student_id = ?", quiz.ID, student.ID).First(&status).Error)
	assert.True(t, status.Passed)
	assert.Equal(t, QuestionsPerQuiz, status.Score)
}

func TestGradeQuizPassBoundary(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	// Exactly PassScore correct answers passes
	answers := correctAnswers(t, db, quiz.ID, PassScore)
	result, err := GradeQuiz(db, student.ID, quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, PassScore, result.Score)
	assert.True(t, result.Passed)

	// One fewer fails
	answers = correctAnswers(t, db, quiz.ID, PassScore-1)
	result, err = GradeQuiz(db, student.ID, quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, PassScore-1, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuizWrongAnswersScoreNothing(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	result, err := GradeQuiz(db, student.ID, quiz.ID, wrongAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestGradeQuizSkipsUnknownIDs(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	answers := correctAnswers(t, db, quiz.ID, PassScore)
	answers = append(answers,
		Answer{QuestionID: 999999, OptionID: 999999},
		Answer{QuestionID: 0, OptionID: 888888},
	)

	result, err := GradeQuiz(db, student.ID, quiz.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, PassScore, result.Score)
	assert.True(t, result.Passed)
}

func TestGradeQuizOptionMustBelongToQuestion(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	var questions []roadmapModels.Question
	require.NoError(t, db.Where("quiz_id = ?", quiz.ID).Order("id asc").Find(&questions).Error)

	// Correct option of question 2 submitted against question 1
	var foreign roadmapModels.Option
	require.NoError(t, db.Where("question_id = ? AND is_correct = ?", questions[1].ID, true).First(&foreign).Error)

	result, err := GradeQuiz(db, student.ID, quiz.ID, []Answer{
		{QuestionID: questions[0].ID, OptionID: foreign.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
}

func TestGradeQuizReattemptOverwritesStatus(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	_, err := GradeQuiz(db, student.ID, quiz.ID, wrongAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)

	_, err = GradeQuiz(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)

	var statuses []roadmapModels.QuizStatus
	require.NoError(t, db.Where("quiz_id = ? AND student_id = ?", quiz.ID, student.ID).Find(&statuses).Error)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Passed)
	assert.Equal(t, QuestionsPerQuiz, statuses[0].Score)
}

func TestGradeQuizEmptyAnswers(t *testing.T) {
	db := setupTestDB(t)
	_, nodes := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")
	quiz := nodeQuiz(t, db, nodes[0].ID)

	result, err := GradeQuiz(db, student.ID, quiz.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}
