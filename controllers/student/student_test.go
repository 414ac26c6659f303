package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dojo/config"
	"dojo/database"
	"dojo/middleware"
	"dojo/models"
	roadmapModels "dojo/models/roadmap"
	"dojo/progression"
	"dojo/routers/roadmapRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	roadmapRoutes.SetupRoadmapRoutes(app)
	roadmapRoutes.SetupAdminRoadmapRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    name + "@test.dev",
		Role:     role,
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

// seedPublishedRoadmap builds a two node roadmap that passes every
// publish check and flips it to published
func seedPublishedRoadmap(t *testing.T, db *gorm.DB) (roadmapModels.Roadmap, []roadmapModels.Node) {
	t.Helper()

	rm := roadmapModels.Roadmap{Title: "Go Path", Published: true}
	require.NoError(t, db.Create(&rm).Error)

	var nodes []roadmapModels.Node
	for position := 1; position <= 2; position++ {
		node := roadmapModels.Node{RoadmapID: rm.ID, Title: fmt.Sprintf("Node %d", position), Position: position}
		require.NoError(t, db.Create(&node).Error)

		quiz := roadmapModels.Quiz{NodeID: node.ID}
		require.NoError(t, db.Create(&quiz).Error)
		for q := 0; q < progression.QuestionsPerQuiz; q++ {
			question := roadmapModels.Question{QuizID: quiz.ID, Body: fmt.Sprintf("Q%d?", q)}
			require.NoError(t, db.Create(&question).Error)
			for o := 0; o < progression.OptionsPerQuestion; o++ {
				option := roadmapModels.Option{QuestionID: question.ID, Body: fmt.Sprintf("O%d", o), IsCorrect: o == 0}
				require.NoError(t, db.Create(&option).Error)
			}
		}

		require.NoError(t, db.Create(&roadmapModels.Project{NodeID: node.ID, Title: "Build it"}).Error)
		require.NoError(t, db.Create(&roadmapModels.KeyLearningObjective{NodeID: node.ID, Body: "Learn it"}).Error)
		require.NoError(t, db.Create(&roadmapModels.Resource{NodeID: node.ID, Link: "https://example.dev"}).Error)

		nodes = append(nodes, node)
	}
	return rm, nodes
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func correctQuizAnswers(t *testing.T, db *gorm.DB, quizID uint) []map[string]uint {
	t.Helper()

	var questions []roadmapModels.Question
	require.NoError(t, db.Where("quiz_id = ?", quizID).Order("id asc").Find(&questions).Error)

	answers := make([]map[string]uint, 0, len(questions))
	for _, question := range questions {
		var option roadmapModels.Option
		require.NoError(t, db.Where("question_id = ? AND is_correct = ?", question.ID, true).First(&option).Error)
		answers = append(answers, map[string]uint{"question_id": question.ID, "option_id": option.ID})
	}
	return answers
}

func TestJoinRoadmapFlow(t *testing.T) {
	app, db := setupApp(t)
	rm, _ := seedPublishedRoadmap(t, db)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)

	resp, body := doRequest(t, app, "POST", fmt.Sprintf("/roadmaps/%d/join", rm.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	// Second join is rejected
	resp, body = doRequest(t, app, "POST", fmt.Sprintf("/roadmaps/%d/join", rm.ID), token, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Already enrolled in this roadmap!", body["message"])

	// Unknown roadmap reads as not found
	resp, _ = doRequest(t, app, "POST", "/roadmaps/999999/join", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestJoinUnpublishedRoadmapIsHidden(t *testing.T) {
	app, db := setupApp(t)
	rm := roadmapModels.Roadmap{Title: "Draft Path", Published: false}
	require.NoError(t, db.Create(&rm).Error)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/roadmaps/%d/join", rm.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnlockedNodesEndpoint(t *testing.T) {
	app, db := setupApp(t)
	rm, _ := seedPublishedRoadmap(t, db)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)

	// Not enrolled yet
	resp, _ := doRequest(t, app, "GET", fmt.Sprintf("/roadmaps/%d/unlocked-nodes", rm.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	_, err := progression.Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "GET", fmt.Sprintf("/roadmaps/%d/unlocked-nodes", rm.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	nodes, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, nodes, 1)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	app, db := setupApp(t)
	rm, nodes := seedPublishedRoadmap(t, db)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)
	_, err := progression.Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	var quiz roadmapModels.Quiz
	require.NoError(t, db.Where("node_id = ?", nodes[0].ID).First(&quiz).Error)

	url := fmt.Sprintf("/roadmaps/%d/nodes/%d/quiz/%d/submit", rm.ID, nodes[0].ID, quiz.ID)
	resp, body := doRequest(t, app, "POST", url, token, map[string]interface{}{
		"answers": correctQuizAnswers(t, db, quiz.ID),
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Quiz passed", body["message"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(progression.QuestionsPerQuiz), data["score"])
	assert.Equal(t, true, data["passed"])
}

func TestSubmitQuizRejectsEmptyAnswers(t *testing.T) {
	app, db := setupApp(t)
	rm, nodes := seedPublishedRoadmap(t, db)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)

	var quiz roadmapModels.Quiz
	require.NoError(t, db.Where("node_id = ?", nodes[0].ID).First(&quiz).Error)

	url := fmt.Sprintf("/roadmaps/%d/nodes/%d/quiz/%d/submit", rm.ID, nodes[0].ID, quiz.ID)
	resp, _ := doRequest(t, app, "POST", url, token, map[string]interface{}{
		"answers": []interface{}{},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestProjectSubmissionAndUpvoteFlow(t *testing.T) {
	app, db := setupApp(t)
	rm, nodes := seedPublishedRoadmap(t, db)
	alice := createUser(t, db, "alice", models.RoleStudent)
	bob := createUser(t, db, "bob", models.RoleStudent)
	aliceToken := tokenFor(t, alice)
	bobToken := tokenFor(t, bob)

	var project roadmapModels.Project
	require.NoError(t, db.Where("node_id = ?", nodes[0].ID).First(&project).Error)

	submitURL := fmt.Sprintf("/roadmaps/%d/nodes/%d/project/%d/submit", rm.ID, nodes[0].ID, project.ID)
	resp, body := doRequest(t, app, "POST", submitURL, aliceToken, map[string]string{
		"link": "https://github.com/alice/project",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	submissionID := uint(data["ID"].(float64))

	upvoteURL := fmt.Sprintf("/roadmaps/%d/nodes/%d/project/%d/submissions/%d/upvote", rm.ID, nodes[0].ID, project.ID, submissionID)

	// Owner cannot approve themselves
	resp, _ = doRequest(t, app, "POST", upvoteURL, aliceToken, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = doRequest(t, app, "POST", upvoteURL, bobToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok = body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["new_score"])

	// One vote per voter
	resp, _ = doRequest(t, app, "POST", upvoteURL, bobToken, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStudentRoutesRejectMissingToken(t *testing.T) {
	app, db := setupApp(t)
	rm, _ := seedPublishedRoadmap(t, db)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/roadmaps/%d/join", rm.ID), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectStudents(t *testing.T) {
	app, db := setupApp(t)
	student := createUser(t, db, "alice", models.RoleStudent)
	token := tokenFor(t, student)

	resp, _ := doRequest(t, app, "POST", "/roadmaps", token, map[string]string{"title": "Sneaky"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
