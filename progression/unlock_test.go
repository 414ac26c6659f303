package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPublishedRoadmap(t *testing.T) {
	db := setupTestDB(t)
	rm, _ := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")

	enrollment, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, rm.ID, enrollment.RoadmapID)
	assert.Equal(t, student.ID, enrollment.StudentID)
}

func TestJoinUnpublishedRoadmap(t *testing.T) {
	db := setupTestDB(t)
	rm, _ := seedRoadmap(t, db, false, 1)
	student := createStudent(t, db, "alice")

	_, err := Join(db, student.ID, rm.ID)
	assert.ErrorIs(t, err, ErrNotPublished)

	_, err = Join(db, student.ID, 999999)
	assert.ErrorIs(t, err, ErrNotPublished)
}

func TestJoinTwice(t *testing.T) {
	db := setupTestDB(t)
	rm, _ := seedRoadmap(t, db, true, 1)
	student := createStudent(t, db, "alice")

	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	_, err = Join(db, student.ID, rm.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestUnlockedNodesRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)
	rm, _ := seedRoadmap(t, db, true, 2)
	student := createStudent(t, db, "alice")

	_, err := UnlockedNodes(db, student.ID, rm.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestUnlockedNodesInitiallyFirstOnly(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 3)
	student := createStudent(t, db, "alice")
	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	unlocked, err := UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, nodes[0].ID, unlocked[0].ID)
}

func TestUnlockedNodesAdvanceThroughPrefix(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 3)
	student := createStudent(t, db, "alice")
	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	completeNode(t, db, student.ID, nodes[0])

	unlocked, err := UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 2)
	assert.Equal(t, nodes[1].ID, unlocked[1].ID)

	completeNode(t, db, student.ID, nodes[1])

	unlocked, err = UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	assert.Len(t, unlocked, 3)
}

func TestUnlockedNodesStopAtFirstIncomplete(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 3)
	student := createStudent(t, db, "alice")
	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	// n3 completed out of order must not unlock anything past n2
	completeNode(t, db, student.ID, nodes[0])
	completeNode(t, db, student.ID, nodes[2])

	unlocked, err := UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 2)
	assert.Equal(t, nodes[0].ID, unlocked[0].ID)
	assert.Equal(t, nodes[1].ID, unlocked[1].ID)
}

func TestUnlockedNodesQuizAloneIsNotEnough(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 2)
	student := createStudent(t, db, "alice")
	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	quiz := nodeQuiz(t, db, nodes[0].ID)
	result, err := GradeQuiz(db, student.ID, quiz.ID, correctAnswers(t, db, quiz.ID, QuestionsPerQuiz))
	require.NoError(t, err)
	require.True(t, result.Passed)

	unlocked, err := UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	assert.Len(t, unlocked, 1)
}

func TestUnlockedNodesApprovalAloneIsNotEnough(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 2)
	student := createStudent(t, db, "alice")
	_, err := Join(db, student.ID, rm.ID)
	require.NoError(t, err)

	project := nodeProject(t, db, nodes[0].ID)
	submission, err := SubmitProject(db, student.ID, project.ID, "https://github.com/alice/project")
	require.NoError(t, err)
	for i := 0; i < ApprovalScore; i++ {
		voter := createStudent(t, db, string(rune('b'+i))+"-voter")
		_, err := Upvote(db, voter.ID, submission.ID)
		require.NoError(t, err)
	}

	unlocked, err := UnlockedNodes(db, student.ID, rm.ID)
	require.NoError(t, err)
	assert.Len(t, unlocked, 1)
}

func TestUnlockedNodesPerStudent(t *testing.T) {
	db := setupTestDB(t)
	rm, nodes := seedRoadmap(t, db, true, 2)
	alice := createStudent(t, db, "alice")
	bob := createStudent(t, db, "bob")
	_, err := Join(db, alice.ID, rm.ID)
	require.NoError(t, err)
	_, err = Join(db, bob.ID, rm.ID)
	require.NoError(t, err)

	completeNode(t, db, alice.ID, nodes[0])

	unlocked, err := UnlockedNodes(db, alice.ID, rm.ID)
	require.NoError(t, err)
	assert.Len(t, unlocked, 2)

	unlocked, err = UnlockedNodes(db, bob.ID, rm.ID)
	require.NoError(t, err)
	assert.Len(t, unlocked, 1)
}

func TestUnlockedNodesUnpublishedRoadmap(t *testing.T) {
	db := setupTestDB(t)
	rm, _ := seedRoadmap(t, db, false, 1)
	student := createStudent(t, db, "alice")

	_, err := UnlockedNodes(db, student.ID, rm.ID)
	assert.ErrorIs(t, err, ErrNotPublished)
}
