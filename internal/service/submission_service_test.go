package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consensus-api/internal/domain"
	"consensus-api/internal/response"
)

func TestSubmissionService_DoubleSubmitKeepsSecondPayload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	user := participantSession()
	form := env.createTestForm(t, admin, "40001", "Q1", "Q2")
	env.join(t, user, "40001")
	round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)

	first, err := env.submissions.Submit(ctx, user, form.ID, round.ID, map[string]interface{}{"q1": "a", "q2": "b"})
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := env.submissions.Submit(ctx, user, form.ID, round.ID, map[string]interface{}{"q1": "c"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Response.ID, second.Response.ID)

	var stored []domain.Response
	require.NoError(t, env.db.Where("round_id = ? AND user_id = ?", round.ID, user.UserID).Find(&stored).Error)
	require.Len(t, stored, 1)
	answers := stored[0].AnswerMap()
	assert.Equal(t, "c", answers["q1"])
	assert.NotContains(t, answers, "q2")
	assert.Equal(t, []string{"Q1", "Q2"}, stored[0].Snapshot())

	revisions, err := env.submissions.ListRevisions(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Len(t, revisions, 2)
}

func TestSubmissionService_ConcurrentResubmitKeepsOneRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	user := participantSession()
	form := env.createTestForm(t, admin, "40009", "Q1")
	env.join(t, user, "40009")
	round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)

	const writers = 8
	submitted := make([]string, writers)
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		submitted[i] = fmt.Sprintf("v%d", i)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.submissions.Submit(ctx, user, form.ID, round.ID, map[string]interface{}{"q1": submitted[i]})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "writer %d", i)
	}

	var stored []domain.Response
	require.NoError(t, env.db.Where("round_id = ? AND user_id = ?", round.ID, user.UserID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Contains(t, submitted, stored[0].AnswerMap()["q1"])

	revisions, err := env.submissions.ListRevisions(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Len(t, revisions, writers)
}

func TestSubmissionService_HasSubmittedAndMyResponse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	user := participantSession()
	form := env.createTestForm(t, admin, "40002", "Q1")
	env.join(t, user, "40002")
	round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)

	has, err := env.submissions.HasSubmitted(ctx, user, form.ID, round.ID)
	require.NoError(t, err)
	assert.False(t, has)

	mine, err := env.submissions.GetMyResponse(ctx, user, form.ID, round.ID)
	require.NoError(t, err)
	assert.False(t, mine.HasSubmitted)
	assert.Nil(t, mine.Response)

	_, err = env.submissions.SubmitToActive(ctx, user, form.ID, map[string]interface{}{"q1": "yes"})
	require.NoError(t, err)

	has, err = env.submissions.HasSubmitted(ctx, user, form.ID, round.ID)
	require.NoError(t, err)
	assert.True(t, has)

	mine, err = env.submissions.GetMyResponse(ctx, user, form.ID, round.ID)
	require.NoError(t, err)
	require.NotNil(t, mine.Response)
	assert.Equal(t, "yes", mine.Response.Answers["q1"])
}

func TestSubmissionService_ClosedRoundAcceptsLateAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	user := participantSession()
	form := env.createTestForm(t, admin, "40003", "Q1")
	env.join(t, user, "40003")
	round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	_, err = env.rounds.CloseRound(ctx, admin, form.ID)
	require.NoError(t, err)

	_, err = env.submissions.SubmitToActive(ctx, user, form.ID, map[string]interface{}{"q1": "late"})
	requireCode(t, err, response.ErrCodeNoActiveRound)

	result, err := env.submissions.Submit(ctx, user, form.ID, round.ID, map[string]interface{}{"q1": "late"})
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestSubmissionService_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	user := participantSession()
	form := env.createTestForm(t, admin, "40004", "Q1")
	other := env.createTestForm(t, admin, "40005", "Q1")
	env.join(t, user, "40004")
	otherRound, err := env.rounds.OpenNextRound(ctx, admin, other.ID, nil)
	require.NoError(t, err)

	_, err = env.submissions.Submit(ctx, user, form.ID, uuid.New(), map[string]interface{}{"q1": "a"})
	requireCode(t, err, response.ErrCodeRoundClosedOrMissing)

	// a round of another form is treated as missing
	_, err = env.submissions.Submit(ctx, user, form.ID, otherRound.ID, map[string]interface{}{"q1": "a"})
	requireCode(t, err, response.ErrCodeRoundClosedOrMissing)

	_, err = env.submissions.Submit(ctx, user, other.ID, otherRound.ID, map[string]interface{}{"q1": "a"})
	requireCode(t, err, response.ErrCodeForbidden)

	round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	_, err = env.submissions.Submit(ctx, user, form.ID, round.ID, nil)
	requireCode(t, err, response.ErrCodeValidation)

	_, err = env.submissions.ListResponses(ctx, user, form.ID, round.ID)
	requireCode(t, err, response.ErrCodeForbidden)
}

func TestSubmissionService_ListAllResponsesGroupsByRound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	a, b := participantSession(), participantSession()
	form := env.createTestForm(t, admin, "40006", "Q1")
	env.join(t, a, "40006")
	env.join(t, b, "40006")

	r1, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	_, err = env.submissions.SubmitToActive(ctx, a, form.ID, map[string]interface{}{"q1": "a1"})
	require.NoError(t, err)
	_, err = env.submissions.SubmitToActive(ctx, b, form.ID, map[string]interface{}{"q1": "b1"})
	require.NoError(t, err)

	r2, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)

	grouped, err := env.submissions.ListAllResponses(ctx, admin, form.ID)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Equal(t, r1.ID, grouped[0].Round.ID)
	assert.Len(t, grouped[0].Responses, 2)
	assert.Equal(t, r2.ID, grouped[1].Round.ID)
	assert.NotNil(t, grouped[1].Responses)
	assert.Empty(t, grouped[1].Responses)

	byRound, err := env.submissions.ListResponses(ctx, admin, form.ID, r1.ID)
	require.NoError(t, err)
	assert.Len(t, byRound, 2)
}
