package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consensus-api/internal/domain"
	"consensus-api/internal/response"
)

func TestRoundService_OpenNextRoundNumbering(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30001", "base")

	first, err := env.rounds.OpenNextRound(ctx, admin, form.ID, []string{"q"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.RoundNumber)
	assert.True(t, first.IsActive)
	assert.Equal(t, []string{"q"}, first.Questions)
	assert.Empty(t, first.PreviousRoundSynthesis)

	second, err := env.rounds.OpenNextRound(ctx, admin, form.ID, []string{"q"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.RoundNumber)
	assert.True(t, second.IsActive)

	rounds, err := env.rounds.ListRounds(ctx, admin, form.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.False(t, rounds[0].IsActive)
	assert.NotNil(t, rounds[0].ClosedAt)
	assert.True(t, rounds[1].IsActive)
	assert.Equal(t, int64(1), env.activeRoundCount(t, form.ID))
}

func TestRoundService_BlankQuestionsRejectedWithoutMutation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30002", "base")

	_, err := env.rounds.OpenNextRound(ctx, admin, form.ID, []string{"", "  "})
	requireCode(t, err, response.ErrCodeEmptyQuestionSet)

	rounds, err := env.rounds.ListRounds(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Empty(t, rounds)

	open, err := env.rounds.OpenNextRound(ctx, admin, form.ID, []string{"real"})
	require.NoError(t, err)

	_, err = env.rounds.OpenNextRound(ctx, admin, form.ID, []string{})
	requireCode(t, err, response.ErrCodeEmptyQuestionSet)

	active, err := env.rounds.GetActiveRound(ctx, admin, form.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, open.ID, active.ID)
	assert.Equal(t, 1, active.RoundNumber)
}

func TestRoundService_OpenNextRoundInheritsQuestions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30003", "base 1", "base 2")

	first, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"base 1", "base 2"}, first.Questions)

	second, err := env.rounds.OpenNextRound(ctx, admin, form.ID, []string{" custom ", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, second.Questions)

	third, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, third.Questions)
}

func TestRoundService_PreviousRoundSynthesisSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30004", "Q")

	first, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	_, err = env.synthesis.PushSynthesis(ctx, admin, form.ID, first.ID, "<p>S1</p>", nil)
	require.NoError(t, err)

	second, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>S1</p>", second.PreviousRoundSynthesis)
	assert.Empty(t, second.Synthesis)

	// editing round 1 later does not rewrite the snapshot
	_, err = env.synthesis.PushSynthesis(ctx, admin, form.ID, first.ID, "<p>S1 edited</p>", nil)
	require.NoError(t, err)
	active, err := env.rounds.GetActiveRound(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>S1</p>", active.PreviousRoundSynthesis)
}

func TestRoundService_CloseRound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30005", "Q")

	_, err := env.rounds.CloseRound(ctx, admin, form.ID)
	requireCode(t, err, response.ErrCodeNoActiveRound)

	_, err = env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
	require.NoError(t, err)

	closed, err := env.rounds.CloseRound(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.False(t, closed.IsActive)
	assert.NotNil(t, closed.ClosedAt)

	active, err := env.rounds.GetActiveRound(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = env.rounds.CloseRound(ctx, admin, form.ID)
	requireCode(t, err, response.ErrCodeNoActiveRound)
}

func TestRoundService_AccessRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := adminSession()
	form := env.createTestForm(t, owner, "30006", "Q")

	_, err := env.rounds.OpenNextRound(ctx, adminSession(), form.ID, nil)
	requireCode(t, err, response.ErrCodeForbidden)

	participant := participantSession()
	_, err = env.rounds.OpenNextRound(ctx, participant, form.ID, nil)
	requireCode(t, err, response.ErrCodeForbidden)

	_, err = env.rounds.GetActiveRound(ctx, participant, form.ID)
	requireCode(t, err, response.ErrCodeForbidden)

	env.join(t, participant, "30006")
	active, err := env.rounds.GetActiveRound(ctx, participant, form.ID)
	require.NoError(t, err)
	assert.Nil(t, active)

	_, err = env.rounds.OpenNextRound(ctx, owner, uuid.New(), nil)
	requireCode(t, err, response.ErrCodeNotFound)
}

func TestRoundService_RepairActiveRounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := adminSession()
	form := env.createTestForm(t, admin, "30007", "Q")

	// simulate legacy data written before the partial unique index existed
	require.NoError(t, env.db.Exec("DROP INDEX IF EXISTS uq_rounds_form_active").Error)
	for n := 1; n <= 3; n++ {
		require.NoError(t, env.db.Create(&domain.Round{
			FormID:      form.ID,
			RoundNumber: n,
			IsActive:    true,
			Questions:   domain.EncodeQuestions([]string{"Q"}),
		}).Error)
	}
	require.Equal(t, int64(3), env.activeRoundCount(t, form.ID))

	// the highest round wins even before repair
	active, err := env.rounds.GetActiveRound(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, active.RoundNumber)

	result, err := env.rounds.RepairActiveRounds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FormsRepaired)
	assert.Equal(t, int64(2), result.RoundsRepaired)
	assert.Equal(t, int64(1), env.activeRoundCount(t, form.ID))

	active, err = env.rounds.GetActiveRound(ctx, admin, form.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, active.RoundNumber)

	again, err := env.rounds.RepairActiveRounds(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.RoundsRepaired)
}

// For any sequence of open and close operations a form never holds more than one
// active round, and round numbers keep increasing by one.
func TestProperty_SingleActiveRound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	env := newTestEnv(t)
	admin := adminSession()

	properties.Property("at most one active round after any open/close sequence", prop.ForAll(
		func(ops []bool) bool {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			form := env.createTestForm(t, admin, uuid.NewString()[:8], "Q")
			opened := 0
			for _, open := range ops {
				if open {
					round, err := env.rounds.OpenNextRound(ctx, admin, form.ID, nil)
					if err != nil {
						return false
					}
					opened++
					if round.RoundNumber != opened {
						return false
					}
				} else {
					_, err := env.rounds.CloseRound(ctx, admin, form.ID)
					if err != nil && !response.IsCode(err, response.ErrCodeNoActiveRound) {
						return false
					}
				}
				if env.activeRoundCount(t, form.ID) > 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(12, gen.Bool()),
	))

	properties.TestingRun(t)
}
