package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"consensus-api/internal/dto"
)

// MockRoundRepairer is a mock implementation of RoundRepairer
type MockRoundRepairer struct {
	RepairFunc func(ctx context.Context) (*dto.RepairResult, error)
	calls      atomic.Int32
}

func (m *MockRoundRepairer) RepairActiveRounds(ctx context.Context) (*dto.RepairResult, error) {
	m.calls.Add(1)
	if m.RepairFunc != nil {
		return m.RepairFunc(ctx)
	}
	return &dto.RepairResult{}, nil
}

func TestRoundRepairJob_RunOnce(t *testing.T) {
	tests := []struct {
		name      string
		result    *dto.RepairResult
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{
			name:      "nothing to repair",
			result:    &dto.RepairResult{},
			wantLevel: zapcore.DebugLevel,
			wantMsg:   "No stray active rounds found",
		},
		{
			name:      "stray rounds closed",
			result:    &dto.RepairResult{FormsRepaired: 1, RoundsRepaired: 2},
			wantLevel: zapcore.WarnLevel,
			wantMsg:   "Closed stray active rounds",
		},
		{
			name:      "repair failure",
			err:       errors.New("db down"),
			wantLevel: zapcore.ErrorLevel,
			wantMsg:   "Failed to repair active rounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			repairer := &MockRoundRepairer{
				RepairFunc: func(ctx context.Context) (*dto.RepairResult, error) {
					return tt.result, tt.err
				},
			}

			got := NewRoundRepairJob(repairer, zap.New(core)).RunOnce(context.Background())

			assert.Equal(t, tt.result, got)
			entries := logs.FilterMessage(tt.wantMsg).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
		})
	}
}

func TestRoundRepairJob_StartAndStop(t *testing.T) {
	repairer := &MockRoundRepairer{}
	j := NewRoundRepairJob(repairer, zap.NewNop())

	require.NoError(t, j.Start("@every 1s"))
	assert.Eventually(t, func() bool { return repairer.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	j.Stop()

	stopped := repairer.calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, stopped, repairer.calls.Load())
}

func TestRoundRepairJob_InvalidSchedule(t *testing.T) {
	j := NewRoundRepairJob(&MockRoundRepairer{}, nil)

	assert.Error(t, j.Start("not a schedule"))
	j.Stop()
}
