package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStartStop(t *testing.T) {
	b := Start("unit test scope")
	time.Sleep(5 * time.Millisecond)
	report := b.Stop()

	assert.Equal(t, "unit test scope", report.Label)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.Start.IsZero())
	assert.GreaterOrEqual(t, report.Elapsed, 5*time.Millisecond)
	assert.NotEmpty(t, report.AllocHuman)
}

func TestMeasureRunsFunction(t *testing.T) {
	ran := false
	report := Measure("measure", func() { ran = true })

	assert.True(t, ran)
	assert.Equal(t, "measure", report.Label)
}

func TestRunIDsAreUnique(t *testing.T) {
	a := Measure("a", func() {})
	b := Measure("b", func() {})
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestStopLogsReport(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	Measure("logged scope", func() {}, WithLogger(logger))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "benchmark finished", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "logged scope", fields["label"])
	assert.NotEmpty(t, fields["run_id"])
}

type fakeModel struct {
	training bool
}

func (m *fakeModel) Training() bool      { return m.training }
func (m *fakeModel) SetTraining(on bool) { m.training = on }

func TestWithModeSwitchesAndRestores(t *testing.T) {
	m := &fakeModel{training: true}

	err := WithMode(m, Eval, func() error {
		assert.False(t, m.Training(), "model must be in eval mode inside the scope")
		return nil
	})
	require.NoError(t, err)
	assert.True(t, m.Training(), "original mode must be restored")
}

func TestWithModeRestoresOnError(t *testing.T) {
	m := &fakeModel{training: false}
	boom := errors.New("boom")

	err := WithMode(m, Train, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Training(), "original mode must be restored after a failure")
}

func TestWithModeRejectsInvalidMode(t *testing.T) {
	m := &fakeModel{}
	err := WithMode(m, Mode(99), func() error { return nil })
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "train", Train.String())
	assert.Equal(t, "eval", Eval.String())
}
