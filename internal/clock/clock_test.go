package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myclock/internal/models"
	"myclock/internal/notify"
	"myclock/internal/ticker"
)

type fakeView struct {
	stopwatch   string
	countdown   string
	input       string
	controls    Controls
	errors      []error
	completions int
	dismiss     func()
}

func (v *fakeView) SetStopwatchText(text string) { v.stopwatch = text }
func (v *fakeView) SetCountdownText(text string) { v.countdown = text }
func (v *fakeView) InputText() string            { return v.input }
func (v *fakeView) SetInputText(text string)     { v.input = text }
func (v *fakeView) SetControls(c Controls)       { v.controls = c }
func (v *fakeView) ShowError(err error)          { v.errors = append(v.errors, err) }

func (v *fakeView) ShowCompletion(title, message string, onDismiss func()) {
	v.completions++
	v.dismiss = onDismiss
}

type fakeRecorder struct {
	records []models.SessionRecord
	err     error
}

func (r *fakeRecorder) SaveSession(rec *models.SessionRecord) error {
	r.records = append(r.records, *rec)
	return r.err
}

type countingNotifier struct {
	sent []notify.Notification
}

func (n *countingNotifier) Send(note notify.Notification) error {
	n.sent = append(n.sent, note)
	return nil
}

func newTestController(input string, opts ...Option) (*Controller, *fakeView, *ticker.Manual) {
	view := &fakeView{input: input}
	sched := ticker.NewManual()
	c := NewController(view, sched, opts...)
	c.Init()
	return c, view, sched
}

func TestStopwatchTicksMatchElapsed(t *testing.T) {
	for _, n := range []int{0, 1, 59, 60, 61, 119, 3599, 3600, 6125} {
		c, view, sched := newTestController("00:00")
		c.StartStopwatch()
		sched.TickN(n)

		st := c.Stopwatch()
		assert.Equal(t, n/60, st.Minutes, "n=%d", n)
		assert.Equal(t, n%60, st.Seconds, "n=%d", n)
		assert.Equal(t, FormatClock(n/60, n%60), view.stopwatch)
	}
}

func TestStopwatchMinutesAreUnbounded(t *testing.T) {
	c, view, sched := newTestController("00:00")
	c.StartStopwatch()
	sched.TickN(100 * 60)

	assert.Equal(t, "100:00", view.stopwatch)
}

func TestStopwatchStartIsNotReentrant(t *testing.T) {
	c, _, sched := newTestController("00:00")
	c.StartStopwatch()
	c.StartStopwatch()
	sched.TickN(3)

	assert.Equal(t, 1, sched.Started())
	assert.Equal(t, 3, c.Stopwatch().Seconds)
}

func TestStopwatchStopHaltsTicks(t *testing.T) {
	c, view, sched := newTestController("00:00")
	c.StartStopwatch()
	sched.TickN(5)
	c.StopStopwatch()
	c.StopStopwatch()
	sched.TickN(5)

	assert.False(t, c.Stopwatch().Running)
	assert.Equal(t, "00:05", view.stopwatch)
	assert.Zero(t, sched.Active())

	c.StartStopwatch()
	sched.TickN(2)
	assert.Equal(t, "00:07", view.stopwatch)
}

func TestStopwatchReset(t *testing.T) {
	tests := []struct {
		name    string
		ticks   int
		running bool
	}{
		{"fresh", 0, false},
		{"stopped", 75, false},
		{"running", 130, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, view, sched := newTestController("00:00")
			c.StartStopwatch()
			sched.TickN(tt.ticks)
			if !tt.running {
				c.StopStopwatch()
			}

			c.ResetStopwatch()

			assert.Equal(t, "00:00", view.stopwatch)
			assert.Equal(t, tt.running, c.Stopwatch().Running)
		})
	}
}

func TestInitLoadsInputIntoCountdown(t *testing.T) {
	c, view, sched := newTestController("05:00")

	assert.Equal(t, "05:00", view.countdown)
	assert.Equal(t, "00:00", view.stopwatch)
	assert.Equal(t, 300, c.Countdown().Remaining)
	assert.Equal(t, models.StateIdle, c.Countdown().State)
	assert.Zero(t, sched.Started())
	assert.Equal(t, Coordinate(false, models.StateIdle), view.controls)

	bad, badView, _ := newTestController("later")
	assert.Equal(t, "00:00", badView.countdown)
	assert.Zero(t, bad.Countdown().Remaining)
}

func TestCountdownRejectsZeroDuration(t *testing.T) {
	c, view, sched := newTestController("00:00")

	err := c.StartCountdown()

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, MsgDurationNotPositive, err.Error())
	assert.Zero(t, sched.Started())
	assert.Equal(t, models.StateIdle, c.Countdown().State)
	require.Len(t, view.errors, 1)
	assert.Equal(t, Coordinate(false, models.StateIdle), view.controls)
}

func TestCountdownRejectsMalformedInput(t *testing.T) {
	c, view, sched := newTestController("ab:cd")

	err := c.StartCountdown()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ab:cd", verr.Input)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Zero(t, sched.Started())
	assert.Len(t, view.errors, 1)
}

func TestCountdownCompletesOneTickAfterZero(t *testing.T) {
	c, view, sched := newTestController("00:05")
	require.NoError(t, c.StartCountdown())
	assert.Equal(t, "00:05", view.countdown)

	sched.TickN(5)
	assert.Equal(t, "00:00", view.countdown)
	assert.Zero(t, view.completions, "completion lags one tick behind 00:00")
	assert.True(t, c.Countdown().Running())

	sched.Tick()
	assert.Equal(t, 1, view.completions)
	assert.False(t, c.Countdown().Running())
	assert.Zero(t, sched.Active())

	sched.TickN(3)
	assert.Equal(t, 1, view.completions)

	require.NotNil(t, view.dismiss)
	view.dismiss()
	assert.Equal(t, "00:05", view.countdown)
	assert.Equal(t, 5, c.Countdown().Remaining)
	assert.Equal(t, Coordinate(false, models.StateIdle), view.controls)
}

func TestCountdownPauseAndResume(t *testing.T) {
	c, view, sched := newTestController("01:00")
	require.NoError(t, c.StartCountdown())
	sched.TickN(10)

	c.PauseCountdown()
	assert.Equal(t, models.StatePaused, c.Countdown().State)
	assert.Equal(t, 50, c.Countdown().Remaining)
	sched.TickN(5)
	assert.Equal(t, "00:50", view.countdown)

	// 继续时不重新读取输入框
	view.input = "00:03"
	require.NoError(t, c.StartCountdown())
	assert.Equal(t, 50, c.Countdown().Remaining)

	sched.TickN(50)
	assert.Equal(t, "00:00", view.countdown)
	assert.Zero(t, view.completions)
	sched.Tick()
	assert.Equal(t, 1, view.completions)
}

func TestCountdownPauseWhenNotRunning(t *testing.T) {
	c, view, _ := newTestController("00:10")
	before := view.controls

	c.PauseCountdown()

	assert.Equal(t, models.StateIdle, c.Countdown().State)
	assert.Equal(t, before, view.controls)
}

func TestCountdownStartWhileRunningIsNoop(t *testing.T) {
	c, _, sched := newTestController("00:10")
	require.NoError(t, c.StartCountdown())
	sched.TickN(2)
	require.NoError(t, c.StartCountdown())

	assert.Equal(t, 1, sched.Started())
	assert.Equal(t, 8, c.Countdown().Remaining)
}

func TestCountdownAbort(t *testing.T) {
	for _, paused := range []bool{false, true} {
		c, view, sched := newTestController("02:30")
		c.StartStopwatch()
		require.NoError(t, c.StartCountdown())
		sched.TickN(4)
		if paused {
			c.PauseCountdown()
		}

		c.AbortCountdown()

		assert.Equal(t, 0, c.Countdown().Remaining)
		assert.Equal(t, models.StateIdle, c.Countdown().State)
		assert.Equal(t, "00:00", view.countdown)
		assert.Equal(t, "00:00", view.input)
		assert.Equal(t, Coordinate(true, models.StateIdle), view.controls)
		assert.Equal(t, 1, sched.Active(), "only the stopwatch keeps ticking")
	}
}

func TestCountdownResetRereadsInput(t *testing.T) {
	c, view, sched := newTestController("00:30")
	require.NoError(t, c.StartCountdown())
	sched.TickN(7)

	view.input = "03:15"
	c.ResetCountdown()

	assert.Equal(t, 195, c.Countdown().Remaining)
	assert.Equal(t, "03:15", view.countdown)
	assert.Equal(t, models.StateIdle, c.Countdown().State)
	assert.Zero(t, sched.Active())
	assert.Equal(t, Coordinate(false, models.StateIdle), view.controls)

	// 重新开始时再次读取输入框
	view.input = "00:02"
	require.NoError(t, c.StartCountdown())
	assert.Equal(t, 2, c.Countdown().Remaining)
}

func TestCountdownResetWithMalformedInputLoadsZero(t *testing.T) {
	c, view, _ := newTestController("99:99")

	c.ResetCountdown()

	assert.Equal(t, 0, c.Countdown().Remaining)
	assert.Equal(t, "00:00", view.countdown)
}

func TestStopwatchAndCountdownRunTogether(t *testing.T) {
	c, view, sched := newTestController("00:03")
	c.StartStopwatch()
	require.NoError(t, c.StartCountdown())

	assert.False(t, view.controls.StopwatchStop, "countdown disables the stopwatch group")
	assert.False(t, view.controls.StopwatchStart)

	sched.TickN(4)
	assert.Equal(t, "00:04", view.stopwatch)
	assert.Equal(t, 1, view.completions)

	sched.TickN(2)
	assert.Equal(t, "00:06", view.stopwatch)
	assert.True(t, c.Stopwatch().Running)
}

func TestSessionsAreRecorded(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	rec := &fakeRecorder{}
	notes := &countingNotifier{}
	c, view, sched := newTestController("00:02",
		WithRecorder(rec),
		WithNotifier(notes),
		WithNow(func() time.Time { return now }),
	)

	c.StartStopwatch()
	sched.TickN(3)
	c.StopStopwatch()

	require.NoError(t, c.StartCountdown())
	sched.TickN(3)
	view.dismiss()

	require.NoError(t, c.StartCountdown())
	sched.Tick()
	c.AbortCountdown()

	// Idle 时没有可中止的计时
	c.AbortCountdown()
	c.ResetCountdown()

	require.Len(t, rec.records, 3)
	assert.Equal(t, models.KindStopwatch, rec.records[0].Kind)
	assert.Equal(t, models.OutcomeStopped, rec.records[0].Outcome)
	assert.Equal(t, int64(3), rec.records[0].Duration)

	assert.Equal(t, models.OutcomeCompleted, rec.records[1].Outcome)
	assert.Equal(t, int64(2), rec.records[1].Duration)

	assert.Equal(t, models.OutcomeAborted, rec.records[2].Outcome)
	assert.Equal(t, int64(1), rec.records[2].Duration)
	assert.Equal(t, now, rec.records[2].EndTime)

	require.Len(t, notes.sent, 1)
	assert.Equal(t, CompletionMessage, notes.sent[0].Message)
}

func TestRecorderFailureDoesNotStopTheClock(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	c, view, sched := newTestController("00:01", WithRecorder(rec))

	require.NoError(t, c.StartCountdown())
	sched.TickN(2)

	assert.Equal(t, 1, view.completions)
	assert.Len(t, rec.records, 1)
}
