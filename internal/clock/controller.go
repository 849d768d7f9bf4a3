// Package clock 包含秒表、倒计时的状态机，以及把它们连接到界面的控制器。
//
// Controller 的方法和所有 tick 回调都必须在 UI goroutine 上执行，这里不加锁。
package clock

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"myclock/internal/models"
	"myclock/internal/notify"
	"myclock/internal/ticker"
)

const (
	CompletionTitle   = "End timer!"
	CompletionMessage = "Timer has stopped."
)

// View 是控制器驱动的界面
type View interface {
	SetStopwatchText(text string)
	SetCountdownText(text string)
	InputText() string
	SetInputText(text string)
	SetControls(c Controls)
	ShowError(err error)
	// ShowCompletion 提示倒计时结束，用户确认后必须调用 onDismiss
	ShowCompletion(title, message string, onDismiss func())
}

// Recorder 保存已结束的计时记录
type Recorder interface {
	SaveSession(record *models.SessionRecord) error
}

type Option func(*Controller)

func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithNow 替换记录时间戳使用的 time.Now
func WithNow(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller 持有秒表和倒计时，并让界面与它们保持同步
type Controller struct {
	view      View
	stopwatch *Stopwatch
	countdown *Countdown
	recorder  Recorder
	notifier  notify.Notifier
	logger    *zap.Logger
	now       func() time.Time

	stopwatchStarted time.Time
	countdownStarted time.Time
}

func NewController(view View, sched ticker.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		view:     view,
		notifier: notify.NoopNotifier{},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.stopwatch = NewStopwatch(sched, c.onStopwatchTick)
	c.countdown = NewCountdown(sched, c.onCountdownTick, c.onCountdownComplete)
	return c
}

// Init 推送初始显示，倒计时从输入框载入初始时长
func (c *Controller) Init() {
	c.view.SetStopwatchText(c.stopwatch.Display())
	c.ResetCountdown()
}

func (c *Controller) StartStopwatch() {
	if !c.stopwatch.Start() {
		return
	}
	c.stopwatchStarted = c.now()
	c.logger.Debug("Stopwatch started", zap.String("at", c.stopwatch.Display()))
	c.refreshControls()
}

func (c *Controller) StopStopwatch() {
	if !c.stopwatch.Stop() {
		return
	}
	c.logger.Debug("Stopwatch stopped", zap.String("at", c.stopwatch.Display()))
	c.record(models.KindStopwatch, models.OutcomeStopped, c.stopwatch.RunSeconds(), c.stopwatchStarted)
	c.refreshControls()
}

func (c *Controller) ResetStopwatch() {
	c.stopwatch.Reset()
	c.view.SetStopwatchText(c.stopwatch.Display())
	c.refreshControls()
}

// StartCountdown 开始或继续倒计时，*ValidationError 会提示给用户并返回
func (c *Controller) StartCountdown() error {
	before := c.countdown.State().State
	if err := c.countdown.StartOrResume(c.readInput); err != nil {
		c.logger.Info("Countdown rejected", zap.Error(err))
		c.view.ShowError(err)
		c.refreshControls()
		return err
	}

	if before == models.StateIdle {
		c.countdownStarted = c.now()
		c.view.SetCountdownText(c.countdown.Display())
	}
	c.logger.Debug("Countdown running",
		zap.Stringer("from", before),
		zap.Int("remaining", c.countdown.State().Remaining),
	)
	c.refreshControls()
	return nil
}

func (c *Controller) PauseCountdown() {
	if !c.countdown.Pause() {
		return
	}
	c.logger.Debug("Countdown paused", zap.Int("remaining", c.countdown.State().Remaining))
	c.refreshControls()
}

// AbortCountdown 把倒计时和输入框都清为 00:00
func (c *Controller) AbortCountdown() {
	prev := c.countdown.Abort()
	c.recordAborted(prev)

	zero := FormatSeconds(0)
	c.view.SetCountdownText(zero)
	c.view.SetInputText(zero)
	c.refreshControls()
}

// ResetCountdown 停止倒计时并从输入框重新载入
func (c *Controller) ResetCountdown() {
	d, err := c.readInput()
	if err != nil {
		c.logger.Warn("Countdown input unreadable, loading 00:00", zap.Error(err))
		d = models.Duration{}
	}

	prev := c.countdown.Load(d)
	c.recordAborted(prev)

	c.view.SetCountdownText(c.countdown.Display())
	c.refreshControls()
}

func (c *Controller) Stopwatch() models.StopwatchState {
	return c.stopwatch.State()
}

func (c *Controller) Countdown() models.CountdownState {
	return c.countdown.State()
}

func (c *Controller) Controls() Controls {
	return Coordinate(c.stopwatch.State().Running, c.countdown.State().State)
}

func (c *Controller) onStopwatchTick() {
	c.view.SetStopwatchText(c.stopwatch.Display())
}

func (c *Controller) onCountdownTick() {
	c.view.SetCountdownText(c.countdown.Display())
}

func (c *Controller) onCountdownComplete() {
	loaded := c.countdown.State().Loaded
	c.logger.Info("Countdown completed", zap.Int("seconds", loaded))
	c.record(models.KindCountdown, models.OutcomeCompleted, loaded, c.countdownStarted)

	err := c.notifier.Send(notify.Notification{
		Title:   CompletionTitle,
		Message: CompletionMessage,
		Type:    notify.NotifySuccess,
	})
	if err != nil {
		c.logger.Warn("Completion notification failed", zap.Error(err))
	}

	c.refreshControls()
	c.view.ShowCompletion(CompletionTitle, CompletionMessage, c.ResetCountdown)
}

func (c *Controller) readInput() (models.Duration, error) {
	text := c.view.InputText()
	d, err := ParseDuration(text)
	if err != nil {
		return models.Duration{}, &ValidationError{Input: text, Msg: err.Error(), Err: err}
	}
	return d, nil
}

func (c *Controller) recordAborted(prev models.CountdownState) {
	if prev.State == models.StateIdle {
		return
	}
	c.logger.Debug("Countdown aborted", zap.Int("remaining", prev.Remaining))
	c.record(models.KindCountdown, models.OutcomeAborted, prev.Loaded-prev.Remaining, c.countdownStarted)
}

func (c *Controller) record(kind models.SessionKind, outcome models.SessionOutcome, seconds int, started time.Time) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.SaveSession(&models.SessionRecord{
		Kind:      kind,
		Outcome:   outcome,
		Duration:  int64(seconds),
		StartTime: started,
		EndTime:   c.now(),
	})
	if err != nil {
		c.logger.Warn("Failed to save session",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}

func (c *Controller) refreshControls() {
	c.view.SetControls(c.Controls())
}

// IsValidationError 判断 err 是否为 *ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
