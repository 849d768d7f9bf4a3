package clock

import (
	"errors"
	"time"

	"myclock/internal/models"
	"myclock/internal/ticker"
)

// InputFunc 读取输入框中的时长，只在从 Idle 开始时调用
type InputFunc func() (models.Duration, error)

// Countdown 将剩余秒数倒数到零。
//
// 剩余时间减到零的那次 tick 只显示 00:00，下一次 tick 才触发一次完成，
// 之后回到 Idle。
type Countdown struct {
	state      models.CountdownState
	sched      ticker.Scheduler
	handle     ticker.Handle
	onTick     func()
	onComplete func()
}

// NewCountdown 创建未载入时长的 Idle 倒计时
func NewCountdown(sched ticker.Scheduler, onTick, onComplete func()) *Countdown {
	if onTick == nil {
		onTick = func() {}
	}
	if onComplete == nil {
		onComplete = func() {}
	}
	return &Countdown{sched: sched, onTick: onTick, onComplete: onComplete}
}

// StartOrResume 在 Idle 时从 input 读取时长开始，在 Paused 时从保留的剩余时间继续，
// Running 时不做任何事。输入无法解析或不大于零时返回 *ValidationError，状态不变
func (c *Countdown) StartOrResume(input InputFunc) error {
	switch c.state.State {
	case models.StateRunning:
		return nil
	case models.StateIdle:
		d, err := input()
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return err
			}
			return &ValidationError{Msg: ErrInvalidDuration.Error(), Err: err}
		}
		total := d.TotalSeconds()
		if total <= 0 {
			return &ValidationError{Input: d.String(), Msg: MsgDurationNotPositive}
		}
		c.state.Remaining = total
		c.state.Loaded = total
	}

	c.state.State = models.StateRunning
	c.handle = c.sched.Every(time.Second, c.tick)
	return nil
}

// Pause 停止 tick 并保留剩余时间，未在运行时返回 false
func (c *Countdown) Pause() bool {
	if c.state.State != models.StateRunning {
		return false
	}
	c.stopTick()
	c.state.State = models.StatePaused
	return true
}

// Abort 停止 tick 并清零回到 Idle，返回中止前的状态
func (c *Countdown) Abort() models.CountdownState {
	prev := c.state
	c.stopTick()
	c.state = models.CountdownState{State: models.StateIdle}
	return prev
}

// Load 停止 tick，回到 Idle 并把剩余时间设为 d，返回载入前的状态
func (c *Countdown) Load(d models.Duration) models.CountdownState {
	prev := c.state
	c.stopTick()
	c.state = models.CountdownState{
		Remaining: d.TotalSeconds(),
		State:     models.StateIdle,
	}
	return prev
}

func (c *Countdown) tick() {
	if c.state.Remaining > 0 {
		c.state.Remaining--
		c.onTick()
		return
	}

	c.stopTick()
	c.state.State = models.StateIdle
	c.onComplete()
}

func (c *Countdown) stopTick() {
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
}

// State 返回当前状态的副本
func (c *Countdown) State() models.CountdownState {
	return c.state
}

// Display 返回剩余时间的 MM:SS 文本
func (c *Countdown) Display() string {
	return FormatSeconds(c.state.Remaining)
}
