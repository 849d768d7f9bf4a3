package clock

import (
	"time"

	"myclock/internal/models"
	"myclock/internal/ticker"
)

// Stopwatch 运行时每次 tick 加一秒
type Stopwatch struct {
	state  models.StopwatchState
	sched  ticker.Scheduler
	handle ticker.Handle
	onTick func()

	// 最近一次 Start 以来计的秒数
	runSeconds int
}

// NewStopwatch 创建停在 00:00 的秒表，每计一秒后调用 onTick
func NewStopwatch(sched ticker.Scheduler, onTick func()) *Stopwatch {
	if onTick == nil {
		onTick = func() {}
	}
	return &Stopwatch{sched: sched, onTick: onTick}
}

// Start 开始计时，已在运行时返回 false
func (s *Stopwatch) Start() bool {
	if s.state.Running {
		return false
	}
	s.state.Running = true
	s.runSeconds = 0
	s.handle = s.sched.Every(time.Second, s.tick)
	return true
}

// Stop 停止计时，未在运行时返回 false
func (s *Stopwatch) Stop() bool {
	if !s.state.Running {
		return false
	}
	s.state.Running = false
	s.stopTick()
	return true
}

// Reset 清零，不改变运行状态
func (s *Stopwatch) Reset() {
	s.state.Minutes = 0
	s.state.Seconds = 0
}

func (s *Stopwatch) tick() {
	s.state.Seconds++
	if s.state.Seconds == 60 {
		s.state.Seconds = 0
		s.state.Minutes++
	}
	s.runSeconds++
	s.onTick()
}

func (s *Stopwatch) stopTick() {
	if s.handle != nil {
		s.handle.Stop()
		s.handle = nil
	}
}

// State 返回当前状态的副本
func (s *Stopwatch) State() models.StopwatchState {
	return s.state
}

// RunSeconds 返回最近一次 Start 以来计的秒数
func (s *Stopwatch) RunSeconds() int {
	return s.runSeconds
}

// Display 返回当前的 MM:SS 文本
func (s *Stopwatch) Display() string {
	return FormatClock(s.state.Minutes, s.state.Seconds)
}
