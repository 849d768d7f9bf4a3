package models

import "fmt"

type TimerState int

const (
	StateIdle TimerState = iota
	StateRunning
	StatePaused
)

func (s TimerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Duration 是倒计时输入框中的分:秒值
type Duration struct {
	Minutes int
	Seconds int
}

// TotalSeconds 返回总秒数
func (d Duration) TotalSeconds() int {
	return d.Minutes*60 + d.Seconds
}

func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds)
}

// DurationFromSeconds 将总秒数拆分为分和秒
func DurationFromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{Minutes: total / 60, Seconds: total % 60}
}

// StopwatchState 秒表状态，Seconds 始终在 [0,59]
type StopwatchState struct {
	Minutes int
	Seconds int
	Running bool
}

// CountdownState 倒计时状态
type CountdownState struct {
	Remaining int        // 剩余秒数
	Loaded    int        // 本次开始时从输入框读取的秒数
	State     TimerState // Idle / Running / Paused
}

// Running 返回倒计时是否正在运行
func (c CountdownState) Running() bool {
	return c.State == StateRunning
}
