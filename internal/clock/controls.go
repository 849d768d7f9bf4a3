package clock

import "myclock/internal/models"

// Controls 表示哪些按钮和输入框可用
type Controls struct {
	StopwatchStart bool
	StopwatchStop  bool
	StopwatchReset bool

	CountdownInput bool
	CountdownStart bool
	CountdownPause bool
	CountdownAbort bool
	CountdownReset bool
}

// Coordinate 根据秒表和倒计时的状态计算控件是否可用。
//
// 倒计时处于 Running 或 Paused 时禁用秒表一组，
// 秒表运行不会禁用倒计时一组
func Coordinate(stopwatchRunning bool, countdown models.TimerState) Controls {
	stopwatchGroup := countdown == models.StateIdle
	countdownGroup := true

	return Controls{
		StopwatchStart: stopwatchGroup && !stopwatchRunning,
		StopwatchStop:  stopwatchGroup && stopwatchRunning,
		StopwatchReset: stopwatchGroup,

		CountdownInput: countdownGroup && countdown == models.StateIdle,
		CountdownStart: countdownGroup && countdown != models.StateRunning,
		CountdownPause: countdownGroup && countdown == models.StateRunning,
		CountdownAbort: countdownGroup && countdown != models.StateIdle,
		CountdownReset: countdownGroup,
	}
}
