package models

import "time"

type SessionKind string

const (
	KindStopwatch SessionKind = "stopwatch"
	KindCountdown SessionKind = "countdown"
)

type SessionOutcome string

const (
	OutcomeStopped   SessionOutcome = "stopped"
	OutcomeCompleted SessionOutcome = "completed"
	OutcomeAborted   SessionOutcome = "aborted"
)

// SessionRecord 是一次计时的历史记录
type SessionRecord struct {
	ID        int64
	Kind      SessionKind
	Outcome   SessionOutcome
	Duration  int64 // 以秒为单位
	StartTime time.Time
	EndTime   time.Time
}

type SessionStats struct {
	StopwatchSessions  int
	StopwatchDuration  int64 // 以秒为单位
	CountdownSessions  int
	CountdownCompleted int
	CountdownDuration  int64 // 以秒为单位
}
