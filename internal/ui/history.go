package ui

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"myclock/internal/clock"
	"myclock/internal/models"
)

const recentLimit = 10

// HistoryStore 历史窗口需要的查询
type HistoryStore interface {
	GetSessionStats(startDate, endDate time.Time) (*models.SessionStats, error)
	RecentSessions(limit int) ([]*models.SessionRecord, error)
}

type HistoryView struct {
	container  *fyne.Container
	store      HistoryStore
	logger     *zap.Logger
	now        func() time.Time
	dateRange  *widget.Select
	stats      *widget.Label
	recent     *widget.Label
	refreshBtn *widget.Button
}

func NewHistoryView(store HistoryStore, logger *zap.Logger) *HistoryView {
	if logger == nil {
		logger = zap.NewNop()
	}
	hv := &HistoryView{
		store:  store,
		logger: logger,
		now:    time.Now,
		stats:  widget.NewLabel(""),
		recent: widget.NewLabel(""),
	}
	hv.setup()
	return hv
}

func (hv *HistoryView) setup() {
	title := widget.NewLabelWithStyle("History", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	hv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if selected := hv.dateRange.Selected; selected != "" {
			hv.updateStats(selected)
		}
	})

	hv.dateRange = widget.NewSelect(
		[]string{"Today", "This Week", "This Month", "All Time"},
		hv.updateStats,
	)

	toolbar := container.NewHBox(
		widget.NewLabel("Time Range:"),
		hv.dateRange,
		hv.refreshBtn,
	)

	hv.container = container.NewVBox(
		title,
		toolbar,
		hv.stats,
		widget.NewLabelWithStyle("Recent Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		hv.recent,
	)

	// 默认选中今天，同时触发一次统计
	hv.dateRange.SetSelected("Today")
}

// rangeStart 返回时间范围的起点，零值表示不限制
func rangeStart(timeRange string, now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch timeRange {
	case "Today":
		return day
	case "This Week":
		return day.AddDate(0, 0, -int(now.Weekday()))
	case "This Month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

func (hv *HistoryView) updateStats(timeRange string) {
	now := hv.now()
	start := rangeStart(timeRange, now)

	stats, err := hv.store.GetSessionStats(start, now)
	if err != nil {
		hv.logger.Warn("Failed to load session stats", zap.String("range", timeRange), zap.Error(err))
		hv.stats.SetText("History unavailable")
		return
	}

	hv.stats.SetText(fmt.Sprintf(
		"Stopwatch Sessions: %d\n"+
			"Stopwatch Time: %s\n"+
			"Timers Started: %d\n"+
			"Timers Completed: %d\n"+
			"Timer Time: %s",
		stats.StopwatchSessions,
		clock.FormatSeconds(int(stats.StopwatchDuration)),
		stats.CountdownSessions,
		stats.CountdownCompleted,
		clock.FormatSeconds(int(stats.CountdownDuration)),
	))

	recent, err := hv.store.RecentSessions(recentLimit)
	if err != nil {
		hv.logger.Warn("Failed to load recent sessions", zap.Error(err))
		return
	}
	hv.recent.SetText(formatRecent(recent))
}

func formatRecent(records []*models.SessionRecord) string {
	if len(records) == 0 {
		return "No sessions yet"
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s  %-9s %-9s %s",
			r.EndTime.Local().Format("2006-01-02 15:04"),
			r.Kind,
			r.Outcome,
			clock.FormatSeconds(int(r.Duration)),
		))
	}
	return strings.Join(lines, "\n")
}

func (hv *HistoryView) Container() *fyne.Container {
	return hv.container
}
