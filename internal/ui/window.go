package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"myclock/internal/clock"
	"myclock/internal/config"
	"myclock/internal/notify"
	"myclock/internal/sound"
	"myclock/internal/ticker"
)

// SessionStore 记录并查询历史
type SessionStore interface {
	clock.Recorder
	HistoryStore
}

type Dependencies struct {
	Config    *config.Manager
	Scheduler ticker.Scheduler
	Store     SessionStore    // 为 nil 时不记录历史
	Notifier  notify.Notifier // 完成通知，可为 nil
	Chime     *sound.Chime    // 可为 nil
	Logger    *zap.Logger
}

// MainWindow 是唯一的窗口，左列秒表，右列倒计时，同时实现 clock.View
type MainWindow struct {
	window     fyne.Window
	app        fyne.App
	deps       Dependencies
	logger     *zap.Logger
	controller *clock.Controller
	stopwatch  *StopwatchView
	countdown  *CountdownView
	completion dialog.Dialog // 当前显示的完成对话框，关闭后为 nil
}

func NewMainWindow(app fyne.App, deps Dependencies) *MainWindow {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	cfg := deps.Config.GetConfig()

	w := &MainWindow{
		window: app.NewWindow(cfg.App.Name),
		app:    app,
		deps:   deps,
		logger: deps.Logger,
	}

	opts := []clock.Option{clock.WithLogger(deps.Logger)}
	if deps.Store != nil {
		opts = append(opts, clock.WithRecorder(deps.Store))
	}
	if deps.Notifier != nil {
		opts = append(opts, clock.WithNotifier(deps.Notifier))
	}
	w.controller = clock.NewController(w, deps.Scheduler, opts...)

	w.stopwatch = NewStopwatchView(
		w.controller.StartStopwatch,
		w.controller.StopStopwatch,
		w.controller.ResetStopwatch,
	)
	w.countdown = NewCountdownView(cfg.Countdown.DefaultInput, CountdownActions{
		Start: func() { _ = w.controller.StartCountdown() },
		Reset: w.controller.ResetCountdown,
		Pause: w.controller.PauseCountdown,
		Abort: w.controller.AbortCountdown,
	})

	w.setup()
	w.controller.Init()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	columns := container.NewGridWithColumns(2,
		w.stopwatch.container,
		w.countdown.container,
	)

	w.window.SetContent(container.NewPadded(columns))
	w.window.SetMainMenu(w.buildMenu())
	w.window.SetFixedSize(true)
	w.window.SetMaster()
}

func (w *MainWindow) buildMenu() *fyne.MainMenu {
	history := fyne.NewMenuItem("History", w.showHistory)
	history.Disabled = w.deps.Store == nil

	items := []*fyne.MenuItem{history}

	if w.deps.Chime != nil {
		soundItem := fyne.NewMenuItem("Sound", nil)
		soundItem.Checked = w.deps.Chime.Enabled()
		soundItem.Action = func() {
			w.toggleSound()
			soundItem.Checked = w.deps.Chime.Enabled()
			w.window.MainMenu().Refresh()
		}
		items = append(items, soundItem)
	}

	return fyne.NewMainMenu(fyne.NewMenu("Clock", items...))
}

func (w *MainWindow) toggleSound() {
	enabled := !w.deps.Chime.Enabled()
	w.deps.Chime.SetEnabled(enabled)

	cfg := w.deps.Config.GetConfig().Sound
	cfg.Enabled = enabled
	if err := w.deps.Config.UpdateSoundConfig(cfg); err != nil {
		w.logger.Warn("Failed to save sound setting", zap.Error(err))
	}
}

func (w *MainWindow) showHistory() {
	if w.deps.Store == nil {
		return
	}
	hw := w.app.NewWindow("History")
	hw.SetContent(NewHistoryView(w.deps.Store, w.logger).Container())
	hw.Resize(fyne.NewSize(420, 360))
	hw.Show()
}

// Show 显示窗口并进入事件循环，窗口关闭后返回
func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}

func (w *MainWindow) SetStopwatchText(text string) {
	w.stopwatch.SetText(text)
}

func (w *MainWindow) SetCountdownText(text string) {
	w.countdown.SetText(text)
}

func (w *MainWindow) InputText() string {
	return w.countdown.input.Text
}

func (w *MainWindow) SetInputText(text string) {
	w.countdown.input.SetText(text)
}

func (w *MainWindow) SetControls(c clock.Controls) {
	w.stopwatch.SetControls(c.StopwatchStart, c.StopwatchStop, c.StopwatchReset)
	w.countdown.SetControls(c)
}

func (w *MainWindow) ShowError(err error) {
	dialog.ShowError(err, w.window)
}

// ShowCompletion 弹出完成对话框，关闭后调用 onDismiss
func (w *MainWindow) ShowCompletion(title, message string, onDismiss func()) {
	d := dialog.NewInformation(title, message, w.window)
	d.SetOnClosed(func() {
		w.completion = nil
		onDismiss()
	})
	w.completion = d
	d.Show()
}
