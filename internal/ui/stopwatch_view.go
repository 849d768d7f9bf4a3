package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StopwatchView 秒表一列：时间显示 + Start / Stop / Reset
type StopwatchView struct {
	container *fyne.Container
	display   *canvas.Text
	startBtn  *widget.Button
	stopBtn   *widget.Button
	resetBtn  *widget.Button
}

func NewStopwatchView(onStart, onStop, onReset func()) *StopwatchView {
	v := &StopwatchView{
		display: newClockText(),
	}

	v.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), onStart)
	v.startBtn.Importance = widget.HighImportance

	v.stopBtn = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), onStop)
	v.stopBtn.Disable()

	v.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), onReset)

	v.container = container.NewVBox(
		widget.NewLabelWithStyle("Stopwatch", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewPadded(v.display),
		v.startBtn,
		v.stopBtn,
		v.resetBtn,
	)
	return v
}

func (v *StopwatchView) SetText(text string) {
	v.display.Text = text
	v.display.Refresh()
}

func (v *StopwatchView) Text() string {
	return v.display.Text
}

func (v *StopwatchView) SetControls(start, stop, reset bool) {
	setEnabled(v.startBtn, start)
	setEnabled(v.stopBtn, stop)
	setEnabled(v.resetBtn, reset)
}

// newClockText 创建大号的 MM:SS 文本
func newClockText() *canvas.Text {
	t := canvas.NewText("00:00", theme.Color(theme.ColorNameForeground))
	t.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	t.TextSize = 60
	t.Alignment = fyne.TextAlignCenter
	return t
}

func setEnabled(d fyne.Disableable, enabled bool) {
	if enabled {
		d.Enable()
	} else {
		d.Disable()
	}
}
