package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"myclock/internal/clock"
)

// CountdownView 倒计时一列：时间显示、MM:SS 输入框和四个按钮
type CountdownView struct {
	container *fyne.Container
	display   *canvas.Text
	input     *widget.Entry
	startBtn  *widget.Button
	resetBtn  *widget.Button
	pauseBtn  *widget.Button
	abortBtn  *widget.Button
}

type CountdownActions struct {
	Start func()
	Reset func()
	Pause func()
	Abort func()
}

func NewCountdownView(initialInput string, actions CountdownActions) *CountdownView {
	v := &CountdownView{
		display: newClockText(),
	}

	v.input = widget.NewEntry()
	v.input.SetPlaceHolder("MM:SS")
	v.input.Validator = func(s string) error {
		_, err := clock.ParseDuration(s)
		return err
	}
	v.input.SetText(initialInput)

	v.startBtn = widget.NewButtonWithIcon("Start Timer", theme.MediaPlayIcon(), actions.Start)
	v.startBtn.Importance = widget.HighImportance

	v.resetBtn = widget.NewButtonWithIcon("Reset Timer", theme.MediaReplayIcon(), actions.Reset)

	v.pauseBtn = widget.NewButtonWithIcon("Stop Timer", theme.MediaPauseIcon(), actions.Pause)
	v.pauseBtn.Disable()

	v.abortBtn = widget.NewButtonWithIcon("Abort Timer", theme.CancelIcon(), actions.Abort)
	v.abortBtn.Disable()

	v.container = container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewPadded(v.display),
		v.input,
		v.startBtn,
		v.resetBtn,
		v.pauseBtn,
		v.abortBtn,
	)
	return v
}

func (v *CountdownView) SetText(text string) {
	v.display.Text = text
	v.display.Refresh()
}

func (v *CountdownView) Text() string {
	return v.display.Text
}

func (v *CountdownView) SetControls(c clock.Controls) {
	setEnabled(v.input, c.CountdownInput)
	setEnabled(v.startBtn, c.CountdownStart)
	setEnabled(v.pauseBtn, c.CountdownPause)
	setEnabled(v.abortBtn, c.CountdownAbort)
	setEnabled(v.resetBtn, c.CountdownReset)
}
