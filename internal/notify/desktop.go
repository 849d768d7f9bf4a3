package notify

import "fyne.io/fyne/v2"

// DesktopNotifier 通过 fyne 应用发送系统通知
type DesktopNotifier struct {
	app     fyne.App
	enabled bool
}

// NewDesktopNotifier 创建系统通知
func NewDesktopNotifier(app fyne.App, enabled bool) *DesktopNotifier {
	return &DesktopNotifier{app: app, enabled: enabled}
}

// Send 发送系统通知，未启用时忽略
func (d *DesktopNotifier) Send(n Notification) error {
	if !d.enabled || d.app == nil {
		return nil
	}
	d.app.SendNotification(fyne.NewNotification(n.Title, n.Message))
	return nil
}
