package notify

import "go.uber.org/zap"

// NotificationType 通知类型
type NotificationType int

const (
	NotifyInfo NotificationType = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

func (t NotificationType) String() string {
	switch t {
	case NotifySuccess:
		return "success"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "info"
	}
}

// Notification 待发送的通知
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
}

// Notifier 发送通知
type Notifier interface {
	Send(n Notification) error
}

// MultiNotifier 依次发送给多个 Notifier
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier 创建 MultiNotifier，跳过 nil
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Send 发送给所有 Notifier，返回最后一个错误
func (m *MultiNotifier) Send(n Notification) error {
	var lastErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(n); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// NoopNotifier 什么都不做
type NoopNotifier struct{}

func (NoopNotifier) Send(n Notification) error { return nil }

// LogNotifier 把通知写入日志
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Send(n Notification) error {
	l.logger.Info("Notification",
		zap.String("title", n.Title),
		zap.String("message", n.Message),
		zap.Stringer("type", n.Type),
	)
	return nil
}
