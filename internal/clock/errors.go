package clock

// MsgDurationNotPositive 在 00:00 开始倒计时时提示
const MsgDurationNotPositive = "Please set a valid time greater than 00:00"

// ValidationError 表示开始倒计时时时长不可用，返回时倒计时状态不变
type ValidationError struct {
	Input string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
