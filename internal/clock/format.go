package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"myclock/internal/models"
)

// ErrInvalidDuration 表示输入不是 MM:SS
var ErrInvalidDuration = errors.New("invalid time format, use MM:SS")

// FormatClock 格式化为 MM:SS，分钟不设上限
func FormatClock(minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatSeconds 将总秒数格式化为 MM:SS
func FormatSeconds(total int) string {
	d := models.DurationFromSeconds(total)
	return FormatClock(d.Minutes, d.Seconds)
}

// ParseDuration 解析倒计时输入框，分和秒都限制在 00-59，即 00:00 到 59:59
func ParseDuration(s string) (models.Duration, error) {
	mm, ss, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return models.Duration{}, ErrInvalidDuration
	}

	minutes, err := parseField(mm)
	if err != nil {
		return models.Duration{}, err
	}
	seconds, err := parseField(ss)
	if err != nil {
		return models.Duration{}, err
	}

	return models.Duration{Minutes: minutes, Seconds: seconds}, nil
}

func parseField(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidDuration
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidDuration
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v > 59 {
		return 0, ErrInvalidDuration
	}
	return v, nil
}
