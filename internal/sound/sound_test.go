package sound

import (
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myclock/internal/notify"
)

func TestPulsesLength(t *testing.T) {
	sr := beep.SampleRate(1000)
	s := Pulses(sr)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		total += n
		if !ok {
			break
		}
	}

	want := tonePulses*sr.N(toneLength) + (tonePulses-1)*sr.N(toneGap)
	assert.Equal(t, want, total)
	assert.InDelta(t, toneAmplitude, peak, 0.01)
}

func TestDisabledChimeIsSilent(t *testing.T) {
	c := NewChime(false, "does-not-exist.wav", 0)

	require.NoError(t, c.Send(notify.Notification{}))
	assert.Nil(t, c.buffer, "audio must not be initialized while disabled")
}

func TestChimeMissingFile(t *testing.T) {
	c := NewChime(true, filepath.Join(t.TempDir(), "missing.wav"), 0)

	err := c.Send(notify.Notification{})
	assert.Error(t, err)

	// 失败结果被记住，不再重试
	assert.Equal(t, err, c.Send(notify.Notification{}))
}

func TestSetEnabled(t *testing.T) {
	c := NewChime(true, "", 0)
	c.SetEnabled(false)
	assert.False(t, c.Enabled())
}
