package sound

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"myclock/internal/notify"
)

const sampleRate beep.SampleRate = 44100

// 内置提示音参数
const (
	toneHz        = 880.0
	toneLength    = 250 * time.Millisecond
	toneGap       = 120 * time.Millisecond
	tonePulses    = 3
	toneAmplitude = 0.3
)

// Chime 在倒计时结束时播放提示音，实现 notify.Notifier
type Chime struct {
	mu      sync.Mutex
	enabled bool
	file    string
	volume  float64

	initOnce sync.Once
	initErr  error
	buffer   *beep.Buffer
}

// NewChime 创建提示音；file 为空时使用内置的三声短音
func NewChime(enabled bool, file string, volume float64) *Chime {
	return &Chime{enabled: enabled, file: file, volume: volume}
}

// SetEnabled 开关提示音
func (c *Chime) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Send 播放提示音，音频初始化失败时返回错误
func (c *Chime) Send(n notify.Notification) error {
	if !c.Enabled() {
		return nil
	}

	c.initOnce.Do(func() {
		c.initErr = c.initAudio()
	})
	if c.initErr != nil {
		return c.initErr
	}

	speaker.Play(c.streamer())
	return nil
}

// 初始化音频系统
func (c *Chime) initAudio() error {
	buffer, err := c.load()
	if err != nil {
		return err
	}

	format := buffer.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	c.buffer = buffer
	return nil
}

func (c *Chime) load() (*beep.Buffer, error) {
	if c.file == "" {
		format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
		buffer := beep.NewBuffer(format)
		buffer.Append(Pulses(sampleRate))
		return buffer, nil
	}

	f, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.file, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

func (c *Chime) streamer() beep.Streamer {
	c.mu.Lock()
	volume := c.volume
	c.mu.Unlock()

	// 创建音量控制器
	return &effects.Volume{
		Streamer: c.buffer.Streamer(0, c.buffer.Len()),
		Base:     2,
		Volume:   volume,
		Silent:   false,
	}
}

// Pulses 返回内置提示音：三声 880Hz 短音，中间有短暂停顿
func Pulses(sr beep.SampleRate) beep.Streamer {
	var parts []beep.Streamer
	for i := 0; i < tonePulses; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sr.N(toneGap)))
		}
		parts = append(parts, beep.Take(sr.N(toneLength), sine(sr, toneHz)))
	}
	return beep.Seq(parts...)
}

func sine(sr beep.SampleRate, hz float64) beep.Streamer {
	step := 2 * math.Pi * hz / float64(sr)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := toneAmplitude * math.Sin(phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
		}
		return len(samples), true
	})
}
