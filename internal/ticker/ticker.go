// Package ticker 提供可取消的周期 tick。
//
// tick 回调在 UI goroutine 上执行，回调中修改共享状态无需加锁。
// 程序中使用以 fyne.Do 派发的 Real，测试中手动驱动 Manual。
package ticker

import (
	"sync"
	"sync/atomic"
	"time"
)

// Handle 是正在运行的 tick
type Handle interface {
	// Stop 取消 tick，返回后不再执行回调，已排队等待派发的也不执行。可重复调用
	Stop()
}

// Scheduler 启动周期 tick
type Scheduler interface {
	// Every 每隔 interval 调用一次 fn，直到返回的 Handle 被停止
	Every(interval time.Duration, fn func()) Handle
}

// Dispatcher 在 UI goroutine 上执行 fn
type Dispatcher func(fn func())

// Immediate 在当前 goroutine 上直接执行 fn
func Immediate(fn func()) { fn() }

// Real 基于 time.Ticker
type Real struct {
	dispatch Dispatcher
}

// NewReal 创建 Real，dispatch 为 nil 时在 ticker goroutine 上执行回调
func NewReal(dispatch Dispatcher) *Real {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Real{dispatch: dispatch}
}

// Every 实现 Scheduler
func (r *Real) Every(interval time.Duration, fn func()) Handle {
	h := &realHandle{done: make(chan struct{})}
	t := time.NewTicker(interval)

	go func() {
		defer t.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-t.C:
				r.dispatch(func() {
					if h.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()

	return h
}

type realHandle struct {
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}
}

func (h *realHandle) Stop() {
	h.once.Do(func() {
		h.stopped.Store(true)
		close(h.done)
	})
}

// Manual 由 Tick 手动触发，用于测试
type Manual struct {
	mu      sync.Mutex
	handles []*manualHandle
}

// NewManual 创建 Manual
func NewManual() *Manual {
	return &Manual{}
}

// Every 实现 Scheduler
func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := &manualHandle{interval: interval, fn: fn}
	m.handles = append(m.handles, h)
	return h
}

// Tick 按启动顺序在每个未停止的 handle 上触发一次
func (m *Manual) Tick() {
	for _, h := range m.active() {
		if !h.stopped.Load() {
			h.fn()
		}
	}
}

// TickN 调用 n 次 Tick
func (m *Manual) TickN(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Active 返回未停止的 handle 数量
func (m *Manual) Active() int {
	return len(m.active())
}

// Started 返回累计启动过的 tick 数量
func (m *Manual) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

func (m *Manual) active() []*manualHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*manualHandle
	for _, h := range m.handles {
		if !h.stopped.Load() {
			out = append(out, h)
		}
	}
	return out
}

type manualHandle struct {
	interval time.Duration
	fn       func()
	stopped  atomic.Bool
}

func (h *manualHandle) Stop() {
	h.stopped.Store(true)
}
