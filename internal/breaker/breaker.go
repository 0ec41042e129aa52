// Package breaker 實作斷路器（circuit breaker）。
//
// 每個上游服務持有一個 CircuitBreaker 實例，在多個請求之間共用。
// 狀態機有三種狀態：
//   - Closed:   請求正常通過，同時統計時間窗口內的失敗次數
//   - Open:     請求被直接攔截，不會碰到網路，經過冷卻時間後進入 HalfOpen
//   - HalfOpen: 放行有限次數的試探請求，成功則關閉，失敗則重新開啟
package breaker

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen 表示斷路器處於開啟狀態，請求被攔截
var ErrOpen = errors.New("circuit breaker is open")

// State 定義斷路器狀態的類型
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Settings 定義斷路器的觸發條件
type Settings struct {
	FailureThreshold int           // 時間窗口內累積多少次失敗後跳開
	Window           time.Duration // 失敗統計的時間窗口
	Cooldown         time.Duration // Open 狀態持續多久後進入 HalfOpen
	HalfOpenMaxCalls int           // HalfOpen 狀態允許的試探請求數
}

func (s Settings) withDefaults() Settings {
	if s.FailureThreshold <= 0 {
		s.FailureThreshold = 5
	}
	if s.Window <= 0 {
		s.Window = 10 * time.Second
	}
	if s.Cooldown <= 0 {
		s.Cooldown = 30 * time.Second
	}
	if s.HalfOpenMaxCalls <= 0 {
		s.HalfOpenMaxCalls = 1
	}
	return s
}

// CircuitBreaker 是單一上游服務的斷路器
type CircuitBreaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu            sync.Mutex
	state         State
	failures      int
	windowStart   time.Time
	openedAt      time.Time
	halfOpenCalls int
}

// New 創建一個使用系統時鐘的斷路器
func New(name string, settings Settings) *CircuitBreaker {
	return NewWithClock(name, settings, time.Now)
}

// NewWithClock 創建一個使用指定時鐘的斷路器，測試時可以注入假時鐘
func NewWithClock(name string, settings Settings, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		name:     name,
		settings: settings.withDefaults(),
		now:      now,
		state:    StateClosed,
	}
}

// Name 回傳斷路器對應的上游服務名稱
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// State 回傳當前狀態（Open 超過冷卻時間時回報 HalfOpen）
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.settings.Cooldown {
		return StateHalfOpen
	}
	return cb.state
}

// Do 在斷路器的保護下執行 fn。
// 斷路器開啟時直接回傳 ErrOpen，不會執行 fn。
func (cb *CircuitBreaker) Do(fn func() error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}

	err := fn()
	cb.afterCall(err)
	return err
}

// beforeCall 判斷請求是否放行，並處理 Open -> HalfOpen 的轉換
func (cb *CircuitBreaker) beforeCall() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()

	switch cb.state {
	case StateClosed:
		// 超過時間窗口就重置失敗統計
		if now.Sub(cb.windowStart) > cb.settings.Window {
			cb.failures = 0
			cb.windowStart = now
		}
		return nil

	case StateOpen:
		if now.Sub(cb.openedAt) < cb.settings.Cooldown {
			return ErrOpen
		}
		cb.state = StateHalfOpen
		cb.halfOpenCalls = 0
		fallthrough

	case StateHalfOpen:
		if cb.halfOpenCalls >= cb.settings.HalfOpenMaxCalls {
			return ErrOpen
		}
		cb.halfOpenCalls++
		return nil
	}

	return nil
}

// afterCall 根據執行結果更新狀態
func (cb *CircuitBreaker) afterCall(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()

	if err == nil {
		// 成功：HalfOpen 的試探成功就關閉斷路器，Closed 則重置統計
		cb.state = StateClosed
		cb.failures = 0
		cb.windowStart = now
		return
	}

	switch cb.state {
	case StateClosed:
		if cb.failures == 0 {
			cb.windowStart = now
		}
		cb.failures++
		if cb.failures >= cb.settings.FailureThreshold {
			cb.state = StateOpen
			cb.openedAt = now
		}

	case StateHalfOpen:
		// 試探失敗，重新開啟並重新計算冷卻時間
		cb.state = StateOpen
		cb.openedAt = now
	}
}
