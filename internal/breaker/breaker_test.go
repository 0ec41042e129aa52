package breaker

import (
	"errors"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream failed")

// 創建一個使用假時鐘的斷路器，回傳推進時間的函數
func newTestBreaker(t *testing.T, settings Settings) (*CircuitBreaker, func(d time.Duration)) {
	t.Helper()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := NewWithClock("test-service", settings, func() time.Time { return now })

	advance := func(d time.Duration) { now = now.Add(d) }
	return cb, advance
}

func TestClosedAllowsCalls(t *testing.T) {
	cb, _ := newTestBreaker(t, Settings{})

	called := false
	err := cb.Do(func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected fn to be called in closed state")
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected closed state, got %v", cb.State())
	}
}

func TestOpensAfterThresholdFailures(t *testing.T) {
	cb, _ := newTestBreaker(t, Settings{FailureThreshold: 3})

	for i := 0; i < 3; i++ {
		if err := cb.Do(func() error { return errUpstream }); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d: expected upstream error, got %v", i, err)
		}
	}

	if cb.State() != StateOpen {
		t.Fatalf("expected open state after threshold failures, got %v", cb.State())
	}
}

func TestOpenShortCircuitsWithoutCallingFn(t *testing.T) {
	cb, _ := newTestBreaker(t, Settings{FailureThreshold: 1, Cooldown: 30 * time.Second})

	cb.Do(func() error { return errUpstream })

	called := false
	err := cb.Do(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	if called {
		t.Fatal("fn must not be called while the breaker is open")
	}
}

func TestHalfOpenAfterCooldownThenCloses(t *testing.T) {
	cb, advance := newTestBreaker(t, Settings{FailureThreshold: 1, Cooldown: 30 * time.Second})

	cb.Do(func() error { return errUpstream })
	if cb.State() != StateOpen {
		t.Fatalf("expected open state, got %v", cb.State())
	}

	advance(30 * time.Second)
	if cb.State() != StateHalfOpen {
		t.Fatalf("expected half-open state after cooldown, got %v", cb.State())
	}

	// 試探成功，斷路器關閉
	if err := cb.Do(func() error { return nil }); err != nil {
		t.Fatalf("unexpected error on trial call: %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected closed state after successful trial, got %v", cb.State())
	}
}

func TestHalfOpenTrialFailureReopens(t *testing.T) {
	cb, advance := newTestBreaker(t, Settings{FailureThreshold: 1, Cooldown: 30 * time.Second})

	cb.Do(func() error { return errUpstream })
	advance(30 * time.Second)

	// 試探失敗，重新開啟並重新計算冷卻時間
	if err := cb.Do(func() error { return errUpstream }); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if cb.State() != StateOpen {
		t.Fatalf("expected open state after failed trial, got %v", cb.State())
	}

	if err := cb.Do(func() error { return nil }); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen during renewed cooldown, got %v", err)
	}
}

func TestHalfOpenLimitsTrialCalls(t *testing.T) {
	cb, advance := newTestBreaker(t, Settings{FailureThreshold: 1, Cooldown: 30 * time.Second, HalfOpenMaxCalls: 1})

	cb.Do(func() error { return errUpstream })
	advance(30 * time.Second)

	// 第一個試探放行後，同一輪的後續請求被攔截。
	// 用一個不回報結果的慢呼叫模擬還在進行中的試探。
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- cb.Do(func() error {
			close(started)
			<-release
			return nil
		})
	}()

	// 等待試探請求進入執行
	<-started

	if err := cb.Do(func() error { return nil }); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen while trial call is in flight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error from trial call: %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected closed state, got %v", cb.State())
	}
}

func TestWindowResetsFailureCount(t *testing.T) {
	cb, advance := newTestBreaker(t, Settings{FailureThreshold: 3, Window: 10 * time.Second})

	cb.Do(func() error { return errUpstream })
	cb.Do(func() error { return errUpstream })

	// 超過時間窗口，舊的失敗不再計入
	advance(11 * time.Second)

	if err := cb.Do(func() error { return errUpstream }); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected closed state, old failures should have expired, got %v", cb.State())
	}
}
