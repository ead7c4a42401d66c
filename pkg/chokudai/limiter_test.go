package chokudai

import (
	"context"
	"testing"
	"time"
)

func TestLimiterDefaultIsInfinite(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.Reset()

	if !limiter.Ok(1000000) {
		t.Error("default limiter should allow sweeps indefinitely")
	}
}

func TestLimiterSweeps(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.SetLimits(DefaultLimits().SetSweeps(10))
	limiter.Reset()

	if ok := limiter.Ok(9); !ok {
		t.Errorf("<Sweeps=9: ok=%v, want true", ok)
	}
	if ok := limiter.Ok(10); ok {
		t.Errorf(">=Sweeps=10: ok=%v, want false", ok)
	}
}

func TestLimiterMovetime(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.SetLimits(DefaultLimits().SetMovetime(100))
	limiter.Reset()

	if ok := limiter.Ok(1); !ok {
		t.Errorf("<Movetime: ok=%v, want true", ok)
	}

	time.Sleep(time.Millisecond * 101)
	if ok := limiter.Ok(1); ok {
		t.Errorf(">Movetime: ok=%v, want false", ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("after Reset: ok=%v, want true", ok)
	}
}

func TestLimiterZeroMovetimeExpiresImmediately(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.SetLimits(DefaultLimits().SetMovetime(0))
	limiter.Reset()

	if limiter.Ok(0) {
		t.Error("zero movetime must not allow any sweep")
	}
}

func TestLimiterContextAndStop(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.Reset()

	limiter.SetStop(true)
	if limiter.Ok(0) {
		t.Error("stop signal ignored")
	}

	limiter.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	cancel()

	if limiter.Ok(0) {
		t.Error("cancelled context ignored")
	}

	limiter.EvaluateStopReason(0, false)
	if limiter.StopReason()&StopInterrupt == 0 {
		t.Errorf("got %s, want Interrupt", limiter.StopReason())
	}
}

func TestEvaluateStopReason(t *testing.T) {
	limiter := LimiterLike(NewLimiter())
	limiter.SetLimits(DefaultLimits().SetSweeps(5))
	limiter.Reset()

	limiter.EvaluateStopReason(5, true)
	reason := limiter.StopReason()
	if reason&StopSweeps == 0 || reason&StopExhausted == 0 {
		t.Errorf("got %s, want Sweeps|Exhausted", reason)
	}
}

func TestStopReasonString(t *testing.T) {
	if got := StopNone.String(); got != "None" {
		t.Errorf("StopNone = %q", got)
	}
	if got := StopReason(StopMovetime | StopExhausted).String(); got != "Movetime|Exhausted" {
		t.Errorf("combined reason = %q", got)
	}
}
