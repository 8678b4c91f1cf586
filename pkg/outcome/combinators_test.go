package outcome

import (
	"strconv"
	"testing"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()
	r := Map(Success[string](2), func(v int) int { return v * 2 })

	if v, ok := r.Value(); !ok || v != 4 {
		t.Fatalf("expected success with 4, got (%v, %v)", v, ok)
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	calls := 0
	r := Map(Failure[string, int]("down"), func(v int) string {
		calls++
		return strconv.Itoa(v)
	})

	if e, ok := r.Err(); !ok || e != "down" {
		t.Fatalf("expected failure 'down', got (%v, %v)", e, ok)
	}
	if calls != 0 {
		t.Fatalf("map function must not run on a failure, ran %d times", calls)
	}
}

func TestMapError_Failure(t *testing.T) {
	t.Parallel()
	r := MapError(Failure[int, string](404), func(e int) int { return e * 2 })

	if e, ok := r.Err(); !ok || e != 808 {
		t.Fatalf("expected failure 808, got (%v, %v)", e, ok)
	}
}

func TestMapError_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	calls := 0
	r := MapError(Success[int]("fine"), func(e int) string {
		calls++
		return strconv.Itoa(e)
	})

	if v, ok := r.Value(); !ok || v != "fine" {
		t.Fatalf("expected success 'fine', got (%v, %v)", v, ok)
	}
	if calls != 0 {
		t.Fatalf("mapError function must not run on a success, ran %d times", calls)
	}
}

func TestAndThen_FlattensSuccess(t *testing.T) {
	t.Parallel()
	next := Success[string]("done")
	r := AndThen(Success[string](1), func(int) Result[string, string] { return next })

	if v, ok := r.Value(); !ok || v != "done" {
		t.Fatalf("expected the step result directly, got (%v, %v)", v, ok)
	}
	if r.Id() != next.Id() {
		t.Fatalf("andThen must return the step result without re-wrapping")
	}
}

func TestAndThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	calls := 0
	r := AndThen(Failure[string, int]("stop"), func(v int) Result[string, int] {
		calls++
		return Success[string](v)
	})

	if e, ok := r.Err(); !ok || e != "stop" {
		t.Fatalf("expected failure 'stop', got (%v, %v)", e, ok)
	}
	if calls != 0 {
		t.Fatalf("step must not run after a failure, ran %d times", calls)
	}
}

func TestOrElse_RecoversFailure(t *testing.T) {
	t.Parallel()
	recovered := Success[int]("saved")
	r := OrElse(Failure[string, string]("lost"), func(string) Result[int, string] { return recovered })

	if v, ok := r.Value(); !ok || v != "saved" {
		t.Fatalf("expected recovery result directly, got (%v, %v)", v, ok)
	}
	if r.Id() != recovered.Id() {
		t.Fatalf("orElse must return the recovery result without re-wrapping")
	}
}

func TestOrElse_ShortCircuitOnSuccess(t *testing.T) {
	t.Parallel()
	calls := 0
	r := OrElse(Success[string](3), func(e string) Result[string, int] {
		calls++
		return Failure[string, int](e)
	})

	if v, ok := r.Value(); !ok || v != 3 {
		t.Fatalf("expected success 3, got (%v, %v)", v, ok)
	}
	if calls != 0 {
		t.Fatalf("recovery must not run on a success, ran %d times", calls)
	}
}

func TestWithDefault(t *testing.T) {
	t.Parallel()
	if got := WithDefault(Success[string](10), -1); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
	if got := WithDefault(Failure[string, int]("gone"), -1); got != -1 {
		t.Fatalf("expected fallback -1, got %v", got)
	}
}

func TestChaining_FailsWhenValueIsFour(t *testing.T) {
	t.Parallel()
	step := func(v int) Result[string, string] {
		if v == 4 {
			return Failure[string, string]("Value was 4")
		}
		return Success[string]("Random")
	}

	doubled := Map(Success[string](2), func(v int) int { return v * 2 })
	relabeled := MapError(doubled, func(string) string { return "err" })
	r := AndThen(relabeled, step)

	if e, ok := r.Err(); !ok || e != "Value was 4" {
		t.Fatalf("expected failure 'Value was 4', got (%v, %v)", e, ok)
	}
}

func TestChaining_SucceedsWhenValueIsNotFour(t *testing.T) {
	t.Parallel()
	step := func(v int) Result[string, string] {
		if v == 4 {
			return Failure[string, string]("Value was 4")
		}
		return Success[string]("Random")
	}

	doubled := Map(Success[string](3), func(v int) int { return v * 2 })
	r := AndThen(doubled, step)

	if v, ok := r.Value(); !ok || v != "Random" {
		t.Fatalf("expected success 'Random', got (%v, %v)", v, ok)
	}
}
