package clock

import (
	"fmt"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAfterFuncInvokesCallback(t *testing.T) {
	clock := Fake(epoch)
	called := false
	clock.AfterFunc(2*time.Second, func() { called = true })

	clock.Advance(1 * time.Second)
	if called {
		t.Fatal("AfterFunc fired before deadline")
	}

	clock.Advance(1 * time.Second)
	if !called {
		t.Fatal("AfterFunc did not fire at deadline")
	}
	if got := clock.Pending(); got != 0 {
		t.Fatalf("Pending() after fire = %d, want 0", got)
	}
}

func TestFakeClockAfterFuncZeroDurationIsQueued(t *testing.T) {
	clock := Fake(epoch)
	called := 0
	clock.AfterFunc(0, func() { called++ })
	clock.AfterFunc(-time.Second, func() { called++ })

	if called != 0 {
		t.Fatal("AfterFunc(0) must not call f synchronously")
	}
	if got := clock.Pending(); got != 2 {
		t.Fatalf("Pending() = %d, want 2", got)
	}

	clock.Advance(0)
	if called != 2 {
		t.Fatalf("callbacks after Advance(0) = %d, want 2", called)
	}
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want unchanged %v", got, epoch)
	}
}

func TestFakeClockAfterFuncStop(t *testing.T) {
	clock := Fake(epoch)
	called := false
	timer := clock.AfterFunc(time.Second, func() { called = true })

	if !timer.Stop() {
		t.Fatal("Stop() on pending timer should return true")
	}
	if timer.Stop() {
		t.Fatal("second Stop() should return false")
	}
	clock.Advance(time.Hour)
	if called {
		t.Fatal("stopped timer fired")
	}
	if got := clock.Pending(); got != 0 {
		t.Fatalf("Pending() = %d, want 0", got)
	}
}

func TestFakeClockStopAfterFire(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)
	if timer.Stop() {
		t.Fatal("Stop() after fire should return false")
	}
}

func TestFakeClockFiresInDeadlineThenRegistrationOrder(t *testing.T) {
	clock := Fake(epoch)
	var order []string
	clock.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	clock.AfterFunc(1*time.Second, func() { order = append(order, "a1") })
	clock.AfterFunc(1*time.Second, func() { order = append(order, "a2") })
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b") })

	clock.Advance(10 * time.Second)

	want := []string{"a1", "a2", "b", "c"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestFakeClockChainedCallbacksUseExactDeadlines(t *testing.T) {
	clock := Fake(epoch)
	var fired []time.Duration
	var schedule func()
	schedule = func() {
		clock.AfterFunc(10*time.Millisecond, func() {
			fired = append(fired, clock.Now().Sub(epoch))
			if len(fired) < 5 {
				schedule()
			}
		})
	}
	schedule()

	clock.Advance(35 * time.Millisecond)
	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}
	if fmt.Sprint(fired) != fmt.Sprint(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	if got := clock.Now().Sub(epoch); got != 35*time.Millisecond {
		t.Fatalf("Now() offset = %v, want 35ms", got)
	}
	deadline, ok := clock.NextDeadline()
	if !ok || deadline.Sub(epoch) != 40*time.Millisecond {
		t.Fatalf("NextDeadline() = %v %v, want +40ms", deadline.Sub(epoch), ok)
	}
}

func TestFakeClockFireNext(t *testing.T) {
	clock := Fake(epoch)
	if clock.FireNext() {
		t.Fatal("FireNext() with nothing pending should return false")
	}

	count := 0
	var tick func()
	tick = func() {
		count++
		clock.AfterFunc(0, tick)
	}
	clock.AfterFunc(0, tick)

	for i := 0; i < 100; i++ {
		if !clock.FireNext() {
			t.Fatalf("FireNext() returned false at %d", i)
		}
	}
	if count != 100 {
		t.Fatalf("count = %d, want 100", count)
	}
	if got := clock.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want exactly the next tick", got)
	}
}
