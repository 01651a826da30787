package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := NewPool(4)

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		ok := p.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
		if !ok {
			t.Fatal("Submit returned false on open pool")
		}
	}
	wg.Wait()
	p.Close()

	if count != 100 {
		t.Errorf("Tasks run = %d, want 100", count)
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	p := NewPool(1)
	p.Close()

	if p.Submit(func() {}) {
		t.Error("Submit after Close should return false")
	}
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close() // must not panic
}

func TestPool_RecoversTaskPanic(t *testing.T) {
	p := NewPool(1)

	var wg sync.WaitGroup
	wg.Add(2)
	p.Submit(func() {
		defer wg.Done()
		panic("boom")
	})

	// The worker must survive and run the next task
	ran := false
	p.Submit(func() {
		defer wg.Done()
		ran = true
	})
	wg.Wait()
	p.Close()

	if !ran {
		t.Error("Worker did not survive a panicking task")
	}
}

func TestForEach_CoversAllIndices(t *testing.T) {
	seen := make([]int64, 50)
	ForEach(8, 50, func(i int) {
		atomic.AddInt64(&seen[i], 1)
	})

	for i, n := range seen {
		if n != 1 {
			t.Errorf("Index %d ran %d times, want 1", i, n)
		}
	}
}

func TestForEach_ZeroTasks(t *testing.T) {
	ForEach(4, 0, func(i int) {
		t.Error("fn must not run for n=0")
	})
}
