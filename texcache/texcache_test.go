package texcache

import (
	"runtime"
	"testing"
	"time"
)

type fakeLOD struct{ id int }

func TestPutGet(t *testing.T) {
	c := New[fakeLOD, int]()
	lod := &fakeLOD{id: 1}
	c.Put(lod, 42, func(int) {})

	v, ok := c.Get(lod)
	if !ok || v != 42 {
		t.Fatalf("Get = (%v,%v), want (42,true)", v, ok)
	}
}

func TestReleaseOnUnreachable(t *testing.T) {
	c := New[fakeLOD, int]()
	released := make(chan int, 1)

	func() {
		lod := &fakeLOD{id: 2}
		c.Put(lod, 7, func(v int) { released <- v })
		runtime.KeepAlive(lod)
	}()

	runtime.GC()
	runtime.GC()

	select {
	case v := <-released:
		if v != 7 {
			t.Fatalf("released value = %v, want 7", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not run after GC")
	}

	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after eviction", c.Len())
	}
}
