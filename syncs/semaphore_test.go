package syncs

import (
	"context"
	"errors"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	if err := sem.AcquireContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sem.AcquireContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	sem.Release()
	sem.Acquire()
	sem.Release()
}

func TestSemaphoreAtLeastOne(t *testing.T) {
	sem := NewSemaphore(0)
	if cap(sem) != 1 {
		t.Fatalf("got %v", cap(sem))
	}
}
