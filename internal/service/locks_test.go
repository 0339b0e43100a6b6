package service

import (
	"sync"
	"testing"
)

func TestMatchLocks_SameIDSameMutex(t *testing.T) {
	l := NewMatchLocks()
	if l.Get(7) != l.Get(7) {
		t.Fatal("same match id must map to the same mutex")
	}
	if l.Get(7) == l.Get(8) {
		t.Fatal("different match ids must not share a mutex")
	}
}

func TestMatchLocks_ConcurrentGet(t *testing.T) {
	l := NewMatchLocks()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu := l.Get(1)
			mu.Lock()
			mu.Unlock()
		}()
	}
	wg.Wait()
}
