package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafePerftTable_Concurrent(t *testing.T) {
	table := NewThreadSafePerftTable(0)

	const numWorkers = 10
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				hash := uint64(worker*perWorker + i)
				table.Store(hash, 2, hash*3)
				if nodes, ok := table.Lookup(hash, 2); !ok || nodes != hash*3 {
					t.Errorf("Lookup(%d) = %d, %v", hash, nodes, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	if got := table.Len(); got != numWorkers*perWorker {
		t.Errorf("Len() = %d, want %d", got, numWorkers*perWorker)
	}
	if got := table.Hits(); got != numWorkers*perWorker {
		t.Errorf("Hits() = %d, want %d", got, numWorkers*perWorker)
	}
}

func TestThreadSafePerftTable_SharedKey(t *testing.T) {
	table := NewThreadSafePerftTable(0)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				table.Store(42, 4, 197281)
				table.Lookup(42, 4)
			}
		}()
	}
	wg.Wait()

	if got := table.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestThreadSafePerftTable_MaxCapacity(t *testing.T) {
	shared := NewThreadSafePerftTable(3)
	for i := uint64(0); i < 10; i++ {
		shared.Store(i, 1, i)
	}
	if !shared.IsFull() {
		t.Error("IsFull() = false after exceeding capacity")
	}
	if got := shared.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
