package streams

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[int](4, 8)
	queue.Publish("blob-a", 1)
	queue.Publish("blob-a", 2)
	queue.Close()

	idx := partitionIndex("blob-a", queue.PartitionCount())
	var got []int
	for v := range queue.Partition(idx) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestPartitionedQueue_CloseDrains(t *testing.T) {
	t.Parallel()

	queue := newPartitionedQueue[string](2, 16)
	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		queue.Publish(k, k)
	}
	queue.Close()

	var mu sync.Mutex
	var got []string
	var wg sync.WaitGroup
	for i := 0; i < queue.PartitionCount(); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := range queue.Partition(i) {
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, keys, got)
}
