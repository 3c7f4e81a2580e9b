package streams

import (
	"encoding/binary"
	"hash/fnv"
)

const (
	defaultNumPartitions = 8
	defaultBuffer        = 64
)

// PartitionedQueue fans messages out over a fixed set of buffered channels.
// Messages sharing a partition key land on the same channel, giving each
// consumer a single-writer lane.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return newPartitionedQueue[T](defaultNumPartitions, defaultBuffer)
}

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition exposes one lane for consumption.
func (queue *PartitionedQueue[T]) Partition(i int) <-chan T { return queue.partitions[i] }

func (queue *PartitionedQueue[T]) Publish(partitionKey string, msg T) {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	queue.partitions[idx] <- msg
}

// Close closes every partition; consumers drain what remains and stop.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
