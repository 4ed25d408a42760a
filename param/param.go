// Package param delivers parameter updates to a running graph instance.
//
// A channel is split into a Producer and a Consumer. Producers can be
// copied and used from any goroutine. The Consumer belongs to the
// goroutine that drives the instance and applies updates right before the
// next sample is produced:
//
//	producer, consumer := param.Split(64)
//	go producer.Set(pitch, 880)
//	...
//	consumer.Drain(instance)
//
// Producers serialise on a mutex, the consumer side only uses atomic
// loads and stores and never blocks.
package param

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pipelined/dspgraph/unit"
)

// DefaultCapacity is the queue capacity used when none is provided.
const DefaultCapacity = 64

// ErrSaturated is returned by TrySet when the queue is full.
var ErrSaturated = errors.New("parameter queue is saturated")

type (
	// Update sets the value of a tagged parameter.
	Update struct {
		Tag   unit.Tag
		Value float64
	}

	// Setter applies updates. Every unit.Unit is a Setter.
	Setter interface {
		Set(tag unit.Tag, value float64)
	}

	// Producer enqueues updates. The zero value is a closed producer.
	Producer struct {
		q *queue
	}

	// Consumer dequeues updates. It must be used by a single goroutine.
	Consumer struct {
		q *queue
	}

	// queue is a bounded ring. head is only written by the consumer, tail
	// is only written by a producer that holds the mutex.
	queue struct {
		mu     sync.Mutex
		head   uint64
		tail   uint64
		closed int32
		mask   uint64
		slots  []Update
	}
)

// Split creates a new channel with at least the provided capacity. The
// capacity is rounded up to the power of two.
func Split(capacity int) (Producer, *Consumer) {
	size := 2
	for size < capacity {
		size <<= 1
	}
	q := &queue{
		mask:  uint64(size - 1),
		slots: make([]Update, size),
	}
	return Producer{q: q}, &Consumer{q: q}
}

// Set enqueues an update. If the queue is full, it retries until the
// consumer frees a slot or is closed. Updates sent after the consumer is
// closed are discarded.
func (p Producer) Set(tag unit.Tag, value float64) {
	for p.TrySet(tag, value) == ErrSaturated {
		runtime.Gosched()
	}
}

// TrySet enqueues an update or returns ErrSaturated if the queue is full.
// Updates sent after the consumer is closed are discarded.
func (p Producer) TrySet(tag unit.Tag, value float64) error {
	q := p.q
	if q == nil || q.isClosed() {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	tail := atomic.LoadUint64(&q.tail)
	if tail-atomic.LoadUint64(&q.head) == uint64(len(q.slots)) {
		return ErrSaturated
	}
	q.slots[tail&q.mask] = Update{Tag: tag, Value: value}
	atomic.StoreUint64(&q.tail, tail+1)
	return nil
}

// Closed returns true if updates are not delivered anymore.
func (p Producer) Closed() bool {
	return p.q == nil || p.q.isClosed()
}

// Drain applies all pending updates in the order they were enqueued and
// returns the number of applied updates.
func (c *Consumer) Drain(s Setter) int {
	q := c.q
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)
	for i := head; i != tail; i++ {
		u := q.slots[i&q.mask]
		s.Set(u.Tag, u.Value)
	}
	atomic.StoreUint64(&q.head, tail)
	return int(tail - head)
}

// Len returns number of pending updates.
func (c *Consumer) Len() int {
	return int(atomic.LoadUint64(&c.q.tail) - atomic.LoadUint64(&c.q.head))
}

// Cap returns queue capacity.
func (c *Consumer) Cap() int {
	return len(c.q.slots)
}

// Close stops delivery. Producers become no-ops.
func (c *Consumer) Close() {
	atomic.StoreInt32(&c.q.closed, 1)
}

func (q *queue) isClosed() bool {
	return atomic.LoadInt32(&q.closed) == 1
}
