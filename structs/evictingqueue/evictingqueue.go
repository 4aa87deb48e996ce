package evictingqueue

import "sync"

//
// Queue is a thread-safe queue structure that automatically maintains the desired maximum size by
// evicting its oldest element if a new element is being added when at capacity. It is modeled after
// the EvictingQueue class from the Google Guava library for Java.
//
type Queue[T any] struct {
	mu    *sync.Mutex
	size  int
	queue []T
}

//
// New instantiates a new evicting queue with the specified maximum size. A size below one is
// treated as one.
//
func New[T any](maxSize int) *Queue[T] {
	if maxSize < 1 {
		maxSize = 1
	}

	return &Queue[T]{
		mu:    &sync.Mutex{},
		size:  maxSize,
		queue: make([]T, 0, maxSize),
	}
}

//
// Add appends the provided element to the evicting queue and evicts the oldest element if necessary
// to maintain its maximum size.
//
func (o *Queue[T]) Add(e T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.queue) == o.size {
		o.queue = o.queue[1:]
	}

	o.queue = append(o.queue, e)
}

//
// Get returns the element that exists at the specified index of the queue and a true sentinel, or
// the zero value and a false sentinel if the index is out-of-range.
//
func (o *Queue[T]) Get(index int) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if index < 0 || index >= len(o.queue) {
		var zero T
		return zero, false
	}

	return o.queue[index], true
}

// Snapshot returns a copy of the queue, oldest element first.
func (o *Queue[T]) Snapshot() []T {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]T, len(o.queue))
	copy(out, o.queue)

	return out
}

//
// Len returns the current length of the queue.
//
func (o *Queue[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.queue)
}
