package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item, or return an *EmptyQueueError when there's none.
	Pop() (T, error)
	//Peek the oldest item without removing it. The zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice that grows on demand.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to the current size.
	Shrink()
	//Clear all items. The capacity is kept.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
