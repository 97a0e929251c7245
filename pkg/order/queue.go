package order

import "iter"

// Queue is a FIFO of pending orders. It holds no lock; callers serialize access.
type Queue struct {
	orders []*Order
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends o at the tail.
func (q *Queue) Enqueue(o *Order) {
	q.orders = append(q.orders, o)
}

// Dequeue removes and returns the head of the queue.
func (q *Queue) Dequeue() (*Order, error) {
	if len(q.orders) == 0 {
		return nil, ErrEmptyQueue
	}
	o := q.orders[0]
	q.orders[0] = nil
	q.orders = q.orders[1:]
	if len(q.orders) == 0 {
		q.orders = nil
	}
	return o, nil
}

// Pending yields copies of the queued orders from head to tail.
func (q *Queue) Pending() iter.Seq[Order] {
	return func(yield func(Order) bool) {
		for _, o := range q.orders {
			if !yield(o.Clone()) {
				return
			}
		}
	}
}

// Len reports the number of pending orders.
func (q *Queue) Len() int {
	return len(q.orders)
}
