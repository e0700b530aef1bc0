package walk

import "sync"

// queueState names the work queue's lifecycle. The transition to
// shutdown happens exactly once, under the queue lock: naturally when
// the queue drains with no tasks in flight, or forcibly when the
// aggregate size cap is hit.
type queueState int

const (
	queueRunning queueState = iota
	queueShutdown
)

// workQueue is the shared FIFO behind the traversal. The active counter
// tracks items that are queued or dequeued-but-unfinished; producers
// push children under the same lock that guards the queue, so the queue
// can never look drained while a worker is about to add work.
type workQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	active int
	state  queueState
}

func newWorkQueue() *workQueue {
	q := &workQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push enqueues paths. Work offered after shutdown is dropped.
func (q *workQueue) push(paths ...string) {
	if len(paths) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state == queueShutdown {
		return
	}
	q.items = append(q.items, paths...)
	q.active += len(paths)
	q.cond.Broadcast()
}

// pop blocks until work is available or no more will ever arrive. A
// worker that finds the queue empty while tasks are still in flight
// waits instead of exiting; another worker may yet produce children.
// ok == false means the queue has shut down.
func (q *workQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.state == queueShutdown {
			return "", false
		}
		if len(q.items) > 0 {
			item := q.items[0]
			q.items = q.items[1:]
			return item, true
		}
		if q.active == 0 {
			q.state = queueShutdown
			q.cond.Broadcast()
			return "", false
		}
		q.cond.Wait()
	}
}

// done marks one dequeued task complete.
func (q *workQueue) done() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.active > 0 {
		q.active--
	}
	q.cond.Broadcast()
}

// shutdown forces the terminal state; every subsequent pop returns
// immediately and pending items are discarded.
func (q *workQueue) shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.state = queueShutdown
	q.items = nil
	q.cond.Broadcast()
}
