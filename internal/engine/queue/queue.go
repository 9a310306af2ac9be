// Package queue serializes report requests through a single drain loop.
package queue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
)

// Request asks for one report run.
type Request struct {
	ProjectID string
	ChannelID string
	Force     bool
}

// Handler processes one request.
type Handler func(ctx context.Context, req Request) (domain.Outcome, error)

// TicketState is the lifecycle position of a ticket.
type TicketState string

const (
	// TicketQueued means the request waits for the drain loop.
	TicketQueued TicketState = "queued"
	// TicketRunning means the request is being processed.
	TicketRunning TicketState = "running"
	// TicketDone means the request finished and its result is available.
	TicketDone TicketState = "done"
)

// Ticket is the completion handle of an enqueued request.
type Ticket struct {
	ID       string
	Position int
	Request  Request

	done    chan struct{}
	mu      sync.Mutex
	state   TicketState
	outcome domain.Outcome
	err     error
}

// Wait blocks until the request was processed or ctx is done.
func (t *Ticket) Wait(ctx context.Context) (domain.Outcome, error) {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.outcome, t.err
	case <-ctx.Done():
		return domain.Outcome{}, ctx.Err()
	}
}

// State returns the current state of the ticket.
func (t *Ticket) State() TicketState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Result returns the outcome and error of a finished ticket.
// done is false while the request is still queued or running.
func (t *Ticket) Result() (outcome domain.Outcome, done bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TicketDone {
		return domain.Outcome{}, false, nil
	}
	return t.outcome, true, t.err
}

func (t *Ticket) setState(s TicketState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

func (t *Ticket) complete(outcome domain.Outcome, err error) {
	t.mu.Lock()
	t.state = TicketDone
	t.outcome = outcome
	t.err = err
	t.mu.Unlock()
	close(t.done)
}

// DefaultFinishedLimit is how many finished tickets stay available to Lookup.
const DefaultFinishedLimit = 256

// Queue is an unbounded FIFO of report requests.
type Queue struct {
	handler Handler
	limit   int

	mu       sync.Mutex
	pending  []*Ticket
	active   *Ticket
	tickets  map[string]*Ticket
	finished []string
	closed   bool
	wake     chan struct{}
}

// Option configures a Queue.
type Option func(*Queue)

// WithFinishedLimit caps the finished tickets kept for Lookup. Oldest are evicted first.
func WithFinishedLimit(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.limit = n
		}
	}
}

// New creates a Queue that processes requests with handler.
func New(handler Handler, opts ...Option) *Queue {
	q := &Queue{
		handler: handler,
		limit:   DefaultFinishedLimit,
		tickets: make(map[string]*Ticket),
		wake:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends req to the queue. Position counts the requests ahead of it,
// including the one currently running.
func (q *Queue) Enqueue(req Request) (*Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, domain.ErrQueueClosed
	}

	position := len(q.pending)
	if q.active != nil {
		position++
	}
	t := &Ticket{
		ID:       uuid.NewString(),
		Position: position,
		Request:  req,
		done:     make(chan struct{}),
		state:    TicketQueued,
	}
	q.pending = append(q.pending, t)
	q.tickets[t.ID] = t

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return t, nil
}

// Lookup returns the ticket with the given id.
func (q *Queue) Lookup(id string) (*Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.tickets[id]
	if !ok {
		return nil, zerr.With(domain.ErrTicketNotFound, "ticket_id", id)
	}
	return t, nil
}

// Pending returns the number of requests waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Active reports whether a request for channelID is queued or running.
func (q *Queue) Active(channelID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.active != nil && q.active.Request.ChannelID == channelID {
		return true
	}
	for _, t := range q.pending {
		if t.Request.ChannelID == channelID {
			return true
		}
	}
	return false
}

// Run drains the queue until ctx is done. Requests still pending at that point
// complete with the context error and later Enqueue calls fail.
func (q *Queue) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			q.close(err)
			return nil
		}

		t := q.next()
		if t == nil {
			select {
			case <-ctx.Done():
				q.close(ctx.Err())
				return nil
			case <-q.wake:
				continue
			}
		}

		outcome, err := q.handler(ctx, t.Request)

		q.mu.Lock()
		q.active = nil
		q.retire(t)
		q.mu.Unlock()
		t.complete(outcome, err)
	}
}

// retire records t as finished and evicts the oldest finished tickets over the limit.
// Callers hold q.mu.
func (q *Queue) retire(t *Ticket) {
	q.finished = append(q.finished, t.ID)
	for len(q.finished) > q.limit {
		delete(q.tickets, q.finished[0])
		q.finished = q.finished[1:]
	}
}

func (q *Queue) next() *Ticket {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	t := q.pending[0]
	q.pending = q.pending[1:]
	q.active = t
	t.setState(TicketRunning)
	return t
}

func (q *Queue) close(err error) {
	q.mu.Lock()
	q.closed = true
	pending := q.pending
	q.pending = nil
	for _, t := range pending {
		q.retire(t)
	}
	q.mu.Unlock()

	for _, t := range pending {
		t.complete(domain.Outcome{ProjectID: t.Request.ProjectID, Status: domain.StatusFailure}, err)
	}
}
