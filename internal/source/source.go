package source

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/chatroom/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when a non-positive tick rate is supplied.
const DefaultTickRate = 250 * time.Millisecond

// ErrChannelClosed is returned by Next once the event channel has been closed.
var ErrChannelClosed = errors.New("event channel closed")

// Kind represents the type of an Event.
type Kind int

const (
	KindInput Kind = iota
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Event is either a keypress or a tick.
type Event struct {
	Kind Kind
	Key  tea.KeyMsg
}

// Source merges forwarded keypresses and periodic ticks into a single ordered
// channel with exactly one consumer.
type Source struct {
	tickRate time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	keys     chan tea.KeyMsg
	activity chan struct{}
	events   chan Event
	wg       sync.WaitGroup
}

// New starts the input forwarder and the ticker.
func New(tickRate time.Duration) *Source {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Source{
		tickRate: tickRate,
		ctx:      ctx,
		cancel:   cancel,
		keys:     make(chan tea.KeyMsg, 256),
		activity: make(chan struct{}, 1),
		events:   make(chan Event, 16),
	}

	s.wg.Add(2)
	go s.forwardInput()
	go s.tick()

	go func() {
		s.wg.Wait()
		close(s.events)
		events.Source.Closed()
	}()

	events.Source.Start(tickRate)
	return s
}

// TickRate reports the interval between idle ticks.
func (s *Source) TickRate() time.Duration {
	return s.tickRate
}

// Input hands a keypress to the forwarder. It returns false once the source
// has been stopped.
func (s *Source) Input(key tea.KeyMsg) bool {
	select {
	case <-s.ctx.Done():
		return false
	default:
	}
	select {
	case <-s.ctx.Done():
		return false
	case s.keys <- key:
		return true
	}
}

// Next blocks until an event is available and returns it. Events are returned
// in the order they were enqueued.
func (s *Source) Next() (Event, error) {
	evt, ok := <-s.events
	if !ok {
		return Event{}, ErrChannelClosed
	}
	return evt, nil
}

// Stop cancels both producers. Events already queued stay readable; use Wait
// to block until the channel is closed.
func (s *Source) Stop() {
	s.cancel()
}

// Wait blocks until both producers have exited.
func (s *Source) Wait() {
	s.wg.Wait()
}

func (s *Source) emit(evt Event) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.events <- evt:
		return true
	}
}

func (s *Source) forwardInput() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case key := <-s.keys:
			if !s.emit(Event{Kind: KindInput, Key: key}) {
				return
			}
			select {
			case s.activity <- struct{}{}:
			default:
			}
		}
	}
}

// tick emits a Tick each time a full interval passes without input.
func (s *Source) tick() {
	defer s.wg.Done()
	timer := time.NewTimer(s.tickRate)
	defer timer.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.activity:
			timer.Reset(s.tickRate)
		case <-timer.C:
			if !s.emit(Event{Kind: KindTick}) {
				return
			}
			timer.Reset(s.tickRate)
		}
	}
}
