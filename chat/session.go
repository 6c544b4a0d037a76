// Package chat holds the in-memory conversation shown by the front-ends and
// the submit/delete state machine that mutates it.
package chat

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/llmgate/promptcheck/models"
	"github.com/llmgate/promptcheck/utils"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNotSubmitting    = errors.New("no submission in progress")
)

// Checker sends a prompt to the improvement service and returns its raw reply.
type Checker interface {
	Check(ctx context.Context, content string) (string, error)
}

type CheckerFunc func(ctx context.Context, content string) (string, error)

func (f CheckerFunc) Check(ctx context.Context, content string) (string, error) {
	return f(ctx, content)
}

// Session is safe for concurrent use. Only one submission runs at a time;
// Delete and Clear are allowed while it is in flight.
type Session struct {
	checker Checker

	mu       sync.Mutex
	messages []models.Message
	state    State
	draft    string
	pending  string
	inFlight bool
	events   []Event
	seq      uint64
	lastErr  error
}

func NewSession(checker Checker) *Session {
	return &Session{
		checker: checker,
		state:   StateIdle,
	}
}

// Submit appends the user message, asks the checker and appends the decoded
// revisions. The user message stays whatever the outcome.
func (s *Session) Submit(ctx context.Context, input string) error {
	if err := s.Begin(input); err != nil {
		return err
	}
	return s.Complete(ctx)
}

// Begin is the synchronous half of Submit: it validates input, appends the
// user message and moves the session to StateSubmitting.
func (s *Session) Begin(input string) error {
	if utils.IsBlank(input) {
		return ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmitInProgress
	}

	s.state = StateSubmitting
	s.draft = input
	s.pending = input
	s.lastErr = nil
	s.messages = append(s.messages, models.NewUserMessage(input))
	s.record(Event{Kind: EventAppendUser, Index: len(s.messages) - 1, Count: 1, Scroll: true})
	return nil
}

// Complete sends the input recorded by Begin to the checker and applies its
// result. Each Begin is completed at most once; the checker is called without
// holding the lock.
func (s *Session) Complete(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateSubmitting || s.inFlight {
		s.mu.Unlock()
		return ErrNotSubmitting
	}
	s.inFlight = true
	input := s.pending
	s.mu.Unlock()

	var revisions []models.Message
	response, err := s.checker.Check(ctx, input)
	if err == nil {
		revisions, err = utils.ParseRevisions(response)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.inFlight = false
	s.pending = ""
	if err != nil {
		log.Printf("Error: %v", err)
		s.lastErr = err
		return err
	}

	start := len(s.messages)
	s.messages = append(s.messages, revisions...)
	s.draft = ""
	s.record(Event{Kind: EventAppendRevisions, Index: start, Count: len(revisions), Scroll: true})
	return nil
}

// Delete removes the message at index. It reports false, and changes
// nothing, when index is out of range.
func (s *Session) Delete(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.messages) {
		return false
	}

	s.messages = append(s.messages[:index:index], s.messages[index+1:]...)
	s.record(Event{Kind: EventDelete, Index: index, Count: 1})
	return true
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.messages)
	s.messages = nil
	s.record(Event{Kind: EventClear, Count: count})
}

func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Submitting() bool {
	return s.State() == StateSubmitting
}

// Draft is the text of the last submission that has not succeeded yet.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// LastError is the failure of the most recent submission, nil once a new one
// begins.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Events returns the most recent events, oldest first.
func (s *Session) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Session) LastEvent() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) == 0 {
		return Event{}, false
	}
	return s.events[len(s.events)-1], true
}

// ShouldScroll reports whether the latest change to the list was an append.
func (s *Session) ShouldScroll() bool {
	event, ok := s.LastEvent()
	return ok && event.Scroll
}

func (s *Session) record(event Event) {
	s.seq++
	event.Seq = s.seq
	s.events = append(s.events, event)
	if len(s.events) > maxEvents {
		s.events = append(s.events[:0:0], s.events[len(s.events)-maxEvents:]...)
	}
}
