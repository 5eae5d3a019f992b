// Package services implements the postboard mutation operations. Each one
// validates its input, mutates the owned state, persists it and then
// publishes the change so subscribers can re-render.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/postboard/internal/identity"
	"github.com/dmitrijs2005/postboard/internal/logging"
	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
	"github.com/dmitrijs2005/postboard/internal/store"
	"github.com/google/uuid"
)

// TimeLayout formats updatedAt and createdAt stamps.
const TimeLayout = "2006-01-02 15:04:05"

// Notifier shows messages to the user. Alert reports a rejected action,
// Confirm a completed one.
type Notifier interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string)
}

type nopNotifier struct{}

func (nopNotifier) Alert(context.Context, string)   {}
func (nopNotifier) Confirm(context.Context, string) {}

// Service owns the domain state. It is not safe for concurrent use; the
// CLI drives it from a single goroutine.
type Service struct {
	st          *state.State
	store       store.Store
	creds       identity.Credentials
	notifier    Notifier
	log         logging.Logger
	now         func() time.Time
	newID       func() string
	subscribers []func(ctx context.Context)
}

type Option func(*Service)

func WithCredentials(c identity.Credentials) Option {
	return func(s *Service) { s.creds = c }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService binds the operations to st and its durable mirror.
func NewService(st *state.State, s store.Store, opts ...Option) *Service {
	svc := &Service{
		st:       st,
		store:    s,
		creds:    identity.Plaintext{},
		notifier: nopNotifier{},
		log:      logging.Discard(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// State exposes the owned state to the render pipeline.
func (s *Service) State() *state.State {
	return s.st
}

// SessionUser is identity.SessionUser over the owned state.
func (s *Service) SessionUser() *models.User {
	return identity.SessionUser(s.st)
}

// Subscribe registers fn to run after every state change.
func (s *Service) Subscribe(fn func(ctx context.Context)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) publish(ctx context.Context) {
	for _, fn := range s.subscribers {
		fn(ctx)
	}
}

// Refresh publishes without changing anything.
func (s *Service) Refresh(ctx context.Context) {
	s.publish(ctx)
}

func (s *Service) stamp() string {
	return s.now().Format(TimeLayout)
}

// commit persists the state once and publishes. A persist failure leaves
// the in-memory mutation applied; the next successful commit rewrites it.
func (s *Service) commit(ctx context.Context, op string, args ...any) error {
	err := s.st.Persist(ctx, s.store)
	if err != nil {
		s.log.Error(ctx, "persist failed", append([]any{"op", op, "error", err}, args...)...)
		err = fmt.Errorf("%s: %w", op, err)
	} else {
		s.log.Info(ctx, "state committed", append([]any{"op", op}, args...)...)
	}
	s.publish(ctx)
	return err
}
