package notification

import (
	"context"
	"sync"
)

type TestNotificationSink struct {
	Created     []CreateInput
	CreateError error
	nextID      ID
	lock        sync.Mutex
}

func NewTestNotificationSink() *TestNotificationSink {
	return &TestNotificationSink{}
}

func (s *TestNotificationSink) Create(ctx context.Context, input CreateInput) (ID, error) {
	if s.CreateError != nil {
		return 0, s.CreateError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.nextID++
	s.Created = append(s.Created, input)
	return s.nextID, nil
}

type TestEventPublisher struct {
	Published []Event
	Error     error
	lock      sync.Mutex
}

func NewTestEventPublisher() *TestEventPublisher {
	return &TestEventPublisher{}
}

func (p *TestEventPublisher) PublishNotificationCreated(ctx context.Context, event Event) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}
