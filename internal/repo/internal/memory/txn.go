package memory

import (
	"context"

	"github.com/nikmy/meowmatch/pkg/txn"
)

type sessionKey struct{}

func sessionFrom(ctx context.Context) *session {
	s, _ := ctx.Value(sessionKey{}).(*session)
	return s
}

func (c *Client) NewSession() (txn.Session, error) {
	return &session{client: c}, nil
}

type session struct {
	client  *Client
	working *state
}

func (s *session) BindContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// Txn ignores the requested model: writers are serialized, which is
// stronger than anything that can be asked for.
func (s *session) Txn(txn.ConsistencyModel, txn.IsolationLevel) txn.Txn {
	return s
}

func (s *session) Start(ctx context.Context) error {
	err := s.client.acquire(ctx)
	if err != nil {
		return err
	}

	s.client.mu.RLock()
	s.working = s.client.current.clone()
	s.client.mu.RUnlock()
	return nil
}

func (s *session) Commit(context.Context) error {
	if s.working == nil {
		return nil
	}

	s.client.mu.Lock()
	s.client.current = s.working
	s.client.mu.Unlock()

	s.working = nil
	s.client.release()
	return nil
}

func (s *session) Abort(context.Context) error {
	if s.working == nil {
		return nil
	}

	s.working = nil
	s.client.release()
	return nil
}

func (s *session) Close(ctx context.Context) {
	_ = s.Abort(ctx)
}
