package wallet

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// State is a snapshot of a Session.
type State struct {
	Connected bool
	Account   string
	Loading   bool
	Err       string
}

// Session tracks the connection to a Provider. It is safe for concurrent
// use; provider calls run without holding the lock so State can report
// Loading while they are in flight.
type Session struct {
	provider Provider
	log      *zap.Logger

	mu    sync.Mutex
	state State
}

// NewSession wraps provider. A nil provider yields a session whose
// Connect always fails with ErrProviderUnavailable.
func NewSession(provider Provider, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{provider: provider, log: log.Named("wallet")}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore reconnects silently when the provider already granted an
// account. Failures are logged and leave the session disconnected.
func (s *Session) Restore(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		s.log.Warn("checking existing wallet connection", zap.Error(err))
		return err
	}
	if len(accounts) > 0 {
		s.update(func(st *State) {
			st.Connected = true
			st.Account = accounts[0]
		})
		s.log.Debug("wallet connection restored", zap.String("account", accounts[0]))
	}
	return nil
}

// Connect requests account access and returns the primary account.
func (s *Session) Connect(ctx context.Context) (string, error) {
	s.update(func(st *State) {
		st.Loading = true
		st.Err = ""
	})

	account, err := s.requestAccount(ctx)
	if err != nil {
		s.update(func(st *State) {
			st.Loading = false
			st.Err = err.Error()
		})
		s.log.Warn("wallet connect failed", zap.Error(err))
		return "", err
	}

	s.update(func(st *State) {
		st.Connected = true
		st.Account = account
		st.Loading = false
	})
	s.log.Info("wallet connected", zap.String("account", account))
	return account, nil
}

func (s *Session) requestAccount(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", ErrProviderUnavailable
	}
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	return accounts[0], nil
}

// Disconnect resets the session to its initial state.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
	s.log.Info("wallet disconnected")
}

// Send transfers amountMinor to `to` from the connected account.
func (s *Session) Send(ctx context.Context, amountMinor int64, to string) (*Receipt, error) {
	s.mu.Lock()
	if !s.state.Connected {
		s.mu.Unlock()
		return nil, ErrNotConnected
	}
	from := s.state.Account
	s.state.Loading = true
	s.mu.Unlock()

	receipt, err := s.provider.Send(ctx, Request{From: from, To: to, AmountMinor: amountMinor})
	if err != nil {
		s.update(func(st *State) {
			st.Loading = false
			st.Err = err.Error()
		})
		s.log.Warn("wallet transfer failed", zap.String("to", to), zap.Error(err))
		return nil, err
	}

	s.update(func(st *State) { st.Loading = false })
	s.log.Info("wallet transfer sent",
		zap.String("to", to),
		zap.Int64("amount_minor", amountMinor),
		zap.String("hash", receipt.Hash),
	)
	return receipt, nil
}

// Watch applies account changes from the provider until ctx ends. An
// empty account list disconnects the session.
func (s *Session) Watch(ctx context.Context) error {
	if s.provider == nil {
		return ErrProviderUnavailable
	}
	updates, stop := s.provider.Subscribe()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case accounts, ok := <-updates:
			if !ok {
				return nil
			}
			s.applyAccounts(accounts)
		}
	}
}

func (s *Session) applyAccounts(accounts []string) {
	if len(accounts) == 0 {
		s.Disconnect()
		return
	}
	s.update(func(st *State) {
		st.Connected = true
		st.Account = accounts[0]
	})
	s.log.Info("wallet account changed", zap.String("account", accounts[0]))
}

func (s *Session) update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
