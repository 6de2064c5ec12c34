package wallet

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultDelay is how long the mock provider takes to confirm a transfer.
const DefaultDelay = 2 * time.Second

// MockProvider is an in-process Provider for demos and tests. Transfers
// wait for the configured delay and return a random 0x-prefixed hash.
type MockProvider struct {
	mu       sync.Mutex
	accounts []string
	delay    time.Duration
	entropy  io.Reader
	now      func() time.Time
	subs     map[int]chan []string
	nextSub  int
}

type MockOption func(*MockProvider)

func WithAccounts(accounts ...string) MockOption {
	return func(p *MockProvider) {
		p.accounts = append([]string(nil), accounts...)
	}
}

func WithDelay(d time.Duration) MockOption {
	return func(p *MockProvider) {
		p.delay = d
	}
}

// WithEntropy replaces the random source used for transaction hashes.
func WithEntropy(r io.Reader) MockOption {
	return func(p *MockProvider) {
		p.entropy = r
	}
}

func WithClock(now func() time.Time) MockOption {
	return func(p *MockProvider) {
		p.now = now
	}
}

func NewMockProvider(opts ...MockOption) *MockProvider {
	p := &MockProvider{
		delay:   DefaultDelay,
		entropy: rand.Reader,
		now:     time.Now,
		subs:    make(map[int]chan []string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *MockProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	return p.Accounts(ctx)
}

func (p *MockProvider) Accounts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.accounts...), nil
}

func (p *MockProvider) Send(ctx context.Context, req Request) (*Receipt, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := p.txHash()
	if err != nil {
		return nil, err
	}
	return &Receipt{
		Hash:        hash,
		From:        req.From,
		To:          req.To,
		AmountMinor: req.AmountMinor,
		SentAt:      p.now().UTC(),
	}, nil
}

func (p *MockProvider) txHash() (string, error) {
	buf := make([]byte, 32)
	p.mu.Lock()
	_, err := io.ReadFull(p.entropy, buf)
	p.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("generating transaction hash: %w", err)
	}
	return "0x" + hex.EncodeToString(buf), nil
}

func (p *MockProvider) Subscribe() (<-chan []string, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	ch := make(chan []string, 1)
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
}

// SetAccounts replaces the granted accounts and notifies subscribers.
// A slow subscriber only ever sees the latest list.
func (p *MockProvider) SetAccounts(accounts ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts = append([]string(nil), accounts...)
	for _, ch := range p.subs {
		update := append([]string(nil), accounts...)
		select {
		case ch <- update:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- update
		}
	}
}
