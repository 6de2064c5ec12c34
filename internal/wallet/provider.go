// Package wallet models the payment wallet the dashboards send contributions
// through: a Provider that owns accounts and signs transfers, and a Session
// that tracks whether the user is connected.
package wallet

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotConnected        = errors.New("wallet not connected")
	ErrNoAccounts          = errors.New("no accounts found")
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
)

// Request is a transfer to be signed by the provider.
type Request struct {
	From        string
	To          string
	AmountMinor int64
}

// Receipt confirms a sent transfer.
type Receipt struct {
	Hash        string
	From        string
	To          string
	AmountMinor int64
	SentAt      time.Time
}

// ShortHash returns the first ten characters of the hash followed by an
// ellipsis, the way confirmations display it.
func (r *Receipt) ShortHash() string {
	if len(r.Hash) <= 10 {
		return r.Hash
	}
	return r.Hash[:10] + "..."
}

// Provider is the wallet capability. Implementations must be safe for
// concurrent use.
type Provider interface {
	// RequestAccounts asks the user to grant access and returns the
	// granted accounts, primary first.
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts returns already-granted accounts without prompting.
	Accounts(ctx context.Context) ([]string, error)
	Send(ctx context.Context, req Request) (*Receipt, error)
	// Subscribe delivers the account list whenever it changes. The
	// returned func stops delivery and closes the channel.
	Subscribe() (<-chan []string, func())
}
