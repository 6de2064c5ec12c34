package wallet

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMockProvider_SendReturnsHash(t *testing.T) {
	defer goleak.VerifyNone(t)

	fixed := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	p := NewMockProvider(
		WithDelay(0),
		WithEntropy(bytes.NewReader(bytes.Repeat([]byte{0xab}, 32))),
		WithClock(func() time.Time { return fixed }),
	)

	r, err := p.Send(context.Background(), Request{From: "0xA", To: "Pathology", AmountMinor: 1_000_000})
	require.NoError(t, err)
	assert.Equal(t, "0x"+strings.Repeat("ab", 32), r.Hash)
	assert.Len(t, r.Hash, 66)
	assert.Equal(t, "0xabababab...", r.ShortHash())
	assert.Equal(t, "0xA", r.From)
	assert.Equal(t, "Pathology", r.To)
	assert.Equal(t, int64(1_000_000), r.AmountMinor)
	assert.Equal(t, fixed, r.SentAt)
}

func TestMockProvider_RandomHashesDiffer(t *testing.T) {
	p := NewMockProvider(WithDelay(0))
	a, err := p.Send(context.Background(), Request{})
	require.NoError(t, err)
	b, err := p.Send(context.Background(), Request{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestMockProvider_SendHonoursCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewMockProvider(WithDelay(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Send(ctx, Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestMockProvider_EntropyFailure(t *testing.T) {
	p := NewMockProvider(WithDelay(0), WithEntropy(bytes.NewReader(nil)))
	_, err := p.Send(context.Background(), Request{})
	assert.ErrorContains(t, err, "generating transaction hash")
}

func TestMockProvider_AccountsAreCopies(t *testing.T) {
	p := NewMockProvider(WithAccounts("0xA", "0xB"))
	got, err := p.Accounts(context.Background())
	require.NoError(t, err)
	got[0] = "mutated"

	again, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xA", "0xB"}, again)
}

func TestMockProvider_SubscribeKeepsLatest(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := NewMockProvider()
	updates, stop := p.Subscribe()

	p.SetAccounts("0x1")
	p.SetAccounts("0x2")
	assert.Equal(t, []string{"0x2"}, <-updates)

	stop()
	stop()
	_, ok := <-updates
	assert.False(t, ok)

	// No subscribers left; must not block.
	p.SetAccounts()
}
