package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntry_Matches(t *testing.T) {
	e := &LedgerEntry{
		Kind: LedgerDonation, Ref: "DON_001", From: "Priya Reddy",
		Target: "Pathology", AmountMinor: 1_000_000,
	}

	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("priya"))
	assert.True(t, e.Matches("PATHO"))
	assert.True(t, e.Matches("don_00"))
	assert.True(t, e.Matches("10,000"))
	assert.False(t, e.Matches("cardiology"))
}

func TestLedgerEntry_MatchesStudent(t *testing.T) {
	e := &LedgerEntry{Kind: LedgerFeePayment, Ref: "FEE_001", Student: "Rahul Sharma (1RV20CS001)"}
	assert.True(t, e.Matches("1rv20cs"))
}

func TestFilterEntries_PreservesOrder(t *testing.T) {
	entries := []*LedgerEntry{
		{Ref: "A", From: "Amit"},
		{Ref: "B", From: "Priya"},
		{Ref: "C", From: "Amita"},
	}

	got := FilterEntries(entries, "amit")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Ref)
	assert.Equal(t, "C", got[1].Ref)
}

func TestPrependRecent_CapsAtLimit(t *testing.T) {
	var recent []*LedgerEntry
	for i := 0; i < RecentLimit; i++ {
		recent = append(recent, &LedgerEntry{Ref: fmt.Sprintf("OLD_%d", i)})
	}

	got := PrependRecent(recent, &LedgerEntry{Ref: "NEW"})

	require.Len(t, got, RecentLimit)
	assert.Equal(t, "NEW", got[0].Ref)
	assert.Equal(t, "OLD_0", got[1].Ref)
	assert.Equal(t, fmt.Sprintf("OLD_%d", RecentLimit-2), got[RecentLimit-1].Ref)
	assert.Len(t, recent, RecentLimit, "input must not be modified")
	assert.Equal(t, "OLD_0", recent[0].Ref)
}

func TestAnomaly_Title(t *testing.T) {
	a := Anomaly{NodeName: "Pathology", ParentName: "Hospital B", OverBy: 25}
	assert.Equal(t, "Overspend: Pathology — Hospital B exceeded its allocation by 25%", a.Title())
}
