package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_WritesIndentedDocument(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExportService(env.treeService(), env.ledger, env.events).(*exportService)
	svc.now = func() time.Time { return time.Date(2025, 9, 13, 8, 30, 0, 0, time.UTC) }

	var buf bytes.Buffer
	doc, err := svc.Export(context.Background(), domain.DashboardGovernment, &buf)
	require.NoError(t, err)

	assert.Equal(t, 6, doc.TotalTransactions)
	assert.Equal(t, int64(350_004_000_000), doc.TotalAmountMinor)
	assert.Equal(t, "₹350.0 Cr", doc.TotalAmount)
	assert.Contains(t, buf.String(), "\n  \"fund\": {")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "government", decoded["dashboard"])
	assert.Equal(t, "2025-09-13T08:30:00Z", decoded["timestamp"])
	fund := decoded["fund"].(map[string]any)
	assert.Equal(t, "national-001", fund["id"])
	recent := decoded["recent"].([]any)
	require.Len(t, recent, 3)
	assert.Equal(t, "DON_001", recent[0].(map[string]any)["id"])
	assert.Len(t, decoded["transfers"], 3)

	assert.Equal(t, "export", env.events.last().Name)
}

func TestExport_InstitutionFees(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExportService(env.treeService(), env.ledger)

	var buf bytes.Buffer
	doc, err := svc.Export(context.Background(), domain.DashboardInstitution, &buf)
	require.NoError(t, err)
	require.Len(t, doc.Recent, 3)
	assert.Equal(t, domain.LedgerFeePayment, doc.Recent[0].Kind)
	assert.Equal(t, 5, doc.TotalTransactions)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "fundsflow_history_2025-09-13.json", ExportFileName(time.Date(2025, 9, 13, 23, 0, 0, 0, time.UTC)))
}

func TestAnomalyService_List(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAnomalyService(env.treeService())
	ctx := context.Background()

	gov, err := svc.List(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	require.Len(t, gov, 1)
	assert.Equal(t, "Overspend: Pathology — Hospital B exceeded its allocation by 25%", gov[0].Title())

	inst, err := svc.List(ctx, domain.DashboardInstitution)
	require.NoError(t, err)
	assert.Empty(t, inst)

	_, err = svc.List(ctx, "treasury")
	assert.ErrorIs(t, err, ErrUnknownDashboard)
}
