package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planilla.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PLANILLA_CONFIG", "")
	p, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "SMAJ-LP-10-2025", p.Master.ContractNumber)
	assert.Equal(t, date.New(2025, time.July, 3), p.Master.StartDate)
	assert.True(t, p.Master.OriginalAmount.Equal(planilla.M(21360803.45, "BOB")))
	assert.Equal(t, date.New(2025, time.August, 1), p.Origin)
	require.Len(t, p.Modifications, 1)
	assert.Equal(t, planilla.Amendment, p.Modifications[0].Type)
	assert.Len(t, p.Milestones, 3)

	cfg := planilla.Resolve(p.Master, p.Modifications)
	assert.True(t, cfg.TotalAmount.Equal(planilla.M(23484585.53, "BOB")), "total = %v", cfg.TotalAmount)
	assert.Equal(t, 380, cfg.TotalDays)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
sheet: https://docs.google.com/spreadsheets/d/e/xyz/pub?output=csv
origin: 2025-07
currency: USD
contract:
  name: Puente
  start_date: 2025-07-01
  original_duration: 120
  original_amount: 1000000
  advance_amount: 100000
  advance_percent: 10
modifications:
  - id: OC-1
    name: Orden de cambio 1
    type: oc
    days: 15
    amount: 5000.5
    active: true
penalties:
  - period: 2
    amount: 100
    reason: atraso
  - period: 2
    amount: 250
    reason: atraso reiterado
`)
	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/e/xyz/pub?output=csv", p.Sheet)
	assert.Equal(t, date.New(2025, time.July, 1), p.Origin)
	assert.Equal(t, "Puente", p.Master.Name)
	assert.Equal(t, "SMAJ-LP-10-2025", p.Master.ContractNumber, "unset values keep their default")
	assert.Equal(t, planilla.Percent(10), p.Master.AdvancePercent)
	require.Len(t, p.Modifications, 1)
	assert.Equal(t, planilla.ChangeOrder, p.Modifications[0].Type)
	assert.True(t, p.Modifications[0].Amount.Equal(planilla.M(5000.5, "USD")))

	// last write wins
	require.Len(t, p.Penalties, 1)
	assert.Equal(t, "atraso reiterado", p.Penalties[0].Reason)

	in := p.Input(nil)
	assert.Equal(t, p.Origin, in.Origin)
	assert.Equal(t, p.Penalties, in.Penalties)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PLANILLA_SHEET_URL", "https://example.com/sheet.csv")
	t.Setenv("PLANILLA_ADDR", ":9090")
	t.Setenv("PLANILLA_ORIGIN", "2025-09")
	t.Setenv("PLANILLA_CONFIG", writeFile(t, "contract:\n  name: Desde el entorno\n"))

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/sheet.csv", p.Sheet)
	assert.Equal(t, ":9090", p.Addr)
	assert.Equal(t, date.New(2025, time.September, 1), p.Origin)
	assert.Equal(t, "Desde el entorno", p.Master.Name)
}

func TestLoad_Origin(t *testing.T) {
	testCases := []struct {
		origin string
		want   date.Date
	}{
		{"2025-07", date.New(2025, time.July, 1)},
		{"2025-07-01", date.New(2025, time.July, 1)},
		{"2025-07-15", date.New(2025, time.July, 1)},
		{"'2025-10'", date.New(2025, time.October, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.origin, func(t *testing.T) {
			p, err := Load(writeFile(t, "origin: "+tc.origin+"\n"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Origin)
		})
	}

	_, err := Load(writeFile(t, "origin: 2025-13\n"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"bad yaml", "contract: [\n"},
		{"bad date", "contract:\n  start_date: someday\n"},
		{"bad type", "modifications:\n  - id: X\n    name: X\n    type: ZZ\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
