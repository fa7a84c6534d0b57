package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/networth"
	"github.com/etnz/networth/config"
	"github.com/etnz/networth/date"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile writes content to the path made of name under dir.
func writeFile(t *testing.T, dir, content string, name ...string) {
	t.Helper()
	path := filepath.Join(append([]string{dir}, name...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// sampleStore returns a store with two portfolios, only the second one has
// records.
func sampleStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, `{"success": true, "data": {"portfolios": [
		{"id": 1, "name": "Empty"},
		{"id": 2, "name": "Main", "description": "long term"}
	]}}`, PortfoliosFile)
	writeFile(t, dir, `{"success": true, "data": {"transactions": [
		{"id": 1, "asset_type": "STOCK", "asset_id": 5, "asset_symbol": "CRDB", "transaction_type": "BUY",
		 "quantity": 100, "price": 500, "total_amount": 50000, "transaction_date": "2024-01-10"}
	]}}`, "2", TransactionsFile)
	writeFile(t, dir, `{"success": true, "data": {"positions": [
		{"asset_type": "STOCK", "asset_id": 5, "asset_symbol": "CRDB", "quantity": 100,
		 "current_value": 60000, "total_invested": 50000, "total_dividends_received": 2500}
	]}}`, "2", PositionsFile)
	writeFile(t, dir, `{"success": true, "data": {"current_value": "60000", "change_value": 1000, "change_percentage": 1.7}}`, "2", PerformanceFile)
	return &Store{Dir: dir}
}

func newTestApp(store *Store) *app {
	return &app{
		cfg:       &config.Config{Timeframe: "1M"},
		log:       zerolog.Nop(),
		store:     store,
		dashboard: networth.NewDashboard(zerolog.Nop()),
	}
}

func TestStoreInputs(t *testing.T) {
	s := sampleStore(t)
	ctx := context.Background()

	portfolios, err := s.Portfolios(ctx)
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "2", portfolios[1].ID)

	in, err := s.Inputs(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, in.Transactions, 1)
	assert.Len(t, in.Positions, 1)
	require.NotNil(t, in.Performance)
	assert.True(t, in.Performance.Success)
	assert.Empty(t, in.Calendar, "missing file")

	in, err = s.Inputs(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, networth.Inputs{}, in)

	in, err = s.Inputs(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, networth.Inputs{}, in)
}

func TestStoreMissingFolder(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	s := &Store{Dir: filepath.Join(t.TempDir(), "nowhere")}
	portfolios, err := s.Portfolios(ctx)
	require.NoError(t, err)
	assert.Empty(t, portfolios)
	assert.Contains(t, buf.String(), PortfoliosFile)
}

func TestStoreCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, `{"data":`, "3", PositionsFile)
	s := &Store{Dir: dir}

	_, err := s.Inputs(context.Background(), "3")
	assert.ErrorContains(t, err, PositionsFile)
}

func TestStoreState(t *testing.T) {
	s := &Store{Dir: filepath.Join(t.TempDir(), "state")}

	state, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, networth.State{}, state)

	want := networth.State{SelectedID: "7", Timeframe: date.YearToDate}
	require.NoError(t, s.SaveState(want))
	state, err = s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, want, state)

	writeFile(t, s.Dir, "not json", StateFile)
	_, err = s.LoadState()
	assert.Error(t, err)
}

func TestViewModelAutoSelects(t *testing.T) {
	s := sampleStore(t)
	a := newTestApp(s)
	ctx := context.Background()

	vm, err := a.viewModel(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "1", vm.SelectedID, "the first portfolio is selected")
	assert.Equal(t, date.OneMonth, vm.Timeframe)
	assert.Empty(t, vm.Transactions)

	state, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, "1", state.SelectedID, "the auto selection is saved")
	assert.Empty(t, state.Timeframe, "the timeframe still follows the configuration")
}

func TestViewModelSelected(t *testing.T) {
	s := sampleStore(t)
	require.NoError(t, s.SaveState(networth.State{SelectedID: "2", Timeframe: date.OneYear}))
	a := newTestApp(s)

	vm, err := a.viewModel(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2", vm.SelectedID)
	require.NotNil(t, vm.Selected)
	assert.Equal(t, "Main", vm.Selected.Name)
	assert.Equal(t, date.OneYear, vm.Timeframe)
	assert.False(t, vm.Performance.IsPending)
	assert.Equal(t, networth.FromPositions, vm.AllocationSource)
	assert.True(t, networth.M(60000, "").Equal(vm.TotalPortfolioValue))
	require.Len(t, vm.Holdings, 1)

	vm, err = a.viewModel(context.Background(), "ytd")
	require.NoError(t, err)
	assert.Equal(t, date.YearToDate, vm.Timeframe, "the flag overrides the saved timeframe")

	_, err = a.viewModel(context.Background(), "5Y")
	assert.ErrorIs(t, err, date.ErrUnknownTimeframe)

	state, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, date.OneYear, state.Timeframe, "a one time timeframe is not saved")
}

func TestViewModelIgnoresInvalidSavedTimeframe(t *testing.T) {
	s := sampleStore(t)
	require.NoError(t, s.SaveState(networth.State{SelectedID: "2", Timeframe: "5Y"}))

	vm, err := newTestApp(s).viewModel(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, date.DefaultTimeframe, vm.Timeframe)
}

func TestSelectState(t *testing.T) {
	s := sampleStore(t)
	ctx := context.Background()

	state, err := selectState(ctx, s, "2", "")
	require.NoError(t, err)
	assert.Equal(t, networth.State{SelectedID: "2"}, state)

	state, err = selectState(ctx, s, "", "1y")
	require.NoError(t, err)
	assert.Equal(t, networth.State{SelectedID: "2", Timeframe: date.OneYear}, state)

	_, err = selectState(ctx, s, "42", "")
	assert.ErrorIs(t, err, networth.ErrPortfolioNotFound)

	_, err = selectState(ctx, s, "", "forever")
	assert.ErrorIs(t, err, date.ErrUnknownTimeframe)

	saved, err := s.LoadState()
	require.NoError(t, err)
	assert.Equal(t, networth.State{SelectedID: "2", Timeframe: date.OneYear}, saved, "failed selections are not saved")
}
