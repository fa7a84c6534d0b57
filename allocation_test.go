package networth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(typ AssetType, id, name string, value float64) Position {
	return Position{AssetType: typ, AssetID: id, AssetName: name, CurrentValue: M(value, "")}
}

func TestComputeAllocationFromPositions(t *testing.T) {
	positions := []Position{
		position(Stock, "1", "A", 300),
		position(Stock, "2", "B", 700),
	}
	got := ComputeAllocation(M(1000, ""), positions, nil)
	require.Len(t, got, 2)

	assert.Equal(t, "A", got[0].Name)
	assert.True(t, Percent(30).Equal(got[0].Value), "got %v", got[0].Value)
	assert.True(t, M(300, "").Equal(got[0].AbsoluteValue))
	assert.Equal(t, DefaultPalette[0], got[0].Color)

	assert.Equal(t, "B", got[1].Name)
	assert.True(t, Percent(70).Equal(got[1].Value), "got %v", got[1].Value)
	assert.Equal(t, DefaultPalette[1], got[1].Color)
}

func TestComputeAllocationZeroTotal(t *testing.T) {
	positions := []Position{position(Stock, "1", "A", 300)}
	txs := []Transaction{buy(Stock, "1", 1, 100)}

	got := ComputeAllocation(Money{}, positions, txs)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeAllocationPositionsTakePrecedence(t *testing.T) {
	positions := []Position{position(Stock, "1", "From positions", 500)}
	txs := []Transaction{
		{AssetType: Bond, AssetID: "9", AssetName: "From transactions", Type: Buy, Quantity: Q(1), TotalAmount: M(500, "")},
	}
	got := ComputeAllocation(M(1000, ""), positions, txs)
	require.Len(t, got, 1)
	assert.Equal(t, "From positions", got[0].Name)
}

func TestComputeAllocationSkipsWorthlessPositions(t *testing.T) {
	positions := []Position{
		position(Stock, "1", "Zero", 0),
		position(Stock, "2", "Negative", -10),
		position(Stock, "3", "Kept", 10),
	}
	got := ComputeAllocation(M(100, ""), positions, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Kept", got[0].Name)
	// colors are given after filtering.
	assert.Equal(t, DefaultPalette[0], got[0].Color)
}

func TestComputeAllocationFromTransactions(t *testing.T) {
	txs := []Transaction{
		{AssetType: Stock, AssetID: "1", AssetName: "CRDB", Type: Buy, Quantity: Q(10), TotalAmount: M(1000, "")},
		{AssetType: Stock, AssetID: "1", Type: Sell, Quantity: Q(4), TotalAmount: M(500, "")},
		{AssetType: Bond, AssetID: "2", Type: Buy, Quantity: Q(1), TotalAmount: M(400, "")},
		{AssetType: UTT, AssetID: "3", Type: Buy, Quantity: Q(1), TotalAmount: M(100, "")},
		{AssetType: UTT, AssetID: "3", Type: Sell, Quantity: Q(1), TotalAmount: M(120, "")},
	}
	got := ComputeAllocation(M(2000, ""), nil, txs)
	require.Len(t, got, 2)

	assert.Equal(t, "CRDB", got[0].Name)
	assert.True(t, M(600, "").Equal(got[0].AbsoluteValue))
	assert.True(t, Percent(30).Equal(got[0].Value))

	assert.Equal(t, "BOND", got[1].Name)
	assert.True(t, Percent(20).Equal(got[1].Value))
	assert.Equal(t, DefaultPalette[1], got[1].Color)
}

func TestComputeAllocationNoData(t *testing.T) {
	got := ComputeAllocation(M(1000, ""), nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllocatorPaletteCycles(t *testing.T) {
	var positions []Position
	for i := range 8 {
		positions = append(positions, position(Stock, string(rune('a'+i)), "", 10))
	}
	got := ComputeAllocation(M(80, ""), positions, nil)
	require.Len(t, got, 8)
	for i, e := range got {
		assert.Equal(t, DefaultPalette[i%len(DefaultPalette)], e.Color)
	}
	assert.Equal(t, got[0].Color, got[6].Color)

	custom := Allocator{Palette: []string{"red", "blue"}}
	got = custom.Compute(M(80, ""), positions[:3], nil)
	assert.Equal(t, []string{"red", "blue", "red"}, []string{got[0].Color, got[1].Color, got[2].Color})
}

func TestAllocatorStableColors(t *testing.T) {
	a := Allocator{StableColors: true}
	p1 := position(Stock, "1", "A", 100)
	p2 := position(Bond, "2", "B", 100)

	first := a.Compute(M(200, ""), []Position{p1, p2}, nil)
	second := a.Compute(M(100, ""), []Position{p2}, nil)
	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, first[1].Color, second[0].Color, "an asset keeps its color whatever its rank")
	assert.Contains(t, DefaultPalette, first[0].Color)
}

func TestAllocationEntryJSON(t *testing.T) {
	e := AllocationEntry{Name: "CRDB", Value: 12.5, AbsoluteValue: M(125, ""), Color: "#3B82F6"}
	got, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"CRDB","value":12.5,"absoluteValue":125,"color":"#3B82F6"}`, string(got))
}

func TestPositionName(t *testing.T) {
	assert.Equal(t, "Name", Position{AssetName: "Name", AssetSymbol: "SYM"}.Name())
	assert.Equal(t, "SYM", Position{AssetSymbol: "SYM"}.Name())
	assert.Equal(t, "STOCK ID 4", Position{AssetType: Stock, AssetID: "4"}.Name())
}
