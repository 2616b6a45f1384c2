package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, price int64, qty int) CartItem {
	return CartItem{ProductID: id, Name: "item-" + id, Price: price, Quantity: qty}
}

func TestLedger_Add_MergesRepeatedProduct(t *testing.T) {
	ledger := &Ledger{}

	ledger.Add(line("p1", 10000, 2))
	ledger.Add(line("p1", 10000, 3))

	require.Len(t, ledger.Items, 1)
	assert.Equal(t, 5, ledger.Items[0].Quantity)
	assert.Equal(t, int64(50000), ledger.TotalPrice())
}

func TestLedger_Add_QuantitySumsAcrossManyCalls(t *testing.T) {
	ledger := &Ledger{}

	quantities := []int{1, 4, 2, 8, 5}
	sum := 0
	for _, q := range quantities {
		ledger.Add(line("p1", 2500, q))
		sum += q
	}
	ledger.Add(line("p2", 100, 1))

	require.Len(t, ledger.Items, 2)
	assert.Equal(t, sum, ledger.Items[0].Quantity)
}

func TestLedger_Add_IgnoresNonPositiveQuantity(t *testing.T) {
	ledger := &Ledger{}

	ledger.Add(line("p1", 100, 0))
	ledger.Add(line("p2", 100, -3))

	assert.Empty(t, ledger.Items)
}

func TestLedger_SetQuantity_ZeroRemovesLine(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &Ledger{}
			ledger.Add(line("p1", 100, 2))

			ledger.SetQuantity("p1", tt.quantity)

			assert.Empty(t, ledger.Items)
		})
	}
}

func TestLedger_SetQuantity_ReplacesQuantity(t *testing.T) {
	ledger := &Ledger{}
	ledger.Add(line("p1", 100, 2))

	ledger.SetQuantity("p1", 7)

	require.Len(t, ledger.Items, 1)
	assert.Equal(t, 7, ledger.Items[0].Quantity)
}

func TestLedger_Remove_DeletesLineRegardlessOfQuantity(t *testing.T) {
	ledger := &Ledger{}
	ledger.Add(line("p1", 100, 9))
	ledger.Add(line("p2", 200, 1))

	ledger.Remove("p1")

	require.Len(t, ledger.Items, 1)
	assert.Equal(t, "p2", ledger.Items[0].ProductID)
}

func TestLedger_TotalsHoldAfterInterleavedMutations(t *testing.T) {
	ledger := &Ledger{}

	ledger.Add(line("p1", 10000, 2))
	ledger.Add(line("p2", 2500, 1))
	ledger.SetQuantity("p2", 4)
	ledger.Add(line("p1", 10000, 3))
	ledger.Remove("p2")
	ledger.Add(line("p3", 999, 2))
	ledger.SetQuantity("p3", 0)

	var wantPrice int64
	wantItems := 0
	for _, item := range ledger.Items {
		wantPrice += item.Price * int64(item.Quantity)
		wantItems += item.Quantity
	}

	assert.Equal(t, wantPrice, ledger.TotalPrice())
	assert.Equal(t, wantItems, ledger.TotalItems())
	assert.Equal(t, int64(500000), ledger.TotalPrice())
	assert.Equal(t, 5, ledger.TotalItems())
}

func TestLedger_Clear(t *testing.T) {
	ledger := &Ledger{}
	ledger.Add(line("p1", 100, 2))

	ledger.Clear()

	assert.Empty(t, ledger.Items)
	assert.Zero(t, ledger.TotalItems())
	assert.Zero(t, ledger.TotalPrice())
}
