package ingredient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeMovementsProjectsOrderConsumption(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, -1, 0)
	orderDate := now.AddDate(0, 0, -2)

	ing := Ingredient{
		ID:           1,
		Name:         "Rice flour",
		Unit:         UnitKilogram,
		CurrentStock: 5,
		CostPerUnit:  18000,
		CreatedAt:    since.AddDate(0, 0, 1),
	}
	// Three servings of a dish that needs 0.2 kg each.
	exports := []exportRow{
		{
			IngredientID:   1,
			IngredientName: "Rice flour",
			Unit:           UnitKilogram,
			CostPerUnit:    18000,
			QuantityNeeded: 0.2,
			ItemQuantity:   3,
			OrderCode:      "DH-2026-001",
			OrderDate:      orderDate,
		},
	}

	movements := mergeMovements([]Ingredient{ing}, nil, exports, nil, since)

	require.Len(t, movements, 2)

	// Newest first: the order is more recent than the ingredient import.
	export := movements[0]
	assert.Equal(t, TransactionExport, export.Type)
	assert.InDelta(t, 0.6, export.Quantity, 1e-9)
	assert.True(t, export.Date.Equal(orderDate))
	assert.Equal(t, "DH-2026-001", export.Reference)

	initial := movements[1]
	assert.Equal(t, TransactionInitial, initial.Type)
	assert.InDelta(t, 5, initial.Quantity, 1e-9)

	// Exports are a read-only projection; stock stays untouched.
	assert.InDelta(t, 5, ing.CurrentStock, 1e-9)
	assert.InDelta(t, 18000, ing.CostPerUnit, 1e-9)
}

func TestMergeMovementsBackdatedRestock(t *testing.T) {
	// A restock logged with a purchase date before the window is not
	// displayed, but its quantity must still reduce the initial row.
	// Created with 5 units, later restocked 10 backdated two months:
	// the history shows "initial 5", never "initial 15".
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, -1, 0)

	ing := Ingredient{
		ID:           2,
		Name:         "Fish sauce",
		Unit:         UnitLiter,
		CurrentStock: 15,
		CostPerUnit:  52000,
		CreatedAt:    since.AddDate(0, 0, 3),
	}
	restocked := map[uint]float64{2: 10}

	movements := mergeMovements([]Ingredient{ing}, nil, nil, restocked, since)

	require.Len(t, movements, 1)
	assert.Equal(t, TransactionInitial, movements[0].Type)
	assert.InDelta(t, 5, movements[0].Quantity, 1e-9)
}

func TestMergeMovementsInitialRow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, -1, 0)

	tests := []struct {
		name         string
		currentStock float64
		restocked    float64
		createdAt    time.Time
		wantRows     int
		wantInitial  float64
	}{
		{
			name:         "stock fully explained by restocks clamps at zero",
			currentStock: 8, restocked: 12,
			createdAt: since.AddDate(0, 0, 1),
			wantRows:  1, wantInitial: 0,
		},
		{
			name:         "no restocks yields full stock as initial",
			currentStock: 8, restocked: 0,
			createdAt: since.AddDate(0, 0, 1),
			wantRows:  1, wantInitial: 8,
		},
		{
			name:         "ingredient created before window emits no initial row",
			currentStock: 8, restocked: 0,
			createdAt: since.AddDate(0, 0, -1),
			wantRows:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ing := Ingredient{
				ID:           3,
				Name:         "Lemongrass",
				Unit:         UnitKilogram,
				CurrentStock: tt.currentStock,
				CreatedAt:    tt.createdAt,
			}
			restocked := map[uint]float64{3: tt.restocked}

			movements := mergeMovements([]Ingredient{ing}, nil, nil, restocked, since)

			require.Len(t, movements, tt.wantRows)
			if tt.wantRows > 0 {
				assert.Equal(t, TransactionInitial, movements[0].Type)
				assert.InDelta(t, tt.wantInitial, movements[0].Quantity, 1e-9)
				assert.Equal(t, "Initial import", movements[0].Notes)
			}
		})
	}
}

func TestMergeMovementsOrdersNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, -1, 0)

	ing := Ingredient{
		ID:           4,
		Name:         "Pork belly",
		Unit:         UnitKilogram,
		CurrentStock: 20,
		CreatedAt:    since.AddDate(0, 0, 2),
	}
	logs := []InventoryLog{
		{
			IngredientID:    4,
			TransactionType: TransactionRestock,
			Quantity:        12,
			Unit:            UnitKilogram,
			CreatedAt:       now.AddDate(0, 0, -1),
		},
	}
	exports := []exportRow{
		{
			IngredientID: 4, IngredientName: "Pork belly", Unit: UnitKilogram,
			QuantityNeeded: 0.3, ItemQuantity: 2,
			OrderCode: "DH-2026-007", OrderDate: now.AddDate(0, 0, -5),
		},
	}
	restocked := map[uint]float64{4: 12}

	movements := mergeMovements([]Ingredient{ing}, logs, exports, restocked, since)

	require.Len(t, movements, 3)
	assert.Equal(t, TransactionRestock, movements[0].Type)
	assert.Equal(t, ing.Name, movements[0].IngredientName)
	assert.Equal(t, TransactionExport, movements[1].Type)
	assert.Equal(t, TransactionInitial, movements[2].Type)
	assert.InDelta(t, 8, movements[2].Quantity, 1e-9)
}
