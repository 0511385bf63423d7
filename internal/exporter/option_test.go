package exporter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhcli/pkg/contracts/domain"
)

func optionTestSource() *fakeSource {
	return &fakeSource{
		optionOrders: []domain.OptionOrder{
			{
				ID:                "order-1",
				ChainSymbol:       "AAPL",
				State:             domain.OrderStateFilled,
				Direction:         "debit",
				Type:              "limit",
				OpeningStrategy:   "long_call",
				ProcessedQuantity: "4.00000",
				RegulatoryFees:    "0.05",
				CreatedAt:         "2024-03-10T15:00:00Z",
				Legs: []domain.OptionLeg{
					{
						Side:   domain.OrderSideBuy,
						Option: "https://api.example.com/options/instruments/call-190/",
						Executions: []domain.Execution{
							{Timestamp: "2024-03-10T15:00:01Z", Price: "10", Quantity: "2"},
							{Timestamp: "2024-03-10T15:00:02Z", Price: "20", Quantity: "2"},
						},
					},
				},
			},
			{
				// Not filled; contributes no rows regardless of legs.
				ID:          "order-2",
				ChainSymbol: "AAPL",
				State:       domain.OrderStateCancelled,
				Legs: []domain.OptionLeg{
					{
						Side:   domain.OrderSideSell,
						Option: "https://api.example.com/options/instruments/call-190/",
						Executions: []domain.Execution{
							{Price: "1.00", Quantity: "1"},
						},
					},
				},
			},
		},
		instruments: map[string]domain.OptionInstrument{
			"https://api.example.com/options/instruments/call-190/": {
				ID:             "call-190-id",
				ExpirationDate: "2024-06-21",
				StrikePrice:    "190.0000",
				Type:           "call",
			},
		},
	}
}

func TestExportCompletedOptionOrders(t *testing.T) {
	dir := t.TempDir()

	exp := New(optionTestSource(), testLogger())
	err := exp.ExportCompletedOptionOrders(context.Background(), dir, "")
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, "option_orders.csv"))
	require.Len(t, records, 2)

	assert.Equal(t, optionHeader, records[0])

	// The leg aggregate replaces the order-level quantity and price:
	// 2@10 + 2@20 -> quantity 4, weighted average 15.
	assert.Equal(t, []string{
		"AAPL",
		"2024-06-21",
		"190.0000",
		"call",
		"call-190-id",
		"buy",
		"2024-03-10T15:00:00Z",
		"debit",
		"4",
		"limit",
		"long_call",
		"",
		"15",
		"4.00000",
		"0.05",
	}, records[1])
}

func TestExportCompletedOptionOrders_MultiLeg(t *testing.T) {
	dir := t.TempDir()

	source := optionTestSource()
	source.instruments["https://api.example.com/options/instruments/call-200/"] = domain.OptionInstrument{
		ID:             "call-200-id",
		ExpirationDate: "2024-06-21",
		StrikePrice:    "200.0000",
		Type:           "call",
	}
	source.optionOrders = []domain.OptionOrder{
		{
			ID:          "spread-1",
			ChainSymbol: "AAPL",
			State:       domain.OrderStateFilled,
			Direction:   "debit",
			Type:        "limit",
			CreatedAt:   "2024-03-11T15:00:00Z",
			Legs: []domain.OptionLeg{
				{
					Side:   domain.OrderSideBuy,
					Option: "https://api.example.com/options/instruments/call-190/",
					Executions: []domain.Execution{
						{Price: "12.50", Quantity: "1"},
					},
				},
				{
					Side:   domain.OrderSideSell,
					Option: "https://api.example.com/options/instruments/call-200/",
					Executions: []domain.Execution{
						{Price: "7.50", Quantity: "1"},
					},
				},
			},
		},
	}

	exp := New(source, testLogger())
	err := exp.ExportCompletedOptionOrders(context.Background(), dir, "")
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, "option_orders.csv"))
	require.Len(t, records, 3, "one row per leg")

	assert.Equal(t, "buy", records[1][5])
	assert.Equal(t, "190.0000", records[1][2])
	assert.Equal(t, "sell", records[2][5])
	assert.Equal(t, "200.0000", records[2][2])
}

func TestExportCompletedOptionOrders_SkipsLegWithoutExecutions(t *testing.T) {
	dir := t.TempDir()

	source := optionTestSource()
	source.optionOrders[0].Legs = append(source.optionOrders[0].Legs, domain.OptionLeg{
		Side:       domain.OrderSideSell,
		Option:     "https://api.example.com/options/instruments/call-190/",
		Executions: nil,
	})

	exp := New(source, testLogger())
	err := exp.ExportCompletedOptionOrders(context.Background(), dir, "")
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, "option_orders.csv"))
	assert.Len(t, records, 2, "the empty leg is skipped, not an export failure")
}

func TestExportCompletedOptionOrders_InstrumentLookupError(t *testing.T) {
	dir := t.TempDir()

	source := optionTestSource()
	source.instruments = map[string]domain.OptionInstrument{}

	exp := New(source, testLogger())
	err := exp.ExportCompletedOptionOrders(context.Background(), dir, "")
	require.Error(t, err)
}
