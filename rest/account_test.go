package rest

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptofacilities/models"
)

func TestGetAccounts(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		io.WriteString(w, `{
			"result": "success",
			"accounts": {
				"cash": {
					"type": "cashAccount",
					"balances": {"xbt": 141.31756797, "xrp": 52465.1254}
				},
				"fi_xbtusd": {
					"type": "marginAccount",
					"currency": "xbt",
					"balances": {"fi_xbtusd_171215": 50000, "xbt": 141.31756797},
					"auxiliary": {"af": 100.73891563, "pnl": 12.42134766, "pv": 153.73891563},
					"marginRequirements": {"im": 52.8, "mm": 23.76, "lt": 39.6, "tt": 15.84},
					"triggerEstimates": {"im": 3110, "mm": 3000, "lt": 2890, "tt": 2830}
				}
			}
		}`)
	})

	accounts, err := c.GetAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	cash := accounts["cash"]
	assert.Equal(t, "cashAccount", cash.Type)
	assert.Equal(t, 141.31756797, cash.Balances["xbt"])

	margin := accounts["fi_xbtusd"]
	assert.Equal(t, "marginAccount", margin.Type)
	assert.Equal(t, "xbt", margin.Currency)
	assert.Equal(t, 50000.0, margin.Balances["fi_xbtusd_171215"])
	assert.Equal(t, 100.73891563, margin.AvailableFunds)
	assert.Equal(t, 12.42134766, margin.ProfitAndLoss)
	assert.Equal(t, 153.73891563, margin.PortfolioValue)
	assert.Equal(t, models.MarginLevels{
		InitialMargin:        52.8,
		MaintenanceMargin:    23.76,
		LiquidationThreshold: 39.6,
		TerminationThreshold: 15.84,
	}, margin.MarginRequirements)
	assert.Equal(t, 3110.0, margin.TriggerEstimates.InitialMargin)
}

func TestGetOpenPositions(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"result": "success",
			"openPositions": [
				{"fillTime": "2016-02-25T09:47:01.000Z", "symbol": "fi_xbtusd_180615", "side": "long", "size": 1000, "price": 4255}
			]
		}`)
	})

	positions, err := c.GetOpenPositions(context.Background())
	require.NoError(t, err)

	require.Len(t, positions, 1)
	assert.Equal(t, models.Position{
		Symbol:   "fi_xbtusd_180615",
		Side:     "long",
		Size:     1000,
		Price:    4255,
		FillTime: time.Date(2016, 2, 25, 9, 47, 1, 0, time.UTC),
	}, positions[0])
}
