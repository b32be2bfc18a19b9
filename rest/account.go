package rest

import (
	"context"
	"net/http"
	"time"

	"cryptofacilities/models"
)

type wireMarginLevels struct {
	InitialMargin        float64 `json:"im"`
	MaintenanceMargin    float64 `json:"mm"`
	LiquidationThreshold float64 `json:"lt"`
	TerminationThreshold float64 `json:"tt"`
}

func (w wireMarginLevels) toModel() models.MarginLevels {
	return models.MarginLevels{
		InitialMargin:        w.InitialMargin,
		MaintenanceMargin:    w.MaintenanceMargin,
		LiquidationThreshold: w.LiquidationThreshold,
		TerminationThreshold: w.TerminationThreshold,
	}
}

// GetAccounts returns the cash and margin accounts of the key's owner,
// keyed by account name.
func (c *Client) GetAccounts(ctx context.Context) (map[string]models.Account, error) {
	var resp struct {
		Accounts map[string]struct {
			Type      string             `json:"type"`
			Currency  string             `json:"currency"`
			Balances  map[string]float64 `json:"balances"`
			Auxiliary struct {
				AvailableFunds float64 `json:"af"`
				ProfitAndLoss  float64 `json:"pnl"`
				PortfolioValue float64 `json:"pv"`
			} `json:"auxiliary"`
			MarginRequirements wireMarginLevels `json:"marginRequirements"`
			TriggerEstimates   wireMarginLevels `json:"triggerEstimates"`
		} `json:"accounts"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "accounts", nil, true, &resp); err != nil {
		return nil, err
	}

	accounts := make(map[string]models.Account, len(resp.Accounts))
	for name, item := range resp.Accounts {
		accounts[name] = models.Account{
			Type:               item.Type,
			Currency:           item.Currency,
			Balances:           item.Balances,
			AvailableFunds:     item.Auxiliary.AvailableFunds,
			ProfitAndLoss:      item.Auxiliary.ProfitAndLoss,
			PortfolioValue:     item.Auxiliary.PortfolioValue,
			MarginRequirements: item.MarginRequirements.toModel(),
			TriggerEstimates:   item.TriggerEstimates.toModel(),
		}
	}
	return accounts, nil
}

// GetOpenPositions returns the key's open positions.
func (c *Client) GetOpenPositions(ctx context.Context) ([]models.Position, error) {
	var resp struct {
		OpenPositions []struct {
			Symbol   string    `json:"symbol"`
			Side     string    `json:"side"`
			Size     float64   `json:"size"`
			Price    float64   `json:"price"`
			FillTime time.Time `json:"fillTime"`
		} `json:"openPositions"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "openpositions", nil, true, &resp); err != nil {
		return nil, err
	}

	positions := make([]models.Position, 0, len(resp.OpenPositions))
	for _, item := range resp.OpenPositions {
		positions = append(positions, models.Position{
			Symbol:   item.Symbol,
			Side:     item.Side,
			Size:     item.Size,
			Price:    item.Price,
			FillTime: item.FillTime,
		})
	}
	return positions, nil
}
