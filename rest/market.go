package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"cryptofacilities/models"
)

// GetInstruments lists the tradeable contracts.
func (c *Client) GetInstruments(ctx context.Context) ([]models.Instrument, error) {
	var resp struct {
		Instruments []struct {
			Symbol          string    `json:"symbol"`
			Type            string    `json:"type"`
			Underlying      string    `json:"underlying"`
			Tradeable       bool      `json:"tradeable"`
			LastTradingTime time.Time `json:"lastTradingTime"`
			TickSize        float64   `json:"tickSize"`
			ContractSize    float64   `json:"contractSize"`
		} `json:"instruments"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "instruments", nil, false, &resp); err != nil {
		return nil, err
	}

	instruments := make([]models.Instrument, 0, len(resp.Instruments))
	for _, item := range resp.Instruments {
		instruments = append(instruments, models.Instrument{
			Symbol:          item.Symbol,
			Type:            item.Type,
			Underlying:      item.Underlying,
			Tradeable:       item.Tradeable,
			LastTradingTime: item.LastTradingTime,
			TickSize:        item.TickSize,
			ContractSize:    item.ContractSize,
		})
	}
	return instruments, nil
}

// GetTickers returns the current market summary for every contract.
func (c *Client) GetTickers(ctx context.Context) ([]models.Ticker, error) {
	var resp struct {
		Tickers []struct {
			Symbol    string    `json:"symbol"`
			Suspended bool      `json:"suspended"`
			Last      float64   `json:"last"`
			LastTime  time.Time `json:"lastTime"`
			LastSize  float64   `json:"lastSize"`
			Open24h   float64   `json:"open24h"`
			High24h   float64   `json:"high24h"`
			Low24h    float64   `json:"low24h"`
			Vol24h    float64   `json:"vol24h"`
			Bid       float64   `json:"bid"`
			BidSize   float64   `json:"bidSize"`
			Ask       float64   `json:"ask"`
			AskSize   float64   `json:"askSize"`
			MarkPrice float64   `json:"markPrice"`
		} `json:"tickers"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "tickers", nil, false, &resp); err != nil {
		return nil, err
	}

	tickers := make([]models.Ticker, 0, len(resp.Tickers))
	for _, item := range resp.Tickers {
		tickers = append(tickers, models.Ticker{
			Symbol:    item.Symbol,
			Suspended: item.Suspended,
			Last:      item.Last,
			LastTime:  item.LastTime,
			LastSize:  item.LastSize,
			Open24h:   item.Open24h,
			High24h:   item.High24h,
			Low24h:    item.Low24h,
			Vol24h:    item.Vol24h,
			Bid:       item.Bid,
			BidSize:   item.BidSize,
			Ask:       item.Ask,
			AskSize:   item.AskSize,
			MarkPrice: item.MarkPrice,
		})
	}
	return tickers, nil
}

// GetOrderBook returns the current book for symbol. Levels arrive as
// [price, size] pairs, bids with descending and asks with ascending
// price.
func (c *Client) GetOrderBook(ctx context.Context, symbol string) (models.OrderBook, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var resp struct {
		OrderBook struct {
			Bids [][2]float64 `json:"bids"`
			Asks [][2]float64 `json:"asks"`
		} `json:"orderBook"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "orderbook", params, false, &resp); err != nil {
		return models.OrderBook{}, err
	}

	return models.OrderBook{
		Bids: toPriceLevels(resp.OrderBook.Bids),
		Asks: toPriceLevels(resp.OrderBook.Asks),
	}, nil
}

func toPriceLevels(levels [][2]float64) []models.PriceLevel {
	out := make([]models.PriceLevel, 0, len(levels))
	for _, level := range levels {
		out = append(out, models.PriceLevel{Price: level[0], Size: level[1]})
	}
	return out
}

// GetTradeHistory returns up to 100 public trades for symbol, ending
// at lastTime when it is non-zero.
func (c *Client) GetTradeHistory(ctx context.Context, symbol string, lastTime time.Time) ([]models.Trade, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if !lastTime.IsZero() {
		params.Set("lastTime", formatTime(lastTime))
	}

	var resp struct {
		History []struct {
			Time    time.Time `json:"time"`
			TradeID int64     `json:"trade_id"`
			Price   float64   `json:"price"`
			Size    float64   `json:"size"`
		} `json:"history"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "history", params, false, &resp); err != nil {
		return nil, err
	}

	trades := make([]models.Trade, 0, len(resp.History))
	for _, item := range resp.History {
		trades = append(trades, models.Trade{
			Time:    item.Time,
			TradeID: item.TradeID,
			Price:   item.Price,
			Size:    item.Size,
		})
	}
	return trades, nil
}
