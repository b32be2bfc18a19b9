package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cryptofacilities/models"
)

var (
	errInvalidSide        = errors.New("order side must be buy or sell")
	errInvalidOrderType   = errors.New("order type must be lmt or stp")
	errStopPriceOnLimit   = errors.New("limit order must not carry a stop price")
	errEmptyBatch         = errors.New("batch contains no instructions")
	errAmbiguousBatchItem = errors.New("batch instruction must be either a send or a cancel")
	errNegativeTimeout    = errors.New("timeout must not be negative")
)

type wireOrderStatus struct {
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	ReceivedTime time.Time `json:"receivedTime"`
}

func (w wireOrderStatus) toModel() models.OrderStatus {
	return models.OrderStatus{
		OrderID:      w.OrderID,
		Status:       w.Status,
		ReceivedTime: w.ReceivedTime,
	}
}

func orderParams(order models.Order) (url.Values, error) {
	if order.Side != models.OrderSideBuy && order.Side != models.OrderSideSell {
		return nil, fmt.Errorf("%w, got %q", errInvalidSide, order.Side)
	}

	params := url.Values{}
	params.Set("orderType", string(order.Type))
	params.Set("symbol", order.Symbol)
	params.Set("side", string(order.Side))
	params.Set("size", formatFloat(order.Size))
	params.Set("limitPrice", formatFloat(order.LimitPrice))

	switch order.Type {
	case models.OrderTypeLimit:
		if order.StopPrice != 0 {
			return nil, errStopPriceOnLimit
		}
	case models.OrderTypeStop:
		params.Set("stopPrice", formatFloat(order.StopPrice))
	default:
		return nil, fmt.Errorf("%w, got %q", errInvalidOrderType, order.Type)
	}

	if order.ClientOrderID != "" {
		params.Set("cliOrdId", order.ClientOrderID)
	}

	return params, nil
}

// SendOrder places a single limit or stop order.
func (c *Client) SendOrder(ctx context.Context, order models.Order) (models.OrderStatus, error) {
	params, err := orderParams(order)
	if err != nil {
		return models.OrderStatus{}, err
	}

	var resp struct {
		SendStatus wireOrderStatus `json:"sendStatus"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "sendorder", params, true, &resp); err != nil {
		return models.OrderStatus{}, err
	}

	status := resp.SendStatus.toModel()
	c.log.WithOrderID(status.OrderID).WithField("status", status.Status).Debug("order sent")
	return status, nil
}

// CancelOrder cancels the order with the given exchange order id.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (models.OrderStatus, error) {
	params := url.Values{}
	params.Set("order_id", orderID)

	var resp struct {
		CancelStatus wireOrderStatus `json:"cancelStatus"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "cancelorder", params, true, &resp); err != nil {
		return models.OrderStatus{}, err
	}

	status := resp.CancelStatus.toModel()
	if status.OrderID == "" {
		status.OrderID = orderID
	}
	return status, nil
}

// EditOrder amends size and prices of a resting order, addressed by
// exchange order id or client order id. A zero stopPrice is omitted.
func (c *Client) EditOrder(ctx context.Context, orderID, clientOrderID string, size, limitPrice, stopPrice float64) (models.OrderStatus, error) {
	params := url.Values{}
	if orderID != "" {
		params.Set("orderId", orderID)
	}
	if clientOrderID != "" {
		params.Set("cliOrdId", clientOrderID)
	}
	params.Set("size", formatFloat(size))
	params.Set("limitPrice", formatFloat(limitPrice))
	if stopPrice != 0 {
		params.Set("stopPrice", formatFloat(stopPrice))
	}

	var resp struct {
		EditStatus struct {
			OrderID      string    `json:"orderId"`
			Status       string    `json:"status"`
			ReceivedTime time.Time `json:"receivedTime"`
		} `json:"editStatus"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "editorder", params, true, &resp); err != nil {
		return models.OrderStatus{}, err
	}

	return models.OrderStatus{
		OrderID:      resp.EditStatus.OrderID,
		Status:       resp.EditStatus.Status,
		ReceivedTime: resp.EditStatus.ReceivedTime,
	}, nil
}

type batchItem struct {
	Order      string `json:"order"`
	OrderTag   string `json:"order_tag,omitempty"`
	OrderID    string `json:"order_id,omitempty"`
	OrderType  string `json:"orderType,omitempty"`
	Symbol     string `json:"symbol,omitempty"`
	Side       string `json:"side,omitempty"`
	Size       string `json:"size,omitempty"`
	LimitPrice string `json:"limitPrice,omitempty"`
	StopPrice  string `json:"stopPrice,omitempty"`
	CliOrdID   string `json:"cliOrdId,omitempty"`
}

// BatchOrder submits sends and cancels in one request. The returned
// statuses align one to one with the instructions: sends are matched
// back by the order tag the client assigns (the instruction's index),
// cancels by order id. Duplicate cancel ids share a status.
func (c *Client) BatchOrder(ctx context.Context, instructions []models.BatchInstruction) ([]models.OrderStatus, error) {
	if len(instructions) == 0 {
		return nil, errEmptyBatch
	}

	items := make([]batchItem, 0, len(instructions))
	cancelIdxs := make(map[string][]int)
	for i, instruction := range instructions {
		switch {
		case instruction.Send != nil && instruction.CancelOrderID == "":
			order := *instruction.Send
			if _, err := orderParams(order); err != nil {
				return nil, fmt.Errorf("instruction %d: %w", i, err)
			}
			item := batchItem{
				Order:      "send",
				OrderTag:   strconv.Itoa(i),
				OrderType:  string(order.Type),
				Symbol:     order.Symbol,
				Side:       string(order.Side),
				Size:       formatFloat(order.Size),
				LimitPrice: formatFloat(order.LimitPrice),
				CliOrdID:   order.ClientOrderID,
			}
			if order.Type == models.OrderTypeStop {
				item.StopPrice = formatFloat(order.StopPrice)
			}
			items = append(items, item)
		case instruction.Send == nil && instruction.CancelOrderID != "":
			items = append(items, batchItem{
				Order:   "cancel",
				OrderID: instruction.CancelOrderID,
			})
			cancelIdxs[instruction.CancelOrderID] = append(cancelIdxs[instruction.CancelOrderID], i)
		default:
			return nil, fmt.Errorf("instruction %d: %w", i, errAmbiguousBatchItem)
		}
	}

	payload, err := json.Marshal(map[string]any{"batchOrder": items})
	if err != nil {
		return nil, fmt.Errorf("batchorder: encode payload: %w", err)
	}

	params := url.Values{}
	params.Set("json", string(payload))

	var resp struct {
		BatchStatus []struct {
			wireOrderStatus
			OrderTag string `json:"order_tag"`
		} `json:"batchStatus"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "batchorder", params, true, &resp); err != nil {
		return nil, err
	}

	statuses := make([]models.OrderStatus, len(instructions))
	matched := make([]bool, len(instructions))
	for _, result := range resp.BatchStatus {
		if result.OrderTag != "" {
			idx, err := strconv.Atoi(result.OrderTag)
			if err != nil || idx < 0 || idx >= len(instructions) || instructions[idx].Send == nil {
				return nil, fmt.Errorf("batchorder: unexpected order tag %q in response", result.OrderTag)
			}
			if matched[idx] {
				return nil, fmt.Errorf("batchorder: duplicate status for order tag %q", result.OrderTag)
			}
			statuses[idx] = result.toModel()
			matched[idx] = true
			continue
		}

		idxs, ok := cancelIdxs[result.OrderID]
		if !ok {
			return nil, fmt.Errorf("batchorder: unexpected order id %q in response", result.OrderID)
		}
		for _, idx := range idxs {
			if matched[idx] {
				return nil, fmt.Errorf("batchorder: duplicate status for order id %q", result.OrderID)
			}
			statuses[idx] = result.toModel()
			matched[idx] = true
		}
	}

	for i, ok := range matched {
		if !ok {
			return nil, fmt.Errorf("batchorder: no status returned for instruction %d", i)
		}
	}
	return statuses, nil
}

// GetOpenOrders returns the key's resting orders. ReceivedTime can be
// absent for orders the exchange acknowledged without a timestamp.
func (c *Client) GetOpenOrders(ctx context.Context) ([]models.OpenOrder, error) {
	var resp struct {
		OpenOrders []struct {
			OrderID        string    `json:"order_id"`
			ClientOrderID  string    `json:"cliOrdId"`
			Symbol         string    `json:"symbol"`
			Side           string    `json:"side"`
			OrderType      string    `json:"orderType"`
			LimitPrice     float64   `json:"limitPrice"`
			StopPrice      float64   `json:"stopPrice"`
			FilledSize     float64   `json:"filledSize"`
			UnfilledSize   float64   `json:"unfilledSize"`
			Status         string    `json:"status"`
			ReceivedTime   time.Time `json:"receivedTime"`
			LastUpdateTime time.Time `json:"lastUpdateTime"`
		} `json:"openOrders"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "openorders", nil, true, &resp); err != nil {
		return nil, err
	}

	orders := make([]models.OpenOrder, 0, len(resp.OpenOrders))
	for _, item := range resp.OpenOrders {
		orders = append(orders, models.OpenOrder{
			Order: models.Order{
				Symbol:        item.Symbol,
				Side:          models.OrderSide(item.Side),
				Type:          models.OrderType(item.OrderType),
				Size:          item.FilledSize + item.UnfilledSize,
				LimitPrice:    item.LimitPrice,
				StopPrice:     item.StopPrice,
				ClientOrderID: item.ClientOrderID,
			},
			OrderID:        item.OrderID,
			Status:         item.Status,
			FilledSize:     item.FilledSize,
			UnfilledSize:   item.UnfilledSize,
			ReceivedTime:   item.ReceivedTime,
			LastUpdateTime: item.LastUpdateTime,
		})
	}
	return orders, nil
}

// CancelAllOrders cancels every resting order, or only those on symbol
// when it is non-empty. It returns the cancelled order ids.
func (c *Client) CancelAllOrders(ctx context.Context, symbol string) ([]string, error) {
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}

	var resp struct {
		CancelStatus struct {
			CancelledOrders []struct {
				OrderID string `json:"order_id"`
			} `json:"cancelledOrders"`
		} `json:"cancelStatus"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "cancelallorders", params, true, &resp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.CancelStatus.CancelledOrders))
	for _, item := range resp.CancelStatus.CancelledOrders {
		ids = append(ids, item.OrderID)
	}
	return ids, nil
}

// CancelAllOrdersAfter arms the dead man's switch: unless re-armed, all
// orders are cancelled once timeout elapses. A zero timeout disarms it.
// The exchange counts in whole seconds, so positive timeouts are
// rounded up; truncating a sub-second timeout would send 0 and disarm
// instead of arm. The returned time is when the cancellation would
// trigger.
func (c *Client) CancelAllOrdersAfter(ctx context.Context, timeout time.Duration) (time.Time, error) {
	if timeout < 0 {
		return time.Time{}, errNegativeTimeout
	}

	seconds := int64(timeout / time.Second)
	if timeout%time.Second != 0 {
		seconds++
	}

	params := url.Values{}
	params.Set("timeout", strconv.FormatInt(seconds, 10))

	var resp struct {
		Status struct {
			CurrentTime time.Time `json:"currentTime"`
			TriggerTime time.Time `json:"triggerTime"`
		} `json:"status"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "cancelallordersafter", params, true, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.Status.TriggerTime, nil
}

// GetFills returns up to 100 of the key's fills, ending at lastFillTime
// when it is non-zero.
func (c *Client) GetFills(ctx context.Context, lastFillTime time.Time) ([]models.Fill, error) {
	params := url.Values{}
	if !lastFillTime.IsZero() {
		params.Set("lastFillTime", formatTime(lastFillTime))
	}

	var resp struct {
		Fills []struct {
			FillID   string    `json:"fill_id"`
			OrderID  string    `json:"order_id"`
			Symbol   string    `json:"symbol"`
			Side     string    `json:"side"`
			Size     float64   `json:"size"`
			Price    float64   `json:"price"`
			FillTime time.Time `json:"fillTime"`
			FillType string    `json:"fillType"`
		} `json:"fills"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "fills", params, true, &resp); err != nil {
		return nil, err
	}

	fills := make([]models.Fill, 0, len(resp.Fills))
	for _, item := range resp.Fills {
		fills = append(fills, models.Fill{
			FillID:   item.FillID,
			OrderID:  item.OrderID,
			Symbol:   item.Symbol,
			Side:     models.OrderSide(item.Side),
			Size:     item.Size,
			Price:    item.Price,
			FillTime: item.FillTime,
			FillType: item.FillType,
		})
	}
	return fills, nil
}
