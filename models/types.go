package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderSide string
type OrderType string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"

	OrderTypeLimit OrderType = "lmt"
	OrderTypeStop  OrderType = "stp"
)

// Instrument describes a tradeable derivatives contract.
type Instrument struct {
	Symbol          string    `json:"symbol"`
	Type            string    `json:"type"`
	Underlying      string    `json:"underlying"`
	Tradeable       bool      `json:"tradeable"`
	LastTradingTime time.Time `json:"last_trading_time"`
	TickSize        float64   `json:"tick_size"`
	ContractSize    float64   `json:"contract_size"`
}

type Ticker struct {
	Symbol    string    `json:"symbol"`
	Suspended bool      `json:"suspended"`
	Last      float64   `json:"last"`
	LastTime  time.Time `json:"last_time"`
	LastSize  float64   `json:"last_size"`
	Open24h   float64   `json:"open_24h"`
	High24h   float64   `json:"high_24h"`
	Low24h    float64   `json:"low_24h"`
	Vol24h    float64   `json:"vol_24h"`
	Bid       float64   `json:"bid"`
	BidSize   float64   `json:"bid_size"`
	Ask       float64   `json:"ask"`
	AskSize   float64   `json:"ask_size"`
	MarkPrice float64   `json:"mark_price"`
}

type PriceLevel struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
}

// OrderBook levels are delivered bids descending, asks ascending.
type OrderBook struct {
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}

type Trade struct {
	Time    time.Time `json:"time"`
	TradeID int64     `json:"trade_id"`
	Price   float64   `json:"price"`
	Size    float64   `json:"size"`
}

// MarginLevels holds the im/mm/lt/tt quadruple reported for margin
// accounts, either as requirements or as trigger estimates.
type MarginLevels struct {
	InitialMargin        float64 `json:"initial_margin"`
	MaintenanceMargin    float64 `json:"maintenance_margin"`
	LiquidationThreshold float64 `json:"liquidation_threshold"`
	TerminationThreshold float64 `json:"termination_threshold"`
}

type Account struct {
	Type     string             `json:"type"`
	Currency string             `json:"currency"`
	Balances map[string]float64 `json:"balances"`

	// Margin accounts only.
	AvailableFunds     float64      `json:"available_funds"`
	ProfitAndLoss      float64      `json:"pnl"`
	PortfolioValue     float64      `json:"portfolio_value"`
	MarginRequirements MarginLevels `json:"margin_requirements"`
	TriggerEstimates   MarginLevels `json:"trigger_estimates"`
}

// Order is an order as submitted. StopPrice is only meaningful for
// stop orders; ClientOrderID is optional.
type Order struct {
	Symbol        string    `json:"symbol"`
	Side          OrderSide `json:"side"`
	Type          OrderType `json:"type"`
	Size          float64   `json:"size"`
	LimitPrice    float64   `json:"limit_price"`
	StopPrice     float64   `json:"stop_price"`
	ClientOrderID string    `json:"client_order_id"`
}

// OrderStatus is the exchange's acknowledgement of an order action.
// ReceivedTime is zero when the exchange omitted it (an order that
// filled immediately, for example) and OrderID is empty when placement
// was rejected before an id was assigned.
type OrderStatus struct {
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	ReceivedTime time.Time `json:"received_time"`
}

type OpenOrder struct {
	Order          Order     `json:"order"`
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status"`
	FilledSize     float64   `json:"filled_size"`
	UnfilledSize   float64   `json:"unfilled_size"`
	ReceivedTime   time.Time `json:"received_time"`
	LastUpdateTime time.Time `json:"last_update_time"`
}

type Fill struct {
	FillID   string    `json:"fill_id"`
	OrderID  string    `json:"order_id"`
	Symbol   string    `json:"symbol"`
	Side     OrderSide `json:"side"`
	Size     float64   `json:"size"`
	Price    float64   `json:"price"`
	FillTime time.Time `json:"fill_time"`
	FillType string    `json:"fill_type"`
}

type Position struct {
	Symbol   string    `json:"symbol"`
	Side     string    `json:"side"`
	Size     float64   `json:"size"`
	Price    float64   `json:"price"`
	FillTime time.Time `json:"fill_time"`
}

// TransferStatus acknowledges a withdrawal request.
type TransferStatus struct {
	TransferID   string    `json:"transfer_id"`
	Status       string    `json:"status"`
	ReceivedTime time.Time `json:"received_time"`
}

type Transfer struct {
	TransferID    string    `json:"transfer_id"`
	TransactionID string    `json:"transaction_id"`
	TransferType  string    `json:"transfer_type"`
	Status        string    `json:"status"`
	TargetAddress string    `json:"target_address"`
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	ReceivedTime  time.Time `json:"received_time"`
	CompletedTime time.Time `json:"completed_time"`
}

type Notification struct {
	Type          string `json:"type"`
	Priority      string `json:"priority"`
	Note          string `json:"note"`
	EffectiveTime string `json:"effective_time"`
}

// BatchInstruction is one element of a batch order request: either an
// order to place or an order id to cancel. Exactly one of Send and
// CancelOrderID must be set.
type BatchInstruction struct {
	Send          *Order `json:"send,omitempty"`
	CancelOrderID string `json:"cancel_order_id,omitempty"`
}

func BatchSend(order Order) BatchInstruction {
	return BatchInstruction{Send: &order}
}

func BatchCancel(orderID string) BatchInstruction {
	return BatchInstruction{CancelOrderID: orderID}
}

// NewClientOrderID returns a random id suitable for the cliOrdId field.
func NewClientOrderID() string {
	return uuid.NewString()
}
