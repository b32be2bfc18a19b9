package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"cryptofacilities/models"
)

// Withdraw requests a withdrawal of amount in currency (e.g. "xbt") to
// targetAddress.
func (c *Client) Withdraw(ctx context.Context, targetAddress, currency string, amount float64) (models.TransferStatus, error) {
	params := url.Values{}
	params.Set("targetAddress", targetAddress)
	params.Set("currency", currency)
	params.Set("amount", formatFloat(amount))

	var resp struct {
		ReceivedTime time.Time `json:"receivedTime"`
		Status       string    `json:"status"`
		TransferID   string    `json:"transfer_id"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "withdrawal", params, true, &resp); err != nil {
		return models.TransferStatus{}, err
	}

	return models.TransferStatus{
		TransferID:   resp.TransferID,
		Status:       resp.Status,
		ReceivedTime: resp.ReceivedTime,
	}, nil
}

// GetTransfers returns the key's deposit and withdrawal history, ending
// at lastTransferTime when it is non-zero.
func (c *Client) GetTransfers(ctx context.Context, lastTransferTime time.Time) ([]models.Transfer, error) {
	params := url.Values{}
	if !lastTransferTime.IsZero() {
		params.Set("lastTransferTime", formatTime(lastTransferTime))
	}

	var resp struct {
		Transfers []struct {
			TransferID    string    `json:"transfer_id"`
			TransactionID string    `json:"transaction_id"`
			TransferType  string    `json:"transferType"`
			Status        string    `json:"status"`
			TargetAddress string    `json:"targetAddress"`
			Currency      string    `json:"currency"`
			Amount        float64   `json:"amount"`
			ReceivedTime  time.Time `json:"receivedTime"`
			CompletedTime time.Time `json:"completedTime"`
		} `json:"transfers"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "transfers", params, true, &resp); err != nil {
		return nil, err
	}

	transfers := make([]models.Transfer, 0, len(resp.Transfers))
	for _, item := range resp.Transfers {
		transfers = append(transfers, models.Transfer{
			TransferID:    item.TransferID,
			TransactionID: item.TransactionID,
			TransferType:  item.TransferType,
			Status:        item.Status,
			TargetAddress: item.TargetAddress,
			Currency:      item.Currency,
			Amount:        item.Amount,
			ReceivedTime:  item.ReceivedTime,
			CompletedTime: item.CompletedTime,
		})
	}
	return transfers, nil
}

// GetNotifications returns platform notices, e.g. maintenance windows.
func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var resp struct {
		Notifications []struct {
			Type          string `json:"type"`
			Priority      string `json:"priority"`
			Note          string `json:"note"`
			EffectiveTime string `json:"effectiveTime"`
		} `json:"notifications"`
	}

	if err := c.doRequest(ctx, http.MethodGet, "notifications", nil, true, &resp); err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(resp.Notifications))
	for _, item := range resp.Notifications {
		notifications = append(notifications, models.Notification{
			Type:          item.Type,
			Priority:      item.Priority,
			Note:          item.Note,
			EffectiveTime: item.EffectiveTime,
		})
	}
	return notifications, nil
}
