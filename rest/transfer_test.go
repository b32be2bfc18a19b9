package rest

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdraw(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", r.PostForm.Get("targetAddress"))
		assert.Equal(t, "xbt", r.PostForm.Get("currency"))
		assert.Equal(t, "2.58", r.PostForm.Get("amount"))

		io.WriteString(w, `{
			"result": "success",
			"receivedTime": "2016-02-25T09:47:01.000Z",
			"status": "accepted",
			"transfer_id": "b243cf7a-657d-488e-ab1c-cfb0f95362ba"
		}`)
	})

	status, err := c.Withdraw(context.Background(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", "xbt", 2.58)
	require.NoError(t, err)

	assert.Equal(t, "b243cf7a-657d-488e-ab1c-cfb0f95362ba", status.TransferID)
	assert.Equal(t, "accepted", status.Status)
	assert.True(t, status.ReceivedTime.Equal(time.Date(2016, 2, 25, 9, 47, 1, 0, time.UTC)))
}

func TestGetTransfers(t *testing.T) {
	lastTransferTime := time.Date(2016, 1, 29, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2016-01-29T00:00:00.000Z", r.URL.Query().Get("lastTransferTime"))
		io.WriteString(w, `{
			"result": "success",
			"transfers": [
				{
					"receivedTime": "2016-01-28T07:09:42.000Z",
					"completedTime": "2016-01-28T08:26:46.000Z",
					"status": "processed",
					"transfer_id": "b243cf7a-657d-488e-ab1c-cfb0f95362ba",
					"transaction_id": "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b",
					"targetAddress": "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
					"transferType": "deposit",
					"currency": "xbt",
					"amount": 2.58
				}
			]
		}`)
	})

	transfers, err := c.GetTransfers(context.Background(), lastTransferTime)
	require.NoError(t, err)

	require.Len(t, transfers, 1)
	transfer := transfers[0]
	assert.Equal(t, "deposit", transfer.TransferType)
	assert.Equal(t, "processed", transfer.Status)
	assert.Equal(t, 2.58, transfer.Amount)
	assert.True(t, transfer.CompletedTime.After(transfer.ReceivedTime))
}

func TestGetNotifications(t *testing.T) {
	c := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"result": "success",
			"notifications": [
				{"type": "maintenance", "priority": "high", "note": "Planned downtime", "effectiveTime": "2019-03-21T12:00:00.000Z"}
			]
		}`)
	})

	notifications, err := c.GetNotifications(context.Background())
	require.NoError(t, err)

	require.Len(t, notifications, 1)
	assert.Equal(t, "maintenance", notifications[0].Type)
	assert.Equal(t, "high", notifications[0].Priority)
}
