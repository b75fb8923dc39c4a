package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrDeliveryFailed = errors.New("push delivery failed")
	ErrInvalidToken   = errors.New("push token rejected")
)

type fcmMessage struct {
	To           string          `json:"to"`
	Notification fcmNotification `json:"notification"`
	Data         fcmNotification `json:"data"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// FCMClient sends single-device notifications through the FCM HTTP endpoint.
type FCMClient struct {
	address string
	apiKey  string
	client  HTTPClientI
}

func NewFCMClient(address, apiKey string, client HTTPClientI) *FCMClient {
	return &FCMClient{
		address: address,
		apiKey:  apiKey,
		client:  client,
	}
}

func (c *FCMClient) Send(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal(fcmMessage{
		To:           token,
		Notification: fcmNotification{Title: title, Body: body},
		Data:         fcmNotification{Title: title, Body: body},
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "key="+c.apiKey)

	status, resp, err := c.client.Post(ctx, c.address, headers, payload)
	if err != nil {
		zap.L().Error("fcm request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if status != http.StatusOK {
		zap.L().Error("fcm returned unexpected status", zap.Int("status", status), zap.ByteString("body", resp))
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, status)
	}

	result := gjson.ParseBytes(resp)
	if result.Get("failure").Int() > 0 {
		reason := result.Get("results.0.error").String()
		zap.L().Warn("fcm rejected notification", zap.String("reason", reason))
		if reason == "NotRegistered" || reason == "InvalidRegistration" {
			return fmt.Errorf("%w: %s", ErrInvalidToken, reason)
		}
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, reason)
	}
	return nil
}
