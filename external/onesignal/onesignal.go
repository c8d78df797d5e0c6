package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

const (
	defaultURL = "https://onesignal.com/api/v1"
)

var (
	errRequestFailed = fmt.Errorf("notification request failed")
)

// NotificationRequest is the payload for creating a onesignal notification.
// Either TemplateID or Headings/Contents is set, not both.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// OneSignalClient is a thin client of the onesignal REST API
type OneSignalClient struct {
	URL    string
	apiKey string
	client *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		URL:    defaultURL,
		apiKey: viper.GetString("onesignal.key"),
		client: client,
	}
}

// SendNotification submits a notification creation request.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", errRequestFailed, resp.StatusCode)
	}

	return nil
}
