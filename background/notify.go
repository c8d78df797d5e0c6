package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/foundernet/ecosystem-api/external/onesignal"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"en": "en",
	"hi": "hi",
}

// notifyAccountsByText will consolidate account numbers and submit
// notification requests in batches of 100 tag filters
func (m *BackgroundManager) notifyAccountsByText(accountNumbers []string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{}

	flush := func() error {
		if len(filters) == 0 {
			return nil
		}
		req := &onesignal.NotificationRequest{
			AppID:          viper.GetString("onesignal.appid"),
			Headings:       headings,
			Contents:       contents,
			Filters:        filters,
			Data:           data,
			LocalChannelID: "important_alert",
		}
		filters = []map[string]string{}
		return m.onesignal.SendNotification(context.Background(), req)
	}

	for i, a := range accountNumbers {
		if i%100 != 0 {
			filters = append(filters, map[string]string{"operator": "OR"})
		}
		filters = append(filters, map[string]string{
			"field":    "tag",
			"key":      "account_number",
			"relation": "=",
			"value":    a,
		})

		if i%100 == 99 {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}
