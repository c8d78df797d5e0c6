package background

import (
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/foundernet/ecosystem-api/utils"
)

// localizedMessage renders a message in every supported notification
// language, keyed by the onesignal language code.
func localizedMessage(messageID string, data map[string]interface{}) map[string]string {
	messages := map[string]string{}

	for osCode, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)
		if text, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    messageID,
			TemplateData: data,
		}); err == nil {
			messages[osCode] = text
		}
	}

	return messages
}

// BroadcastNewHelp is a background job to notify the accounts near a freshly
// created help request. The request is re-checked so a request resolved
// before the job runs does not get announced.
func (m *BackgroundManager) BroadcastNewHelp(helpID, category string, accountNumbers []string) error {
	help, err := m.store.GetHelp(helpID)
	if err != nil {
		return err
	}
	if !help.IsOpen(time.Now()) {
		return nil
	}

	templateData := map[string]interface{}{
		"Category": category,
	}

	return m.notifyAccountsByText(accountNumbers,
		localizedMessage("notification.new_help.heading", templateData),
		localizedMessage("notification.new_help.content", templateData),
		map[string]interface{}{
			"notification_type": "BROADCAST_NEW_HELP",
			"help_id":           helpID,
		})
}

// NotifyHelpAccepted is a background job to tell a responder their response
// was accepted.
func (m *BackgroundManager) NotifyHelpAccepted(helpID string, accountNumber string) error {
	return m.notifyAccountsByText([]string{accountNumber},
		localizedMessage("notification.help_accepted.heading", nil),
		localizedMessage("notification.help_accepted.content", nil),
		map[string]interface{}{
			"notification_type": "NOTIFY_HELP_ACCEPTED",
			"help_id":           helpID,
		})
}

// NotifyNewConnection is a background job to tell an account somebody wants
// to connect.
func (m *BackgroundManager) NotifyNewConnection(connectionID, from, to string) error {
	templateData := map[string]interface{}{
		"From": from,
	}

	return m.notifyAccountsByText([]string{to},
		localizedMessage("notification.new_connection.heading", templateData),
		localizedMessage("notification.new_connection.content", templateData),
		map[string]interface{}{
			"notification_type": "NOTIFY_NEW_CONNECTION",
			"connection_id":     connectionID,
		})
}
