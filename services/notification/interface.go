package notification

import "glowstudio/models"

// NotificationService delivers client-facing notices.
type NotificationService interface {
	SendReminder(payload models.ReminderPayload) error
}
