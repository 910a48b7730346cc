package notification

import (
	"glowstudio/models"
	"glowstudio/utils"

	"go.uber.org/zap"
)

// LogNotificationService writes reminders to the application log. It stands
// in for a real delivery channel (SMS, messenger webhook) in deployments that
// have none configured.
type LogNotificationService struct{}

func (s *LogNotificationService) SendReminder(payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	logger.Info("appointment reminder",
		zap.String("bookingID", payload.BookingID),
		zap.String("service", payload.ServiceName),
		zap.String("staff", payload.StaffName),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
		zap.String("customer", payload.CustomerName),
		zap.String("phone", payload.CustomerPhone),
	)
	return nil
}
