package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"glowstudio/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue schedules appointment reminders on asynq. It satisfies the
// booking service's ReminderScheduler.
type ReminderQueue struct {
	Client *asynq.Client
	Lead   time.Duration // how long before the slot the reminder fires
}

func (q *ReminderQueue) ScheduleReminder(booking models.Booking) error {
	start, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for booking %s: %w", booking.ID, err)
	}

	fireAt := start.Add(-q.Lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		BookingID:     booking.ID,
		ServiceName:   booking.Service.Name,
		StaffName:     booking.Staff.Name,
		Date:          booking.Date,
		Time:          booking.Time,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := q.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
