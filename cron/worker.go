package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"divinedetail/config"
	bookingRepo "divinedetail/database/repository/booking"
	"divinedetail/models"
	"divinedetail/services/notification"
	"divinedetail/services/tasks"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(repo, notifSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(repo bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] booking %s not found: %v", p.BookingID, err)
			return err
		}
		// A booking cancelled after confirmation gets no reminder.
		if booking.BookingStatus != models.BookingStatusConfirmed {
			log.Printf("[ReminderHandler] booking %s no longer confirmed, skipping", p.BookingID)
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, *booking); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}
