package main

import (
	"encoding/hex"
	"time"

	log "github.com/sirupsen/logrus"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"cookie-delivery-system/activities"
	"cookie-delivery-system/calendar"
	"cookie-delivery-system/codec"
	"cookie-delivery-system/config"
	"cookie-delivery-system/haiku"
	"cookie-delivery-system/mailer"
	"cookie-delivery-system/store"
	"cookie-delivery-system/workflows"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	keyBytes, generated, err := cfg.EncryptionKeyBytes()
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare encryption key")
	}
	if generated {
		log.Warnf("Generated encryption key: %s", hex.EncodeToString(keyBytes))
		log.Warn("Set ENCRYPTION_KEY environment variable to use this key in production")
	}

	dataConverter, err := codec.NewEncryptionDataConverter(keyBytes)
	if err != nil {
		log.WithError(err).Fatal("Failed to create encryption data converter")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).Fatal("Failed to resolve business timezone")
	}

	c, err := client.Dial(client.Options{
		HostPort:      cfg.TemporalAddress,
		DataConverter: dataConverter,
	})
	if err != nil {
		log.WithError(err).Fatal("Unable to create Temporal client")
	}
	defer c.Close()

	// Backend selection is config-driven; only the in-memory reference
	// backend ships here. The streaming-buffer window makes freshly seeded
	// rows behave like rows still inside the warehouse's ingestion buffer.
	if cfg.OrderBackend != "memory" {
		log.Fatalf("Unknown order backend: %s", cfg.OrderBackend)
	}
	orderStore := store.NewMemoryOrderStore(cfg.BufferWindow)
	for _, o := range store.SampleOrders(time.Now().UTC()) {
		orderStore.Insert(o)
	}
	cal := calendar.NewMemoryCalendar(loc)
	mail := mailer.NewMemoryMailer(cfg.BusinessEmail)

	w := worker.New(c, cfg.TaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize:     100,
		MaxConcurrentWorkflowTaskExecutionSize: 50,
	})

	w.RegisterWorkflow(workflows.DeliveryWorkflow)

	act := activities.New(orderStore, cal, mail, haiku.NewTemplateGenerator(), loc)
	w.RegisterActivity(act.FetchPendingOrder)
	w.RegisterActivity(act.GetDeliverySchedule)
	w.RegisterActivity(act.CheckSlotAvailability)
	w.RegisterActivity(act.ScheduleDelivery)
	w.RegisterActivity(act.WriteConfirmationHaiku)
	w.RegisterActivity(act.SendConfirmationEmail)
	w.RegisterActivity(act.UpdateOrderStatus)

	log.Info("Starting Temporal worker...")
	log.Infof("Temporal address: %s", cfg.TemporalAddress)
	log.Infof("Task queue: %s", cfg.TaskQueue)
	log.Infof("Business calendar: %s", cfg.CalendarID)
	log.Infof("Business timezone: %s", cfg.Timezone)
	log.Infof("Streaming buffer window: %s", cfg.BufferWindow)
	log.Info("Registered workflows: DeliveryWorkflow")
	log.Info("Encryption: Enabled")

	if err := w.Run(worker.InterruptCh()); err != nil {
		log.WithError(err).Fatal("Unable to start worker")
	}
}
