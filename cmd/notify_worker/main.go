package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/config"
	"github.com/oksasatya/user-directory/internal/application"
	"github.com/oksasatya/user-directory/pkg/helpers"
	"github.com/oksasatya/user-directory/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; notify worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, ch, err := helpers.DialQueue(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	// prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	if cfg.MailgunAPIBase != "" {
		mg.WithAPIBase(cfg.MailgunAPIBase)
	}
	notifier := application.NewNotifier(mg, cfg.AppName, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			switch notifier.Handle(ctx, msg.Body) {
			case application.Reject:
				_ = msg.Nack(false, false)
			case application.Requeue:
				_ = msg.Nack(false, true)
			default:
				_ = msg.Ack(false)
			}
		}
		close(done)
	}()

	helpers.LogInfo(logger, "notify worker listening", logrus.Fields{"queue": cfg.RabbitMQEventsQueue})
	<-stop
	logger.Info("shutting down...")
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
