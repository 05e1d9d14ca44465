package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/pkg/mailer"
	mailtpl "github.com/oksasatya/user-directory/pkg/mailer/templates"
)

// Decision tells the consumer how to settle a delivery.
type Decision int

const (
	Ack     Decision = iota
	Reject           // drop, never redeliver
	Requeue          // transient failure, redeliver
)

func (d Decision) String() string {
	switch d {
	case Reject:
		return "reject"
	case Requeue:
		return "requeue"
	default:
		return "ack"
	}
}

// Notifier turns user events into mail. Only user.created sends anything.
type Notifier struct {
	Mailer  mailer.Sender
	AppName string
	Logger  *logrus.Logger
	Timeout time.Duration
}

func NewNotifier(sender mailer.Sender, appName string, logger *logrus.Logger) *Notifier {
	return &Notifier{Mailer: sender, AppName: appName, Logger: logger, Timeout: 15 * time.Second}
}

// Handle decodes one event body and delivers the matching mail.
func (n *Notifier) Handle(ctx context.Context, body []byte) Decision {
	var ev UserEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		n.log().WithError(err).Warn("bad event message")
		return Reject
	}
	entry := n.log().WithFields(logrus.Fields{"event": ev.Type, "user_id": ev.UserID})

	if ev.Type != EventUserCreated {
		entry.Debug("event needs no mail")
		return Ack
	}

	job, err := n.welcomeJob(ev)
	if err != nil {
		entry.WithError(err).Warn("cannot build welcome mail")
		return Reject
	}

	c, cancel := context.WithTimeout(ctx, n.Timeout)
	defer cancel()
	if err := n.Mailer.Send(c, job.To, job.Subject, job.Text, job.HTML); err != nil {
		entry.WithError(err).Error("send failed")
		return Requeue
	}
	entry.Info("welcome mail sent")
	return Ack
}

func (n *Notifier) welcomeJob(ev UserEvent) (mailer.EmailJob, error) {
	if ev.Email == "" {
		return mailer.EmailJob{}, fmt.Errorf("event for user %d: %w", ev.UserID, mailer.ErrNoRecipient)
	}
	job := mailer.EmailJob{
		To:       ev.Email,
		Template: mailtpl.Welcome,
		Data: mailtpl.NewWelcomeData(n.AppName, ev.Name, ev.Email,
			mailtpl.WithUserID(ev.UserID),
			mailtpl.WithDisplayName(ev.DisplayName),
			mailtpl.WithTime(ev.OccurredAt),
		),
	}
	if err := job.Build(); err != nil {
		return mailer.EmailJob{}, err
	}
	return job, nil
}

func (n *Notifier) log() *logrus.Logger {
	if n.Logger == nil {
		return logrus.StandardLogger()
	}
	return n.Logger
}
