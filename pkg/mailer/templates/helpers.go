package templates

import (
	"strings"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithUserID(id int) Option { return func(d *EmailData) { d.UserID = id } }

func WithDisplayName(name string) Option {
	return func(d *EmailData) {
		if s := strings.TrimSpace(name); s != "" {
			d.DisplayName = s
		}
	}
}

// NewBaseEmailData fills the common fields, then applies opts.
func NewBaseEmailData(appName, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,
		AppName:        appName,
		DisplayName:    name,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(appName, name, email string, opts ...Option) map[string]any {
	d := NewBaseEmailData(appName, Welcome, name, email, opts...)
	return ToMap(d)
}
