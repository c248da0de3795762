package alert

import (
	"errors"
	"fmt"

	"miner-radar.klederson.com/internal/notify"
)

var (
	ErrAlertsDisabled = errors.New("alerts are disabled")
	ErrEmailMissing   = errors.New("email address is missing")
	ErrPhoneMissing   = errors.New("phone number is missing")
)

// Settings are the user's alert channel preferences. The master switch is
// the session's alert flag and is passed in where it matters. Nothing is
// ever delivered over either channel.
type Settings struct {
	EmailEnabled bool
	SMSEnabled   bool
	Email        string
	Phone        string
}

// DefaultSettings has email on and SMS off, with no contact details.
func DefaultSettings() Settings {
	return Settings{EmailEnabled: true}
}

// Check runs the test alert guards in order: master switch, email, phone.
// Contact details are only checked for enabled channels and only for
// emptiness.
func (s Settings) Check(enabled bool) error {
	switch {
	case !enabled:
		return ErrAlertsDisabled
	case s.EmailEnabled && s.Email == "":
		return ErrEmailMissing
	case s.SMSEnabled && s.Phone == "":
		return ErrPhoneMissing
	}
	return nil
}

// Recipient is the contact named in a test alert: the email address when
// email is on, otherwise the phone number.
func (s Settings) Recipient() string {
	if s.EmailEnabled {
		return s.Email
	}
	return s.Phone
}

// Test simulates a test alert and returns the notification to show. A
// failed guard yields a destructive notification together with the guard
// error.
func (s Settings) Test(enabled bool) (notify.Notification, error) {
	if err := s.Check(enabled); err != nil {
		return Failure(err), err
	}
	return notify.Notification{
		Title:       "Test alert sent",
		Description: fmt.Sprintf("A test alert was sent to %s.", s.Recipient()),
	}, nil
}

// Save acknowledges the settings. It is refused while alerts are disabled.
func (s Settings) Save(enabled bool) (notify.Notification, error) {
	if !enabled {
		return Failure(ErrAlertsDisabled), ErrAlertsDisabled
	}
	return notify.Notification{
		Title:       "Alert settings saved",
		Description: "Alert system settings were saved successfully.",
	}, nil
}

// Failure maps a guard error to its destructive notification.
func Failure(err error) notify.Notification {
	n := notify.Notification{Variant: notify.VariantDestructive}
	switch {
	case errors.Is(err, ErrAlertsDisabled):
		n.Title = "Alerts are disabled"
		n.Description = "Please enable alerts first."
	case errors.Is(err, ErrEmailMissing):
		n.Title = "No email address entered"
		n.Description = "Please enter an email address."
	case errors.Is(err, ErrPhoneMissing):
		n.Title = "No mobile number entered"
		n.Description = "Please enter a mobile number."
	default:
		n.Title = "Alert failed"
		n.Description = err.Error()
	}
	return n
}
