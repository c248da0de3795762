package alert

import (
	"errors"
	"strings"
	"testing"

	"miner-radar.klederson.com/internal/notify"
)

func TestSettings_Test(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		enabled   bool
		wantErr   error
		wantTitle string
		wantIn    string
	}{
		{
			name:      "disabled wins over missing details",
			settings:  Settings{EmailEnabled: true, SMSEnabled: true},
			enabled:   false,
			wantErr:   ErrAlertsDisabled,
			wantTitle: "Alerts are disabled",
		},
		{
			name:      "email checked before phone",
			settings:  Settings{EmailEnabled: true, SMSEnabled: true},
			enabled:   true,
			wantErr:   ErrEmailMissing,
			wantTitle: "No email address entered",
		},
		{
			name:      "phone missing",
			settings:  Settings{EmailEnabled: true, SMSEnabled: true, Email: "ops@example.com"},
			enabled:   true,
			wantErr:   ErrPhoneMissing,
			wantTitle: "No mobile number entered",
		},
		{
			name:      "email recipient preferred",
			settings:  Settings{EmailEnabled: true, SMSEnabled: true, Email: "ops@example.com", Phone: "09123456789"},
			enabled:   true,
			wantTitle: "Test alert sent",
			wantIn:    "ops@example.com",
		},
		{
			name:      "sms only",
			settings:  Settings{SMSEnabled: true, Phone: "09123456789"},
			enabled:   true,
			wantTitle: "Test alert sent",
			wantIn:    "09123456789",
		},
		{
			name:      "no channels still succeeds",
			settings:  Settings{},
			enabled:   true,
			wantTitle: "Test alert sent",
		},
		{
			name:      "disabled email channel ignores empty address",
			settings:  Settings{EmailEnabled: false, SMSEnabled: true, Phone: "555"},
			enabled:   true,
			wantTitle: "Test alert sent",
			wantIn:    "555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.settings.Test(tt.enabled)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if n.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", n.Title, tt.wantTitle)
			}
			wantVariant := notify.VariantDefault
			if tt.wantErr != nil {
				wantVariant = notify.VariantDestructive
			}
			if n.Variant != wantVariant {
				t.Errorf("variant = %v, want %v", n.Variant, wantVariant)
			}
			if tt.wantIn != "" && !strings.Contains(n.Description, tt.wantIn) {
				t.Errorf("description %q should mention %q", n.Description, tt.wantIn)
			}
		})
	}
}

func TestSettings_Save(t *testing.T) {
	s := DefaultSettings()

	n, err := s.Save(true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n.Title != "Alert settings saved" || n.Variant != notify.VariantDefault {
		t.Errorf("unexpected notification %+v", n)
	}

	if _, err := s.Save(false); !errors.Is(err, ErrAlertsDisabled) {
		t.Errorf("expected ErrAlertsDisabled, got %v", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.EmailEnabled || s.SMSEnabled || s.Email != "" || s.Phone != "" {
		t.Errorf("unexpected defaults %+v", s)
	}
}
