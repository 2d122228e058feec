package domain_test

import (
	"testing"
	"time"

	"pustaka/internal/modules/account/domain"
)

func TestGenderValidate(t *testing.T) {
	t.Parallel()
	if err := domain.GenderMale.Validate(); err != nil {
		t.Fatalf("male label should be valid: %v", err)
	}
	if err := domain.GenderFemale.Validate(); err != nil {
		t.Fatalf("female label should be valid: %v", err)
	}
	if err := domain.Gender("other").Validate(); err == nil {
		t.Fatalf("unknown label should be rejected")
	}
}

func TestAdminSessionExpiry(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	session := domain.AdminSession{Email: "admin@desa.id", LoggedInAt: start, LastActivityAt: start}

	if session.Expired(start.Add(29*time.Minute), 30*time.Minute) {
		t.Fatalf("session should survive inside the window")
	}
	if !session.Expired(start.Add(31*time.Minute), 30*time.Minute) {
		t.Fatalf("session should expire after the window")
	}

	session.Touch(start.Add(29 * time.Minute))
	if session.Expired(start.Add(58*time.Minute), 30*time.Minute) {
		t.Fatalf("touch should reset the window")
	}
}
