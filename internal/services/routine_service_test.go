package services

import (
	"errors"
	"testing"
	"time"

	"github.com/strandapp/strand/internal/models"
)

func TestNormalizeRoutineInputDefaults(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	normalized, err := NormalizeRoutineInput(RoutineInput{}, now, time.UTC)
	if err != nil {
		t.Fatalf("NormalizeRoutineInput() unexpected error: %v", err)
	}
	if normalized.Name != UntitledRoutineName {
		t.Fatalf("expected default name, got %q", normalized.Name)
	}
	if normalized.Frequency != models.FrequencyDaily {
		t.Fatalf("expected daily frequency, got %q", normalized.Frequency)
	}
	if normalized.TimeOfDay != DefaultTimeOfDay {
		t.Fatalf("expected default time of day, got %q", normalized.TimeOfDay)
	}
	if normalized.AnchorDate == nil || normalized.AnchorDate.Format("2006-01-02") != "2025-06-15" {
		t.Fatalf("expected anchor defaulted to today, got %v", normalized.AnchorDate)
	}
	if normalized.AnchorDate.Hour() != 0 {
		t.Fatalf("anchor not normalized to midnight: %s", normalized.AnchorDate.Format(time.RFC3339))
	}
}

func TestNormalizeRoutineInputLowercasesFrequency(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	normalized, err := NormalizeRoutineInput(RoutineInput{Name: "Mask", Frequency: "  WEEKLY "}, now, time.UTC)
	if err != nil {
		t.Fatalf("NormalizeRoutineInput() unexpected error: %v", err)
	}
	if normalized.Frequency != models.FrequencyWeekly {
		t.Fatalf("expected weekly, got %q", normalized.Frequency)
	}
}

func TestNormalizeRoutineInputRejectsUnknownFrequency(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	_, err := NormalizeRoutineInput(RoutineInput{Name: "Mask", Frequency: "fortnightly"}, now, time.UTC)
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestNormalizeRoutineInputKeepsFreeFormTimeOfDay(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	normalized, err := NormalizeRoutineInput(RoutineInput{Name: "Oil", TimeOfDay: "  8:00 PM  "}, now, time.UTC)
	if err != nil {
		t.Fatalf("NormalizeRoutineInput() unexpected error: %v", err)
	}
	if normalized.TimeOfDay != "8:00 PM" {
		t.Fatalf("time of day rewritten: %q", normalized.TimeOfDay)
	}
}
