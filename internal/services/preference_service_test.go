package services

import (
	"errors"
	"testing"

	"github.com/strandapp/strand/internal/models"
)

func stringPtr(value string) *string {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}

func TestApplyPreferenceChangePartialUpdate(t *testing.T) {
	t.Parallel()

	preference := models.DefaultPreference(1)

	updated, err := ApplyPreferenceChange(preference, PreferenceChange{
		Theme:     stringPtr(models.ThemeDark),
		ActiveTab: stringPtr(models.TabCalendar),
	})
	if err != nil {
		t.Fatalf("ApplyPreferenceChange() unexpected error: %v", err)
	}
	if updated.Theme != models.ThemeDark {
		t.Fatalf("expected theme %q, got %q", models.ThemeDark, updated.Theme)
	}
	if updated.ActiveTab != models.TabCalendar {
		t.Fatalf("expected active tab %q, got %q", models.TabCalendar, updated.ActiveTab)
	}
	if updated.SidebarCollapsed {
		t.Fatalf("untouched sidebar flag changed")
	}
	if updated.RoutineVisibility != models.RoutineVisibilityAllDays {
		t.Fatalf("untouched routine visibility changed to %q", updated.RoutineVisibility)
	}
}

func TestApplyPreferenceChangeTogglesSidebar(t *testing.T) {
	t.Parallel()

	preference := models.DefaultPreference(1)

	updated, err := ApplyPreferenceChange(preference, PreferenceChange{SidebarCollapsed: boolPtr(true)})
	if err != nil {
		t.Fatalf("ApplyPreferenceChange() unexpected error: %v", err)
	}
	if !updated.SidebarCollapsed {
		t.Fatalf("expected sidebar collapsed")
	}

	reverted, err := ApplyPreferenceChange(updated, PreferenceChange{SidebarCollapsed: boolPtr(false)})
	if err != nil {
		t.Fatalf("ApplyPreferenceChange() unexpected error: %v", err)
	}
	if reverted.SidebarCollapsed {
		t.Fatalf("expected sidebar expanded after second toggle")
	}
}

func TestApplyPreferenceChangeRejectsInvalidEnums(t *testing.T) {
	t.Parallel()

	preference := models.DefaultPreference(1)

	testCases := []struct {
		change  PreferenceChange
		wantErr error
	}{
		{PreferenceChange{Theme: stringPtr("sepia")}, ErrInvalidTheme},
		{PreferenceChange{ActiveTab: stringPtr("dashboard")}, ErrInvalidActiveTab},
		{PreferenceChange{RoutineVisibility: stringPtr("sometimes")}, ErrInvalidRoutineVisibility},
	}

	for _, testCase := range testCases {
		if _, err := ApplyPreferenceChange(preference, testCase.change); !errors.Is(err, testCase.wantErr) {
			t.Fatalf("expected %v, got %v", testCase.wantErr, err)
		}
	}
}

func TestApplyPreferenceChangeRoutineVisibilityModes(t *testing.T) {
	t.Parallel()

	preference := models.DefaultPreference(1)

	filtered, err := ApplyPreferenceChange(preference, PreferenceChange{
		RoutineVisibility: stringPtr(models.RoutineVisibilityFrequencyFiltered),
	})
	if err != nil {
		t.Fatalf("ApplyPreferenceChange() unexpected error: %v", err)
	}
	if filtered.RoutineVisibility != models.RoutineVisibilityFrequencyFiltered {
		t.Fatalf("expected frequency-filtered, got %q", filtered.RoutineVisibility)
	}

	restored, err := ApplyPreferenceChange(filtered, PreferenceChange{
		RoutineVisibility: stringPtr(models.RoutineVisibilityAllDays),
	})
	if err != nil {
		t.Fatalf("ApplyPreferenceChange() unexpected error: %v", err)
	}
	if restored.RoutineVisibility != models.RoutineVisibilityAllDays {
		t.Fatalf("expected all-days, got %q", restored.RoutineVisibility)
	}
}
