package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/strandapp/strand/internal/models"
)

// Earlier versions of the journal wrote goal and routine records under
// shifting key names. The candidate lists below are ordered: the first key
// present in a record wins, regardless of what later keys hold. That order
// is a compatibility contract with historical data and must not change.
var (
	goalTitleKeys       = []string{"title", "goal_title", "name"}
	goalDescriptionKeys = []string{"description", "goal_description", "notes"}
	goalStartKeys       = []string{"start_date", "goal_start_date", "start"}
	goalEndKeys         = []string{"end_date", "goal_end_date", "target_date", "end"}
	goalProgressKeys    = []string{"progress", "goal_progress", "percent"}

	routineNameKeys        = []string{"name", "title", "routine_title"}
	routineTimeKeys        = []string{"time_of_day", "time", "routine_time"}
	routineFrequencyKeys   = []string{"frequency", "routine_frequency"}
	routineProductKeys     = []string{"products", "routine_products"}
	routineDescriptionKeys = []string{"description", "routine_description", "notes"}
)

const (
	UntitledGoalPlaceholder = "Untitled Goal"
	UntitledRoutineName     = "Routine"
	DefaultTimeOfDay        = "08:00"
)

type LegacyRecord map[string]any

// ResolveGoal maps a loose historical goal record onto the canonical model.
// Absent fields degrade to defaults; nothing here returns an error.
func ResolveGoal(record LegacyRecord, location *time.Location) models.Goal {
	goal := models.Goal{
		Title:       resolveString(record, goalTitleKeys, UntitledGoalPlaceholder),
		Description: resolveString(record, goalDescriptionKeys, ""),
		Progress:    clampProgress(resolveInt(record, goalProgressKeys, 0)),
	}

	if raw, ok := resolveRawString(record, goalStartKeys); ok {
		if start, parsed := ParseLenientDate(raw, location); parsed {
			goal.StartDate = &start
		}
	}
	if raw, ok := resolveRawString(record, goalEndKeys); ok {
		if end, parsed := ParseLenientDate(raw, location); parsed {
			goal.EndDate = &end
		}
	}

	return goal
}

// ResolveRoutine maps a loose historical routine record onto the canonical
// model. The anchor date for frequency arithmetic is filled in by the caller.
func ResolveRoutine(record LegacyRecord) models.Routine {
	routine := models.Routine{
		Name:        resolveString(record, routineNameKeys, UntitledRoutineName),
		TimeOfDay:   resolveString(record, routineTimeKeys, DefaultTimeOfDay),
		Description: resolveString(record, routineDescriptionKeys, ""),
		Products:    resolveStringList(record, routineProductKeys),
	}

	frequency := strings.ToLower(resolveString(record, routineFrequencyKeys, models.FrequencyDaily))
	if !models.IsValidFrequency(frequency) {
		frequency = models.FrequencyDaily
	}
	routine.Frequency = frequency

	return routine
}

func resolveRawString(record LegacyRecord, keys []string) (string, bool) {
	for _, key := range keys {
		value, present := record[key]
		if !present {
			continue
		}
		text := stringifyScalar(value)
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, true
	}
	return "", false
}

func resolveString(record LegacyRecord, keys []string, fallback string) string {
	if value, ok := resolveRawString(record, keys); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func resolveInt(record LegacyRecord, keys []string, fallback int) int {
	for _, key := range keys {
		value, present := record[key]
		if !present {
			continue
		}
		switch typed := value.(type) {
		case int:
			return typed
		case int64:
			return int(typed)
		case float64:
			return int(typed)
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

func resolveStringList(record LegacyRecord, keys []string) []string {
	for _, key := range keys {
		value, present := record[key]
		if !present {
			continue
		}
		switch typed := value.(type) {
		case []string:
			return trimStringList(typed)
		case []any:
			items := make([]string, 0, len(typed))
			for _, item := range typed {
				items = append(items, stringifyScalar(item))
			}
			return trimStringList(items)
		case string:
			return trimStringList(strings.Split(typed, ","))
		}
	}
	return []string{}
}

func trimStringList(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		cleaned := strings.TrimSpace(value)
		if cleaned == "" {
			continue
		}
		trimmed = append(trimmed, cleaned)
	}
	return trimmed
}

func stringifyScalar(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
