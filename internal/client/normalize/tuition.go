package normalize

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
)

// Tuition maps a raw tuition payload. Status defaults to available and
// may arrive as tStatus or status.
func Tuition(raw map[string]any) models.Tuition {
	if raw == nil {
		raw = map[string]any{}
	}
	t := models.Tuition{
		TuitionID:       toInt64(firstPresent(raw, "tuitionId", "id")),
		Subject:         strings.TrimSpace(toString(raw["subject"])),
		Clazz:           strings.TrimSpace(toString(firstPresent(raw, "clazz", "classLevel", "class"))),
		Salary:          toFloat(raw["salary"]),
		DaysWeek:        int(toInt64(raw["daysWeek"])),
		Status:          models.TuitionStatus(strings.ToLower(toString(firstPresent(raw, "tStatus", "status")))),
		Location:        Location(firstPresent(raw, "location", "locationId")).Name,
		ContactPhone:    toString(firstPresent(raw, "contactPhone", "phone")),
		TutorPreference: toString(raw["tutorPreference"]),
		AddressURL:      toString(raw["addressUrl"]),
		CanSwap:         toBool(raw["canSwap"]),
		SwapDetails:     toString(raw["swapDetails"]),
		CreatedAt:       toString(firstPresent(raw, "createdAt", "created_at")),
		User:            user(firstPresent(raw, "user", "owner")),
	}
	if t.Status == "" {
		t.Status = models.TuitionAvailable
	}
	return t
}

func Tuitions(raw []any) []models.Tuition {
	out := make([]models.Tuition, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, Tuition(m))
		}
	}
	return out
}

func toFloat(v any) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(toString(v)), 64)
	if err != nil {
		return 0
	}
	return f
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	}
	return false
}
