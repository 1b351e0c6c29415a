package slot

import "fmt"

// ===============================
// Day grid & rate card
// ===============================

// The turf runs a fixed hourly grid: 18 one-hour slots per day.
const (
	OpeningHour = 6
	ClosingHour = 24
)

// Rates by the hour the slot starts.
const (
	MorningRate = 499 // 06:00 – 10:00
	DaytimeRate = 399 // 10:00 – 17:00
	EveningRate = 649 // 17:00 – 24:00
)

func PriceFor(startHour int) int {
	switch {
	case startHour < 10:
		return MorningRate
	case startHour < 17:
		return DaytimeRate
	default:
		return EveningRate
	}
}

// TimeLabel is the window label stored on the slot, e.g. "06:00 - 07:00".
// Zero-padding keeps lexicographic order equal to chronological order.
func TimeLabel(startHour int) string {
	return fmt.Sprintf("%02d:00 - %02d:00", startHour, startHour+1)
}
