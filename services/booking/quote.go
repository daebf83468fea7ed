package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// HourlyRate is the service rate in USD per billed hour.
	HourlyRate = 75.0
	// MinHours is the minimum billable duration.
	MinHours = 2.0
	// DepositRate is the share of the total collected up front.
	DepositRate = 0.5

	minutesPerDay = 24 * 60
)

// ErrZeroDuration is returned when start and end resolve to the same minute.
// The midnight-wrap rule only applies when end is strictly earlier than
// start, so equal times mean an empty interval, not a full day.
var ErrZeroDuration = errors.New("start and end time are identical")

// Quote is the derived price breakdown for a selected time range.
type Quote struct {
	DurationHours float64 `json:"duration_hours"` // Raw elapsed hours
	BillingHours  float64 `json:"billing_hours"`  // Raw hours with the minimum floor applied
	TotalPrice    float64 `json:"total_price"`
	DepositAmount float64 `json:"deposit_amount"`
}

// TimeToMinutes converts a 12-hour clock string like "09:00 AM" to minutes
// since midnight. 12 AM maps to hour 0 and 12 PM stays 12.
func TimeToMinutes(value string) (int, error) {
	timePart, period, found := strings.Cut(strings.TrimSpace(value), " ")
	if !found {
		return 0, fmt.Errorf("malformed time %q: missing AM/PM suffix", value)
	}

	hourPart, minutePart, found := strings.Cut(timePart, ":")
	if !found {
		return 0, fmt.Errorf("malformed time %q: missing minutes", value)
	}

	hours, err := strconv.Atoi(hourPart)
	if err != nil || hours < 1 || hours > 12 {
		return 0, fmt.Errorf("malformed time %q: bad hour", value)
	}
	minutes, err := strconv.Atoi(minutePart)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed time %q: bad minute", value)
	}

	switch period {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	default:
		return 0, fmt.Errorf("malformed time %q: period must be AM or PM", value)
	}

	return hours*60 + minutes, nil
}

// MinutesToTime converts minutes since midnight to a string like "09:00 AM".
func MinutesToTime(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hours := minutes / 60
	mins := minutes % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	if hours == 0 {
		hours = 12
	} else if hours > 12 {
		hours -= 12
	}

	return fmt.Sprintf("%02d:%02d %s", hours, mins, period)
}

// RawDurationHours returns the elapsed hours between two clock times. An end
// earlier than the start is read as crossing midnight into the next day.
func RawDurationHours(startTime, endTime string) (float64, error) {
	startMinutes, err := TimeToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	endMinutes, err := TimeToMinutes(endTime)
	if err != nil {
		return 0, err
	}

	diff := endMinutes - startMinutes
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60, nil
}

// ComputeQuote derives the price breakdown for a time range. It is pure:
// identical inputs always produce identical output. A zero-length range
// yields ErrZeroDuration and no quote.
func ComputeQuote(startTime, endTime string) (Quote, error) {
	duration, err := RawDurationHours(startTime, endTime)
	if err != nil {
		return Quote{}, err
	}
	if duration == 0 {
		return Quote{}, ErrZeroDuration
	}

	billing := duration
	if billing < MinHours {
		billing = MinHours
	}
	total := billing * HourlyRate

	return Quote{
		DurationHours: duration,
		BillingHours:  billing,
		TotalPrice:    total,
		DepositAmount: total * DepositRate,
	}, nil
}
