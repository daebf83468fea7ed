package booking

import (
	"fmt"

	"hourlyride/models"
)

// BufferMinutes is the turnaround window reserved after each booking before
// the vehicle can be dispatched again.
const BufferMinutes = 90

// CheckSlot evaluates a requested interval against existing bookings on the
// same date. Each existing booking blocks its own interval plus the
// turnaround buffer after its end.
func CheckSlot(startTime, endTime string, existing []models.Booking) (models.AvailabilityResult, error) {
	requestedStart, err := TimeToMinutes(startTime)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	requestedEnd, err := TimeToMinutes(endTime)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	for _, b := range existing {
		bookingStart, err := TimeToMinutes(b.StartTime)
		if err != nil {
			continue // skip malformed records rather than failing the check
		}
		bookingEnd, err := TimeToMinutes(b.EndTime)
		if err != nil {
			continue
		}
		bookingEndWithBuffer := bookingEnd + BufferMinutes

		if requestedEnd <= bookingStart || requestedStart >= bookingEndWithBuffer {
			continue
		}

		return models.AvailabilityResult{
			Available: false,
			Message: fmt.Sprintf(
				"Time slot conflicts with existing booking. Vehicle available after %s",
				MinutesToTime(bookingEndWithBuffer),
			),
		}, nil
	}

	return models.AvailabilityResult{Available: true, Message: "Time slot is available"}, nil
}
