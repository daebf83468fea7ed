package booking

// TimeSlots is the fixed set of selectable clock times: 15-minute intervals
// covering a full day, 96 entries from "12:00 AM" to "11:45 PM".
var TimeSlots = buildTimeSlots()

var timeSlotSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(TimeSlots))
	for _, slot := range TimeSlots {
		set[slot] = struct{}{}
	}
	return set
}()

func buildTimeSlots() []string {
	slots := make([]string, 0, minutesPerDay/15)
	for minutes := 0; minutes < minutesPerDay; minutes += 15 {
		slots = append(slots, MinutesToTime(minutes))
	}
	return slots
}

// IsValidSlot reports whether the value is one of the selectable time slots.
func IsValidSlot(value string) bool {
	_, ok := timeSlotSet[value]
	return ok
}
