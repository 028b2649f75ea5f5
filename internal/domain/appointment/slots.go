package appointment

import "time"

// GenerateSlots fabricates the open slots for the next LookaheadDays days
// after now. Every structurally valid slot is reported as free.
//
// The lunch skip always jumps exactly one hour, whatever the slot duration,
// so slots are not realigned after 13:00.
func GenerateSlots(now time.Time, rules Rules, svc ServiceType) []Slot {
	slots := []Slot{}

	duration := rules.DurationFor(svc)
	if duration <= 0 || !rules.Valid() {
		return slots
	}

	loc := now.Location()

	for i := 1; i <= LookaheadDays; i++ {
		day := now.AddDate(0, 0, i)

		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		cur := time.Date(day.Year(), day.Month(), day.Day(), rules.StartHour, 0, 0, 0, loc)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), rules.EndHour, 0, 0, 0, loc)

		for !cur.Add(duration).After(dayEnd) {
			// almoço
			if cur.Hour() == LunchHour {
				cur = cur.Add(time.Hour)
				continue
			}

			slots = append(slots, Slot{Start: cur})
			cur = cur.Add(duration)
		}
	}

	return slots
}
