package appointment

import "time"

const (
	LookaheadDays = 14
	LunchHour     = 13

	// SlotLayout is ISO-8601 local date-time, without offset.
	SlotLayout = "2006-01-02T15:04:05"
)

type Rules struct {
	StartHour      int
	EndHour        int
	SessionMinutes int
}

// Valid rejects schedules that could never emit a slot.
func (r Rules) Valid() bool {
	return r.StartHour >= 0 && r.EndHour <= 23 &&
		r.StartHour < r.EndHour &&
		r.SessionMinutes > 0
}

type Slot struct {
	Start time.Time
}

func (s Slot) String() string {
	return s.Start.Format(SlotLayout)
}

func SlotStrings(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
