package hubsdk

import "time"

// Health classifies a project's schedule risk
const (
	HealthGreen  = "green"
	HealthYellow = "yellow"
	HealthRed    = "red"
)

const dateLayout = "2006-01-02"

// Utilization returns a resource's load as a fraction of its weekly
// capacity. A resource with no declared capacity reports zero.
func Utilization(r Resource) float64 {
	if r.WeeklyHours <= 0 {
		return 0
	}
	return r.CurrentLoad / r.WeeklyHours
}

// ProjectHealth classifies a project by comparing its progress against the
// elapsed share of its schedule. Any overdue high-priority task forces red;
// any other overdue task forces at least yellow. Progress lagging the elapsed
// ratio by more than 0.25 is red, by more than 0.10 yellow.
func ProjectHealth(p Project, tasks []Task, now time.Time) string {
	if p.Status == ProjectCompleted {
		return HealthGreen
	}

	overdue := false
	for _, t := range tasks {
		if t.ProjectID == nil || *t.ProjectID != p.ID {
			continue
		}
		if !taskOverdue(t, now) {
			continue
		}
		if t.Priority == PriorityHigh {
			return HealthRed
		}
		overdue = true
	}

	elapsed, ok := elapsedRatio(p.StartDate, p.EndDate, now)
	if ok {
		progress := float64(p.Progress) / 100
		if progress < elapsed-0.25 {
			return HealthRed
		}
		if progress < elapsed-0.10 {
			return HealthYellow
		}
	}

	if overdue {
		return HealthYellow
	}
	return HealthGreen
}

func taskOverdue(t Task, now time.Time) bool {
	if t.Status == TaskDone || t.EndDate == "" {
		return false
	}
	end, err := time.Parse(dateLayout, t.EndDate)
	if err != nil {
		return false
	}
	return now.After(end.AddDate(0, 0, 1))
}

// elapsedRatio returns how far into the project's schedule the given time
// sits, clamped to [0, 1]. It reports false when the date range is unusable.
func elapsedRatio(startDate, endDate string, now time.Time) (float64, bool) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil || !end.After(start) {
		return 0, false
	}
	ratio := now.Sub(start).Seconds() / end.Sub(start).Seconds()
	if ratio < 0 {
		return 0, true
	}
	if ratio > 1 {
		return 1, true
	}
	return ratio, true
}

// CalendarEntries projects a task list onto the calendar wire shape, sharing
// each task's id.
func CalendarEntries(tasks []Task) []Event {
	entries := make([]Event, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, eventFromTask(t))
	}
	return entries
}
