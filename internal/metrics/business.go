package metrics

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.ProjectCreatedTotal.Inc()
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.TaskCreatedTotal.Inc()
}

// IncrementIdeaCreated increments the idea creation counter
func (m *Metrics) IncrementIdeaCreated() {
	m.IdeaCreatedTotal.Inc()
}

// IncrementIdeaConverted increments the idea-to-project conversion counter
func (m *Metrics) IncrementIdeaConverted() {
	m.IdeaConvertedTotal.Inc()
}

// IncrementBadgeAwarded increments the badge award counter
func (m *Metrics) IncrementBadgeAwarded() {
	m.BadgesAwardedTotal.Inc()
}

// SetProjectsTotal sets the current project count gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.ProjectsTotal.Set(float64(count))
}

// SetTasksTotal sets the current task count gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.TasksTotal.Set(float64(count))
}

// SetIdeasTotal sets the current idea count gauge
func (m *Metrics) SetIdeasTotal(count int64) {
	m.IdeasTotal.Set(float64(count))
}
