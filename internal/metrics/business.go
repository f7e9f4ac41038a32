package metrics

import "goal-board-api/internal/domain"

// Entity labels for EntityCreatedTotal
const (
	EntityBoard       = "board"
	EntityCategory    = "category"
	EntityGoal        = "goal"
	EntityComment     = "comment"
	EntityParticipant = "participant"
)

// IncrementCreated increments the creation counter of an entity
func (m *Metrics) IncrementCreated(entity string) {
	m.safeExecute("IncrementCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// RecordCascade counts one lifecycle operation and the goals it archived
func (m *Metrics) RecordCascade(operation string, archivedGoals int64, err error) {
	m.safeExecute("RecordCascade", func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		m.CascadesTotal.WithLabelValues(operation, result).Inc()
		if err == nil && archivedGoals > 0 {
			m.CascadeArchivedGoals.Add(float64(archivedGoals))
		}
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetCategoriesTotal sets total categories gauge
func (m *Metrics) SetCategoriesTotal(count int64) {
	m.safeExecute("SetCategoriesTotal", func() {
		m.CategoriesTotal.Set(float64(count))
	})
}

// SetGoalsTotal sets the goal gauge of every status; statuses missing from counts are zeroed
func (m *Metrics) SetGoalsTotal(counts map[domain.GoalStatus]int64) {
	m.safeExecute("SetGoalsTotal", func() {
		for _, st := range []domain.GoalStatus{
			domain.GoalStatusToDo,
			domain.GoalStatusInProgress,
			domain.GoalStatusDone,
			domain.GoalStatusArchived,
		} {
			m.GoalsTotal.WithLabelValues(st.String()).Set(float64(counts[st]))
		}
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
