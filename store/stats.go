package store

import "github.com/josephgoksu/todolist/models"

// Statistics aggregates the store's tasks.
type Statistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	// CompletionRate is the percentage of completed tasks, 0 for an empty store.
	CompletionRate float64                     `json:"completionRate"`
	ByPriority     map[models.TaskPriority]int `json:"byPriority"`
	Overdue        int                         `json:"overdue"`
	// LatestCompletion is the most recent completion date, nil when no task
	// carries a completion timestamp.
	LatestCompletion *models.Date `json:"latestCompletion"`
}

// Statistics computes counts, completion rate, priority distribution,
// overdue count and the latest completion date.
func (s *Store) Statistics() Statistics {
	now := s.now()
	st := Statistics{
		Total:      len(s.tasks),
		ByPriority: make(map[models.TaskPriority]int, len(models.Priorities)),
	}
	for _, p := range models.Priorities {
		st.ByPriority[p] = 0
	}

	for _, t := range s.tasks {
		switch t.Status {
		case models.StatusPending:
			st.Pending++
		case models.StatusCompleted:
			st.Completed++
		}
		st.ByPriority[t.Priority]++
		if t.IsOverdue(now) {
			st.Overdue++
		}
		if t.CompletedAt != nil && !t.CompletedAt.IsZero() {
			d := t.CompletedAt.Date()
			if st.LatestCompletion == nil || d.After(*st.LatestCompletion) {
				st.LatestCompletion = &d
			}
		}
	}

	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}
