package scheduler

import (
	"sort"

	"github.com/alexanderramin/semestra/internal/domain"
)

// BuildQueue selects the tasks the placer will attempt, in order: pending
// tasks only, earliest deadline first. The sort is stable so tasks with
// equal deadlines keep their input order run-to-run.
func BuildQueue(tasks []domain.Task) []domain.Task {
	queue := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Schedulable() {
			queue = append(queue, t)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Deadline.Before(queue[j].Deadline)
	})
	return queue
}
