package domain

// Stats summarizes a task collection.
type Stats struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Remaining int `json:"remaining" yaml:"remaining"`
}

// ComputeStats derives Stats from tasks.
func ComputeStats(tasks []Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Remaining = stats.Total - stats.Completed
	return stats
}
