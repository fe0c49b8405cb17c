package model

// Task is one todo entry. The list holds tasks by pointer; a task's identity
// is that pointer, not its text.
type Task struct {
	Text string `json:"text" toml:"text"`
	Done bool   `json:"done" toml:"done"`
}

// DefaultTasks returns the tasks a fresh list starts with.
func DefaultTasks() []Task {
	return []Task{
		{Text: "Съесть яблоко"},
		{Text: "Погладить котика"},
		{Text: "Лечь спать"},
	}
}

// Stats counts done and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
