package plan

import "github.com/lifebuddy/lifebuddy/internal/progress"

// taskLoadedMsg is sent when the task has been read from the store.
type taskLoadedMsg struct {
	Task *progress.Task
	Err  error
}

// actionDoneMsg is sent when a mark or regenerate call returns. Task may be
// set even when Err is, for a skip whose replacement plan failed.
type actionDoneMsg struct {
	Action string
	Task   *progress.Task
	Err    error
}
