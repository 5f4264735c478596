package game

// TaskScheduler runs one-shot callbacks after a delay, driven by the
// scene's Update tick rather than wall-clock timers. Everything happens
// on the game loop goroutine: no locks, no callbacks after the owner
// stops pumping Update, and CancelAll gives scenes a guaranteed
// teardown point for every delay they ever scheduled.
type TaskScheduler struct {
	tasks []*ScheduledTask
}

// ScheduledTask is a handle to a pending one-shot callback.
type ScheduledTask struct {
	remaining float64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel prevents the task from firing. Cancelling a task that already
// fired or was cancelled is a no-op.
func (t *ScheduledTask) Cancel() {
	t.cancelled = true
}

// Fired reports whether the task's callback has run.
func (t *ScheduledTask) Fired() bool {
	return t.fired
}

// NewTaskScheduler creates an empty scheduler.
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{}
}

// After schedules fn to run once, delay seconds of Update time from
// now. A delay of zero fires on the next Update. The returned handle
// can cancel the task before it fires.
func (s *TaskScheduler) After(delay float64, fn func()) *ScheduledTask {
	task := &ScheduledTask{remaining: delay, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Update advances all pending tasks by deltaTime and fires the ones
// that are due, in scheduling order. Fired and cancelled tasks are
// removed.
func (s *TaskScheduler) Update(deltaTime float64) {
	current := s.tasks
	// Callbacks may schedule new tasks; those accumulate in s.tasks and
	// are merged back after the pass. New tasks never fire on the tick
	// that scheduled them, even with a zero delay.
	s.tasks = nil
	var still []*ScheduledTask
	for _, task := range current {
		if task.cancelled {
			continue
		}
		task.remaining -= deltaTime
		if task.remaining > 0 {
			still = append(still, task)
			continue
		}
		task.fired = true
		task.fn()
	}
	s.tasks = append(still, s.tasks...)
}

// Pending returns the number of tasks still waiting to fire.
func (s *TaskScheduler) Pending() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled && !task.fired {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending task. Scenes call this from Dispose.
func (s *TaskScheduler) CancelAll() {
	for _, task := range s.tasks {
		task.cancelled = true
	}
	s.tasks = nil
}
