package usecase

// TaskDispatcher runs a task detached from the caller. The production
// dispatcher spawns a goroutine; tests substitute a synchronous one so
// that dispatched work finishes before assertions run.
type TaskDispatcher func(task func())

// AsyncDispatcher is the production dispatcher.
func AsyncDispatcher() TaskDispatcher {
	return func(task func()) {
		go task()
	}
}

// SyncDispatcher runs tasks inline. Test use only.
func SyncDispatcher() TaskDispatcher {
	return func(task func()) {
		task()
	}
}
