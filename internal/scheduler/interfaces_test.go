package scheduler

type lifecycleManager interface {
	interviewLifecycle
}
