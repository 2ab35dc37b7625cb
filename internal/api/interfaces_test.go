package api

type schedulerService interface {
	service
}
