package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/internal/scheduler"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, svc service, gatherer prometheus.Gatherer) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		BodyLimit:               cfg.HTTP.BodyLimit,
		Immutable:               true,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods: []string{
			fiber.MethodHead,
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
		},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(errorBody(fiberErr.Message))
		}

		serveLog.Error(errors.WrapFailf(err, "handle %s %s", c.Method(), c.Path()))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		svc:      svc,
		http:     fiber.New(fiberCfg),
		addr:     cfg.HTTP.Addr,
		gatherer: gatherer,
		log:      serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	svc      service
	http     *fiber.App
	addr     string
	gatherer prometheus.Gatherer
	log      logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.http.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	requests := s.http.Group("/requests")
	requests.Post("/", s.handleSubmit)
	requests.Get("/:id", s.handleGetRequest)
	requests.Post("/:id/activate", s.handleActivate)
	requests.Post("/:id/pause", s.handlePause)
	requests.Put("/:id/availability", s.handleUpdateAvailability)

	interviews := s.http.Group("/interviews")
	interviews.Get("/", s.handleListInterviews)
	interviews.Get("/:id", s.handleGetInterview)
	interviews.Post("/:id/reject", s.handleReject)
	interviews.Post("/:id/complete", s.handleComplete)
}

func (s *server) handleSubmit(c *fiber.Ctx) error {
	var body submitBody
	err := c.BodyParser(&body)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse submit request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	role, ok := models.RoleFromString(body.Role)
	if !ok {
		return s.sendError(c, http.StatusBadRequest, "unknown role \""+body.Role+"\"")
	}

	res, err := s.svc.Submit(c.Context(), scheduler.Submission{
		OwnerID:             body.OwnerID,
		Role:                role,
		SpecializationID:    body.SpecializationID,
		MasteryLevel:        body.MasteryLevel,
		AverageScore:        body.AverageScore,
		DesiredSessionCount: body.DesiredSessionCount,
		AvailableTimePoints: body.AvailableTimePoints,
		Blacklist:           body.Blacklist,
		ExpiresAt:           body.ExpiresAt,
	})
	switch {
	case err == nil:
	case res != nil && errors.Is(err, scheduler.ErrTryAgain):
		// the request is stored and can be matched again via activate
		s.log.Warn(errors.WrapFailf(err, "match request %s", res.Request.ID))
	default:
		return s.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(viewResult(res))
}

func (s *server) handleGetRequest(c *fiber.Ctx) error {
	req, err := s.svc.GetRequest(c.Context(), c.Params("id"))
	if err != nil {
		return s.handleError(c, err)
	}
	return c.JSON(viewRequest(*req))
}

func (s *server) handleActivate(c *fiber.Ctx) error {
	res, err := s.svc.Activate(c.Context(), c.Params("id"))
	if err != nil {
		return s.handleError(c, err)
	}
	return c.JSON(viewResult(res))
}

func (s *server) handlePause(c *fiber.Ctx) error {
	req, err := s.svc.Pause(c.Context(), c.Params("id"))
	if err != nil {
		return s.handleError(c, err)
	}
	return c.JSON(viewRequest(*req))
}

func (s *server) handleUpdateAvailability(c *fiber.Ctx) error {
	var body availabilityBody
	err := c.BodyParser(&body)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse availability request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	res, err := s.svc.UpdateAvailability(c.Context(), c.Params("id"), body.AvailableTimePoints)
	if err != nil {
		return s.handleError(c, err)
	}
	return c.JSON(viewResult(res))
}

func (s *server) handleGetInterview(c *fiber.Ctx) error {
	iv, err := s.svc.GetInterview(c.Context(), c.Params("id"))
	if err != nil {
		return s.handleError(c, err)
	}
	return c.JSON(iv)
}

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	owner := c.Query("owner", "")
	if owner == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"owner\"")
	}

	ivs, err := s.svc.ListInterviews(c.Context(), owner)
	if err != nil {
		return s.handleError(c, err)
	}
	if ivs == nil {
		ivs = []models.Interview{}
	}
	return c.JSON(ivs)
}

func (s *server) handleReject(c *fiber.Ctx) error {
	var body rejectBody
	err := c.BodyParser(&body)
	if err != nil || body.OwnerID == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required field \"owner_id\"")
	}

	err = s.svc.Reject(c.Context(), c.Params("id"), body.OwnerID)
	if err != nil {
		return s.handleError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (s *server) handleComplete(c *fiber.Ctx) error {
	err := s.svc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return s.handleError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// handleError answers with a status derived from err. Unclassified errors
// go to the app error handler.
func (s *server) handleError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, scheduler.ErrValidation), errors.Is(err, lifecycle.ErrInvalidPair):
		status = http.StatusBadRequest
	case errors.Is(err, scheduler.ErrRequestNotFound), errors.Is(err, lifecycle.ErrInterviewNotFound):
		status = http.StatusNotFound
	case errors.Is(err, lifecycle.ErrNotParticipant):
		status = http.StatusForbidden
	case errors.Is(err, scheduler.ErrTryAgain), lifecycle.IsRetryable(err):
		status = http.StatusConflict
	case errors.Is(err, lifecycle.ErrProvisioning):
		status = http.StatusBadGateway
	default:
		return err
	}

	s.log.Debugf("%s %s: %d %s", c.Method(), c.Path(), status, err)
	return s.sendError(c, status, err.Error())
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorBody(msg))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"status": "ERROR", "message": msg}
}
