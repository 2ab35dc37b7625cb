package rooms

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type HTTPConfig struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

const defaultHTTPTimeout = 5 * time.Second

func NewHTTP(cfg HTTPConfig, log logger.Logger) (*HTTP, error) {
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, errors.WrapFail(err, "parse rooms service url")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHTTPTimeout
	}

	return &HTTP{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		timeout: cfg.Timeout,
		log:     log.With("rooms"),
	}, nil
}

// HTTP talks to an external conferencing service:
//
//	POST   {url}/rooms       -> {"id": "...", "url": "..."}
//	DELETE {url}/rooms/{id}
type HTTP struct {
	baseURL string
	token   string
	timeout time.Duration
	log     logger.Logger
}

type createRoomRequest struct {
	InterviewID  string    `json:"interview_id"`
	Start        time.Time `json:"start"`
	DurationSec  int64     `json:"duration_sec"`
	Participants []string  `json:"participants"`
}

type createRoomResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (h *HTTP) Provision(ctx context.Context, booking Booking) (Room, error) {
	timeout, err := h.timeoutFor(ctx)
	if err != nil {
		return Room{}, err
	}

	agent := fiber.Post(h.baseURL + "/rooms").
		Timeout(timeout).
		JSON(createRoomRequest{
			InterviewID:  booking.InterviewID,
			Start:        booking.Start,
			DurationSec:  int64(booking.Duration / time.Second),
			Participants: booking.Participants,
		})
	h.authorize(agent)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return Room{}, errors.WrapFail(errors.Join(errs...), "send create room request")
	}
	if code != fiber.StatusOK && code != fiber.StatusCreated {
		return Room{}, errors.Errorf("rooms service responded %d: %s", code, body)
	}

	var resp createRoomResponse
	err = json.Unmarshal(body, &resp)
	if err != nil {
		return Room{}, errors.WrapFail(err, "decode create room response")
	}
	if resp.ID == "" {
		return Room{}, errors.Error("rooms service returned room without id")
	}

	h.log.Debugf("room %s provisioned for interview %s", resp.ID, booking.InterviewID)
	return Room{ID: resp.ID, URL: resp.URL}, nil
}

func (h *HTTP) Release(ctx context.Context, roomID string) error {
	if roomID == "" {
		return nil
	}

	timeout, err := h.timeoutFor(ctx)
	if err != nil {
		return err
	}

	agent := fiber.Delete(h.baseURL + "/rooms/" + url.PathEscape(roomID)).Timeout(timeout)
	h.authorize(agent)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return errors.WrapFail(errors.Join(errs...), "send release room request")
	}

	switch code {
	case fiber.StatusOK, fiber.StatusNoContent, fiber.StatusNotFound:
		return nil
	default:
		return errors.Errorf("rooms service responded %d: %s", code, body)
	}
}

func (h *HTTP) authorize(a *fiber.Agent) {
	if h.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+h.token)
	}
}

// timeoutFor shrinks the configured timeout to the context deadline.
func (h *HTTP) timeoutFor(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	timeout := h.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if timeout <= 0 {
		return 0, context.DeadlineExceeded
	}
	return timeout, nil
}
