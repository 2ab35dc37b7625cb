package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
	"github.com/nikmy/meowmatch/pkg/txn"
)

type Config struct {
	SnapshotPath     string        `yaml:"snapshotPath"`
	SnapshotInterval time.Duration `yaml:"snapshotInterval"`
}

type state struct {
	Requests   map[string]models.InterviewRequest `json:"requests"`
	Slots      map[string]models.TimeSlot         `json:"slots"`
	Interviews map[string]models.Interview        `json:"interviews"`
}

func newState() *state {
	return &state{
		Requests:   make(map[string]models.InterviewRequest),
		Slots:      make(map[string]models.TimeSlot),
		Interviews: make(map[string]models.Interview),
	}
}

func (s *state) clone() *state {
	c := &state{
		Requests:   make(map[string]models.InterviewRequest, len(s.Requests)),
		Slots:      make(map[string]models.TimeSlot, len(s.Slots)),
		Interviews: make(map[string]models.Interview, len(s.Interviews)),
	}
	for k, v := range s.Requests {
		c.Requests[k] = v.Clone()
	}
	for k, v := range s.Slots {
		c.Slots[k] = v
	}
	for k, v := range s.Interviews {
		c.Interviews[k] = v
	}
	return c
}

func New(log logger.Logger, cfg Config) (*Client, error) {
	c := &Client{
		writeSem: make(chan struct{}, 1),
		current:  newState(),
		log:      log.With("memory_repo"),
	}
	c.txns = txn.NewManager(c, txn.Linearizable, txn.Serializable)

	if cfg.SnapshotPath != "" {
		c.snapshots = newSnapshotter(c, cfg, c.log)
		err := c.snapshots.load()
		if err != nil {
			return nil, errors.WrapFail(err, "load snapshot")
		}
	}

	return c, nil
}

// Client keeps the whole state in memory. Writers are serialized: a
// transaction works on a private copy of the state and publishes it on
// commit, so readers never observe uncommitted changes.
type Client struct {
	writeSem chan struct{}

	mu      sync.RWMutex
	current *state

	txns      txn.Manager
	snapshots *snapshotter
	log       logger.Logger
}

func (c *Client) Requests() models.RequestsRepo {
	return requests{c}
}

func (c *Client) Slots() models.SlotsRepo {
	return slots{c}
}

func (c *Client) Interviews() models.InterviewsRepo {
	return interviews{c}
}

func (c *Client) RunTxn(ctx context.Context, do func(ctx context.Context) error) error {
	return c.txns.Run(ctx, do)
}

func (c *Client) Run(ctx context.Context) error {
	if c.snapshots == nil {
		<-ctx.Done()
		return nil
	}
	return c.snapshots.run(ctx)
}

func (c *Client) Close(context.Context) error {
	if c.snapshots != nil {
		return errors.WrapFail(c.snapshots.save(), "save snapshot")
	}
	return nil
}

func (c *Client) acquire(ctx context.Context) error {
	select {
	case c.writeSem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errors.WrapFail(ctx.Err(), "acquire memory store")
	}
}

func (c *Client) release() {
	<-c.writeSem
}

func (c *Client) read(ctx context.Context, do func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapFail(err, "read memory store")
	}

	if s := sessionFrom(ctx); s != nil && s.working != nil {
		return do(s.working)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return do(c.current)
}

func (c *Client) write(ctx context.Context, do func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapFail(err, "write memory store")
	}

	if s := sessionFrom(ctx); s != nil && s.working != nil {
		return do(s.working)
	}

	err := c.acquire(ctx)
	if err != nil {
		return err
	}
	defer c.release()

	c.mu.Lock()
	defer c.mu.Unlock()
	return do(c.current)
}
