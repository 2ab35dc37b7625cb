package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

const defaultSnapshotInterval = time.Minute

func newSnapshotter(c *Client, cfg Config, log logger.Logger) *snapshotter {
	interval := cfg.SnapshotInterval
	if interval <= 0 {
		interval = defaultSnapshotInterval
	}

	return &snapshotter{
		client:   c,
		fileName: cfg.SnapshotPath,
		interval: interval,
		log:      log.With("snapshot"),
	}
}

type snapshotter struct {
	client   *Client
	fileName string
	interval time.Duration
	log      logger.Logger
}

func (s *snapshotter) run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.Warn(errors.WrapFail(s.save(), "save snapshot"))
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *snapshotter) save() error {
	s.client.mu.RLock()
	data, err := json.Marshal(s.client.current)
	s.client.mu.RUnlock()
	if err != nil {
		return errors.WrapFail(err, "marshal state")
	}

	// the snapshot file is replaced atomically
	tmp := s.fileName + ".tmp"
	err = os.WriteFile(tmp, data, 0o600)
	if err != nil {
		return errors.WrapFailf(err, "write %s", tmp)
	}

	return errors.WrapFail(os.Rename(tmp, s.fileName), "replace snapshot file")
}

func (s *snapshotter) load() error {
	s.log.Infof("reading data from %s", s.fileName)

	data, err := os.ReadFile(filepath.Clean(s.fileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.WrapFailf(err, "read %s", s.fileName)
	}

	loaded := newState()
	err = json.Unmarshal(data, loaded)
	if err != nil {
		return errors.WrapFail(err, "unmarshal state")
	}

	s.client.mu.Lock()
	s.client.current = loaded
	s.client.mu.Unlock()
	return nil
}
