package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/league-tracker/internal/league"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
)

// SnapshotFile persists a league snapshot as one JSON document. Saves write a
// temporary file next to the target and rename it into place.
type SnapshotFile struct {
	path   string
	logger *logging.Logger
}

func NewSnapshotFile(path string, logger *logging.Logger) *SnapshotFile {
	if logger == nil {
		logger = logging.Default()
	}
	return &SnapshotFile{
		path:   path,
		logger: logger.Named("snapshot"),
	}
}

func (s *SnapshotFile) Path() string {
	return s.path
}

// Load reads the snapshot. The boolean is false when no file exists yet.
func (s *SnapshotFile) Load(ctx context.Context) (league.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return league.Snapshot{}, false, err
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return league.Snapshot{}, false, nil
	}
	if err != nil {
		return league.Snapshot{}, false, errors.Wrapf(err, "read snapshot %s", s.path)
	}

	var snap league.Snapshot
	if err := sonic.Unmarshal(raw, &snap); err != nil {
		return league.Snapshot{}, false, errors.Wrapf(err, "decode snapshot %s", s.path)
	}

	s.logger.InfoContext(ctx, "snapshot loaded", "path", s.path, "bytes", len(raw))
	return snap, true, nil
}

func (s *SnapshotFile) Save(ctx context.Context, snap league.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create snapshot dir %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp snapshot")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temp snapshot")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "sync temp snapshot")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp snapshot")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "replace snapshot %s", s.path)
	}

	s.logger.InfoContext(ctx, "snapshot saved", "path", s.path, "bytes", buf.Len())
	return nil
}
