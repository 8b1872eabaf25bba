package rawfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/natefinch/atomic"

	"github.com/giantswarm/assetcache/internal/logging"
	"github.com/giantswarm/assetcache/internal/sentinel"
)

// ErrLockNotAcquired is returned when the file lock could not be taken
// within LockOptions.Timeout.
const ErrLockNotAcquired = sentinel.Error("file lock not acquired")

const (
	// DefaultLockTimeout bounds how long a lock is waited for when
	// LockOptions.Timeout is zero.
	DefaultLockTimeout = 10 * time.Second

	// DefaultLockRetryInterval is the interval between lock attempts when
	// LockOptions.RetryInterval is zero.
	DefaultLockRetryInterval = 50 * time.Millisecond
)

// LockOptions configures how LockedBytes and Write coordinate through the
// lock file next to the asset.
type LockOptions struct {
	Timeout       time.Duration // Maximum wait for the lock (zero uses DefaultLockTimeout)
	RetryInterval time.Duration // Interval between attempts (zero uses DefaultLockRetryInterval)
	Logger        *slog.Logger  // Logger for lock diagnostics (nil uses the package logger)
}

func (o LockOptions) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultLockTimeout
}

func (o LockOptions) retryInterval() time.Duration {
	if o.RetryInterval > 0 {
		return o.RetryInterval
	}
	return DefaultLockRetryInterval
}

func (o LockOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Logger()
}

// LockPath returns the lock file that guards path. The lock file is left on
// disk after use: removing it could invalidate a lock concurrently acquired
// by another process.
func LockPath(path string) string {
	return path + ".lock"
}

// LockedBytes loads the full contents of a file from the OS filesystem while
// holding a shared lock on LockPath(path). A missing file fails before any
// lock file is created.
type LockedBytes struct{}

// Load implements assetcache.Loader.
func (LockedBytes) Load(path string, opts LockOptions) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, ErrIsDirectory.Withf("%s", path)
	}

	fl, err := acquire(path, opts, (*flock.Flock).TryRLockContext)
	if err != nil {
		return nil, err
	}
	defer release(opts.logger(), fl)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// Write atomically replaces path with data while holding the exclusive lock
// on LockPath(path). Readers using LockedBytes observe either the old or the
// new contents.
func Write(path string, data []byte, opts LockOptions) error {
	fl, err := acquire(path, opts, (*flock.Flock).TryLockContext)
	if err != nil {
		return err
	}
	defer release(opts.logger(), fl)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type lockFunc func(fl *flock.Flock, ctx context.Context, retryDelay time.Duration) (bool, error)

// acquire takes a lock on LockPath(path) with lock, retrying until the
// configured timeout.
func acquire(path string, opts LockOptions, lock lockFunc) (*flock.Flock, error) {
	lockPath := LockPath(path)
	fl := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout())
	defer cancel()

	locked, err := lock(fl, ctx, opts.retryInterval())
	if errors.Is(err, context.DeadlineExceeded) || (err == nil && !locked) {
		return nil, ErrLockNotAcquired.Withf("%s after %v", lockPath, opts.timeout())
	}
	if err != nil {
		return nil, fmt.Errorf("acquiring file lock %s: %w", lockPath, err)
	}
	return fl, nil
}

// release unlocks and closes fl. Errors are logged at debug level since the
// read or write already finished.
func release(logger *slog.Logger, fl *flock.Flock) {
	if err := fl.Close(); err != nil {
		logger.Debug("failed to release file lock", "path", fl.Path(), "err", err)
	}
}
