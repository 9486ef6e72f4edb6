package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"

	"seckill-guard/internal/infra/kvstore"
	"seckill-guard/internal/pkg/errs"

	"github.com/google/uuid"
)

const KeyPrefix = "lock:"

// Deletes the key only while it still holds our token.
var unlockScript = kvstore.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
	return redis.call('del', KEYS[1])
end
return 0
`)

// Client hands out named mutexes backed by the shared key-value store.
// One Client per process; its instance id distinguishes processes.
type Client struct {
	store    kvstore.Store
	instance string
	seq      atomic.Uint64
}

func NewClient(store kvstore.Store) *Client {
	return &Client{
		store:    store,
		instance: uuid.NewString(),
	}
}

// Mutex is a best-effort, TTL-bounded lock. It is not reentrant and has no
// fencing token: once the TTL elapses another owner may hold the same name.
type Mutex struct {
	store kvstore.Store
	key   string
	owner string
}

func (c *Client) NewMutex(name string) *Mutex {
	return &Mutex{
		store: c.store,
		key:   KeyPrefix + name,
		owner: c.instance + ":" + strconv.FormatUint(c.seq.Add(1), 10) + ":" + randomSuffix(),
	}
}

func (m *Mutex) Key() string   { return m.key }
func (m *Mutex) Owner() string { return m.owner }

// TryLock makes a single SET NX PX attempt. Contention returns (false, nil).
func (m *Mutex) TryLock(ctx context.Context, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, errs.Newf("lock %s: ttl must be positive, got %s", m.key, ttl)
	}
	ok, err := m.store.SetNX(ctx, m.key, m.owner, ttl)
	if err != nil {
		return false, errs.Wrapf(err, "try lock %s", m.key)
	}
	return ok, nil
}

// LockWithin retries TryLock every interval until the lock is taken or wait
// has elapsed. Running out of time returns ErrLockTimeout.
func (m *Mutex) LockWithin(ctx context.Context, ttl, wait, interval time.Duration) error {
	deadline := time.Now().Add(wait)
	for {
		if err := ctx.Err(); err != nil {
			return errs.Mark(errs.Wrapf(err, "lock %s", m.key), errs.ErrLockTimeout)
		}
		ok, err := m.TryLock(ctx, ttl)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !time.Now().Add(interval).Before(deadline) {
			return errs.Wrapf(errs.ErrLockTimeout, "lock %s", m.key)
		}
		select {
		case <-ctx.Done():
			return errs.Mark(errs.Wrapf(ctx.Err(), "lock %s", m.key), errs.ErrLockTimeout)
		case <-time.After(interval):
		}
	}
}

// Unlock reports false when the key had already expired or belongs to
// someone else; another holder's lock is never deleted.
func (m *Mutex) Unlock(ctx context.Context) (bool, error) {
	res, err := m.store.Run(ctx, unlockScript, []string{m.key}, m.owner)
	if err != nil {
		return false, errs.Wrapf(err, "unlock %s", m.key)
	}
	n, ok := res.(int64)
	return ok && n == 1, nil
}

func randomSuffix() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(b[:])
}
