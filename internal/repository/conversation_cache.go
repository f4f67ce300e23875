package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"go.uber.org/zap"
)

// conversationEntry is the value stored in the cache. touchedAt is read from
// the injected clock so expiry does not depend on wall time.
type conversationEntry struct {
	record    *entity.ConversationRecord
	touchedAt time.Time
}

// ConversationCache is an in-memory conversation store with sliding expiry.
// Every Get and Put resets the entry's time-to-live.
type ConversationCache struct {
	items         *cache.Cache
	clock         clockwork.Clock
	ttl           time.Duration
	sweepInterval time.Duration
	scheduler     gocron.Scheduler
	logger        *zap.Logger
}

type ConversationCacheOpt func(*ConversationCache)

// WithClock replaces the real clock, mainly for tests.
func WithClock(clock clockwork.Clock) ConversationCacheOpt {
	return func(c *ConversationCache) {
		c.clock = clock
	}
}

// WithSweepInterval sets how often expired entries are evicted.
func WithSweepInterval(interval time.Duration) ConversationCacheOpt {
	return func(c *ConversationCache) {
		c.sweepInterval = interval
	}
}

// NewConversationCache creates a cache whose entries expire ttl after their last access.
func NewConversationCache(ttl time.Duration, logger *zap.Logger, opts ...ConversationCacheOpt) *ConversationCache {
	c := &ConversationCache{
		// Expiry is tracked on the entries, the go-cache janitor stays off.
		items:         cache.New(cache.NoExpiration, 0),
		clock:         clockwork.NewRealClock(),
		ttl:           ttl,
		sweepInterval: 10 * time.Minute,
		logger:        logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.items.OnEvicted(func(userID string, _ interface{}) {
		c.logger.Debug("conversation evicted", zap.String("user_id", userID))
	})

	return c
}

// Get returns a copy of the user's record, creating an empty one when the
// user has none or the previous one expired.
func (c *ConversationCache) Get(_ context.Context, userID string) (*entity.ConversationRecord, error) {
	now := c.clock.Now()

	if entry, ok := c.load(userID, now); ok {
		c.items.Set(userID, &conversationEntry{record: entry.record, touchedAt: now}, cache.NoExpiration)
		return entry.record.Clone(), nil
	}

	record := &entity.ConversationRecord{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.items.Set(userID, &conversationEntry{record: record, touchedAt: now}, cache.NoExpiration)

	return record.Clone(), nil
}

// Peek returns a copy of the user's record without creating one or touching its expiry.
func (c *ConversationCache) Peek(_ context.Context, userID string) (*entity.ConversationRecord, bool) {
	entry, ok := c.load(userID, c.clock.Now())
	if !ok {
		return nil, false
	}
	return entry.record.Clone(), true
}

// Put stores a copy of the record and resets its expiry.
func (c *ConversationCache) Put(_ context.Context, record *entity.ConversationRecord) error {
	if record == nil || record.UserID == "" {
		return fmt.Errorf("%w: user id", entity.ErrMissingField)
	}

	now := c.clock.Now()
	stored := record.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	c.items.Set(stored.UserID, &conversationEntry{record: stored, touchedAt: now}, cache.NoExpiration)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *ConversationCache) Len() int {
	return c.items.ItemCount()
}

// DeleteExpired evicts entries idle for longer than the ttl and returns how many were removed.
// It works on a snapshot and deletes one key at a time, so eviction is approximate.
func (c *ConversationCache) DeleteExpired() int {
	now := c.clock.Now()
	removed := 0

	for userID, item := range c.items.Items() {
		entry, ok := item.Object.(*conversationEntry)
		if ok && !c.expired(entry, now) {
			continue
		}
		// Skip keys rewritten since the snapshot was taken.
		if current, found := c.items.Get(userID); found && current != item.Object {
			continue
		}
		c.items.Delete(userID)
		removed++
	}

	return removed
}

// Start schedules the periodic eviction sweep.
func (c *ConversationCache) Start() error {
	s, err := gocron.NewScheduler(gocron.WithClock(c.clock))
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(c.sweepInterval),
		gocron.NewTask(func() {
			if n := c.DeleteExpired(); n > 0 {
				c.logger.Info("expired conversations swept", zap.Int("count", n), zap.Int("remaining", c.Len()))
			}
		}),
		gocron.WithName("conversation-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("schedule sweep job: %w", err)
	}

	s.Start()
	c.scheduler = s

	c.logger.Info("conversation sweep started",
		zap.Duration("ttl", c.ttl),
		zap.Duration("sweep_interval", c.sweepInterval),
	)

	return nil
}

// Close stops the eviction sweep.
func (c *ConversationCache) Close() error {
	if c.scheduler == nil {
		return nil
	}
	err := c.scheduler.Shutdown()
	c.scheduler = nil
	return err
}

func (c *ConversationCache) load(userID string, now time.Time) (*conversationEntry, bool) {
	raw, found := c.items.Get(userID)
	if !found {
		return nil, false
	}

	entry, ok := raw.(*conversationEntry)
	if !ok || c.expired(entry, now) {
		return nil, false
	}

	return entry, true
}

func (c *ConversationCache) expired(entry *conversationEntry, now time.Time) bool {
	return now.Sub(entry.touchedAt) >= c.ttl
}
