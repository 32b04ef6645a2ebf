package feed

import (
	"context"
	"time"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/logger"
)

const (
	// seenSetCapacity bounds dedup memory. The set only needs to cover
	// the overlap window of consecutive polls, not history.
	seenSetCapacity = 200

	defaultInterval  = 10 * time.Second
	defaultPageLimit = 50

	cycleTimeout = 30 * time.Second
)

// Client is the polling feed client. One cycle per interval: fetch leads
// past the cursor, process them oldest-to-newest, notify each unseen one,
// flush the cursor. Cycles never overlap and the stop signal is checked
// between cycles only, so an in-flight cycle always completes.
type Client struct {
	source   LeadSource
	cursors  CursorStore
	notifier Notifier
	seen     *SeenSet
	log      *logger.Logger

	interval  time.Duration
	pageLimit int

	cursor time.Time
}

// NewClient creates a feed client. interval and pageLimit fall back to
// defaults when zero.
func NewClient(source LeadSource, cursors CursorStore, notifier Notifier, log *logger.Logger, interval time.Duration, pageLimit int) *Client {
	if interval <= 0 {
		interval = defaultInterval
	}
	if pageLimit < 1 || pageLimit > 100 {
		pageLimit = defaultPageLimit
	}
	return &Client{
		source:    source,
		cursors:   cursors,
		notifier:  notifier,
		seen:      NewSeenSet(seenSetCapacity),
		log:       log,
		interval:  interval,
		pageLimit: pageLimit,
	}
}

// Run polls until ctx is cancelled. It loads the persisted cursor, runs
// one immediate cycle, then one cycle per interval.
func (c *Client) Run(ctx context.Context) error {
	cursor, err := c.cursors.Load(ctx)
	if err != nil {
		return err
	}
	c.cursor = cursor
	c.log.Info("feed_client_started",
		"cursor", c.cursor.Format(time.RFC3339Nano),
		"interval", c.interval.String(),
	)

	c.runCycle(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("feed_client_stopped")
			return nil
		case <-ticker.C:
			c.runCycle(ctx)
		}
	}
}

// runCycle performs one fetch-process-flush pass. The cycle runs on its
// own deadline, detached from Run's cancellation, so a stop signal
// arriving mid-batch never abandons a half-processed page.
func (c *Client) runCycle(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cycleTimeout)
	defer cancel()

	leads, err := c.source.FetchSince(cycleCtx, c.cursor, c.pageLimit)
	if err != nil {
		// Cursor and seen-set stay untouched; the next interval retries.
		c.log.FeedCycleFailed("fetch", err)
		return
	}

	c.processBatch(cycleCtx, leads)

	if err := c.cursors.Save(cycleCtx, c.cursor); err != nil {
		c.log.FeedCycleFailed("flush", err)
	}
}

// processBatch walks the page oldest-to-newest. A lead is marked seen and
// the cursor advanced before its notification is attempted, so delivery
// is at most once even when the notifier fails.
func (c *Client) processBatch(ctx context.Context, leads []transport.LeadResponse) {
	for i := len(leads) - 1; i >= 0; i-- {
		lead := leads[i]
		id := lead.ID.String()
		if c.seen.Contains(id) {
			continue
		}
		c.seen.Add(id)
		if lead.ReceivedAt != nil && lead.ReceivedAt.After(c.cursor) {
			c.cursor = *lead.ReceivedAt
		}
		if err := c.notifier.Notify(ctx, lead); err != nil {
			c.log.Warn("lead_notification_failed", "lead_id", id, "error", err.Error())
		}
	}
}
