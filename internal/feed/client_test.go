package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadsync_backend/internal/leads/transport"
	"leadsync_backend/platform/apperr"
	"leadsync_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeSource struct {
	batches [][]transport.LeadResponse
	calls   int
	err     error
	cursors []time.Time
}

func (f *fakeSource) FetchSince(ctx context.Context, cursor time.Time, limit int) ([]transport.LeadResponse, error) {
	f.cursors = append(f.cursors, cursor)
	if f.err != nil {
		return nil, f.err
	}
	var batch []transport.LeadResponse
	if f.calls < len(f.batches) {
		batch = f.batches[f.calls]
	}
	f.calls++
	return batch, nil
}

type memoryCursorStore struct {
	cursor time.Time
	saves  int
}

func (m *memoryCursorStore) Load(ctx context.Context) (time.Time, error) { return m.cursor, nil }

func (m *memoryCursorStore) Save(ctx context.Context, cursor time.Time) error {
	m.cursor = cursor
	m.saves++
	return nil
}

type recordingNotifier struct {
	notified []string
	err      error
}

func (r *recordingNotifier) Notify(ctx context.Context, lead transport.LeadResponse) error {
	r.notified = append(r.notified, lead.ID.String())
	return r.err
}

func feedLead(receivedAt time.Time) transport.LeadResponse {
	return transport.LeadResponse{ID: uuid.New(), ReceivedAt: &receivedAt}
}

func newTestClient(source LeadSource, cursors CursorStore, notifier Notifier) *Client {
	return NewClient(source, cursors, notifier, logger.New("development"), time.Second, 50)
}

func TestClientNotifiesEachLeadOnce(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lead := feedLead(base)

	// The same lead comes back in two consecutive polls, as happens when
	// a re-fetch races the cursor flush.
	source := &fakeSource{batches: [][]transport.LeadResponse{{lead}, {lead}}}
	notifier := &recordingNotifier{}
	client := newTestClient(source, &memoryCursorStore{}, notifier)

	client.runCycle(context.Background())
	client.runCycle(context.Background())

	if len(notifier.notified) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.notified))
	}
	if notifier.notified[0] != lead.ID.String() {
		t.Errorf("notified wrong lead: %s", notifier.notified[0])
	}
}

func TestClientProcessesOldestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	newest := feedLead(base.Add(2 * time.Minute))
	middle := feedLead(base.Add(time.Minute))
	oldest := feedLead(base)

	// The store returns newest-first; notifications must go out in
	// arrival order.
	source := &fakeSource{batches: [][]transport.LeadResponse{{newest, middle, oldest}}}
	notifier := &recordingNotifier{}
	client := newTestClient(source, &memoryCursorStore{}, notifier)

	client.runCycle(context.Background())

	want := []string{oldest.ID.String(), middle.ID.String(), newest.ID.String()}
	if len(notifier.notified) != len(want) {
		t.Fatalf("expected %d notifications, got %d", len(want), len(notifier.notified))
	}
	for i, id := range want {
		if notifier.notified[i] != id {
			t.Errorf("notification %d = %s, want %s", i, notifier.notified[i], id)
		}
	}
}

func TestClientAdvancesCursorToNewestProcessed(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	source := &fakeSource{batches: [][]transport.LeadResponse{
		{feedLead(base.Add(2 * time.Minute)), feedLead(base)},
	}}
	cursors := &memoryCursorStore{}
	client := newTestClient(source, cursors, &recordingNotifier{})

	client.runCycle(context.Background())

	want := base.Add(2 * time.Minute)
	if !client.cursor.Equal(want) {
		t.Errorf("cursor = %v, want %v", client.cursor, want)
	}
	if cursors.saves != 1 {
		t.Fatalf("expected one cursor flush, got %d", cursors.saves)
	}
	if !cursors.cursor.Equal(want) {
		t.Errorf("flushed cursor = %v, want %v", cursors.cursor, want)
	}
}

func TestClientFetchFailureLeavesStateUntouched(t *testing.T) {
	source := &fakeSource{err: apperr.Unavailable("lead store unreachable")}
	cursors := &memoryCursorStore{cursor: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	notifier := &recordingNotifier{}
	client := newTestClient(source, cursors, notifier)
	client.cursor = cursors.cursor

	client.runCycle(context.Background())

	if len(notifier.notified) != 0 {
		t.Errorf("failed fetch must not notify")
	}
	if cursors.saves != 0 {
		t.Errorf("failed fetch must not flush the cursor")
	}
	if !client.cursor.Equal(cursors.cursor) {
		t.Errorf("failed fetch must not advance the cursor")
	}
	if client.seen.Len() != 0 {
		t.Errorf("failed fetch must not mutate the seen-set")
	}
}

func TestClientFlushesCursorAfterEmptyBatch(t *testing.T) {
	source := &fakeSource{}
	cursors := &memoryCursorStore{}
	client := newTestClient(source, cursors, &recordingNotifier{})

	client.runCycle(context.Background())

	if cursors.saves != 1 {
		t.Errorf("empty batch must still flush the cursor, saves = %d", cursors.saves)
	}
}

func TestClientNotifierFailureIsNotRetried(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	lead := feedLead(base)
	source := &fakeSource{batches: [][]transport.LeadResponse{{lead}, {lead}}}
	notifier := &recordingNotifier{err: errors.New("toast service down")}
	client := newTestClient(source, &memoryCursorStore{}, notifier)

	client.runCycle(context.Background())
	client.runCycle(context.Background())

	// At-most-once: the lead was marked seen before delivery, so the
	// failed notification is not attempted again.
	if len(notifier.notified) != 1 {
		t.Errorf("expected one delivery attempt, got %d", len(notifier.notified))
	}
	if !client.cursor.Equal(base) {
		t.Errorf("cursor must advance past a lead whose notification failed")
	}
}

func TestClientQueriesWithPersistedCursor(t *testing.T) {
	persisted := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	source := &fakeSource{}
	cursors := &memoryCursorStore{cursor: persisted}
	client := newTestClient(source, cursors, &recordingNotifier{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(source.cursors) == 0 {
		t.Fatalf("expected at least one fetch")
	}
	if !source.cursors[0].Equal(persisted) {
		t.Errorf("first fetch cursor = %v, want persisted %v", source.cursors[0], persisted)
	}
}
