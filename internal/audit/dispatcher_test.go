package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type recordingStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
	block   chan struct{}
}

func (s *recordingStore) CreateAuditLog(_ context.Context, entry *models.AuditLog) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *recordingStore) ListAuditLogs(context.Context, Filter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), 10)

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: ActionCreate, Entity: "cita", EntityID: ID(uint(i + 1)), Metadata: map[string]int{"n": i}})
	}
	d.Close()

	require.Len(t, store.entries, 5)
	assert.Equal(t, "cita", store.entries[0].Entity)
	assert.Equal(t, `{"n":0}`, store.entries[0].Metadata)
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	store := &recordingStore{block: make(chan struct{})}
	d := NewDispatcher(New(store), 1)

	// One event is held by the blocked worker, one fills the buffer, the
	// rest are dropped.
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: ActionUpdate, Entity: "producto"})
	}
	close(store.block)
	d.Close()

	assert.LessOrEqual(t, len(store.entries), 2)
	assert.GreaterOrEqual(t, len(store.entries), 1)
}

func TestDispatcher_AfterCloseDropped(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(New(store), 4)

	d.Dispatch(Event{Action: ActionCreate, Entity: "cliente"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionDelete, Entity: "cliente"})
	})
	d.Close()

	require.Len(t, store.entries, 1)
	assert.Equal(t, ActionCreate, store.entries[0].Action)
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, Limit: 50}.Offset())
	assert.Equal(t, 100, Filter{Page: 3, Limit: 50}.Offset())
}
