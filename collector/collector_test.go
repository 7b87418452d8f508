package collector

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabeliqbal/langkawi-data-hub/flights"
	"github.com/zabeliqbal/langkawi-data-hub/models"
)

type stubFetcher struct {
	doc json.RawMessage
	err error
}

func (s stubFetcher) FetchDocument() (json.RawMessage, error) {
	return s.doc, s.err
}

type memStore struct {
	mu       sync.Mutex
	inFlight bool
	overlap  bool
	days     map[string][]models.FlightArrival
	err      error
}

func newMemStore() *memStore {
	return &memStore{days: make(map[string][]models.FlightArrival)}
}

func (m *memStore) ReplaceDay(date string, arrivals []models.FlightArrival) (int, error) {
	m.mu.Lock()
	if m.inFlight {
		m.overlap = true
	}
	m.inFlight = true
	m.mu.Unlock()

	// Give a racing sync a chance to interleave if serialization is broken.
	time.Sleep(5 * time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
	if m.err != nil {
		return 0, m.err
	}
	m.days[date] = arrivals
	return len(arrivals), nil
}

var today = time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC)

func TestSyncStoresNormalizedBatch(t *testing.T) {
	doc := json.RawMessage(`{"data":{"arrivals":[
		{"flight_number":"MH1432","airline":"Malaysia Airlines","origin":{"city":"Kuala Lumpur"}},
		{"flightNumber":"AK5642","from":"Singapore","status":"Delayed"}
	]}}`)
	store := newMemStore()
	c := NewCollector(stubFetcher{doc: doc}, store)

	result, err := c.Sync(today)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-15", result.Date)
	assert.Equal(t, 2, result.InsertedCount)
	assert.Equal(t, "data.arrivals", result.RecordPath)

	stored := store.days["2024-05-15"]
	require.Len(t, stored, 2)
	assert.Equal(t, "MH1432", stored[0].FlightNumber)
	assert.Equal(t, "Kuala Lumpur", stored[0].Origin)
	assert.Equal(t, "AK5642", stored[1].FlightNumber)
	assert.Equal(t, "Delayed", stored[1].Status)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats.TotalSyncs)
	assert.EqualValues(t, 2, stats.RecordsStored)
	assert.Equal(t, 2, stats.LastBatchCount)
	assert.Empty(t, stats.LastError)
}

func TestSyncFetchFailure(t *testing.T) {
	c := NewCollector(stubFetcher{err: errors.New("connection refused")}, newMemStore())

	_, err := c.Sync(today)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, StageFetch, syncErr.Stage)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats.FailedSyncs)
	assert.Contains(t, stats.LastError, "fetch")
}

func TestSyncLocateFailure(t *testing.T) {
	store := newMemStore()
	c := NewCollector(stubFetcher{doc: json.RawMessage(`{"status":"ok"}`)}, store)

	_, err := c.Sync(today)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, StageLocate, syncErr.Stage)
	assert.ErrorIs(t, err, flights.ErrShapeNotFound)
	assert.Empty(t, store.days)
}

func TestSyncStoreFailure(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("connection reset")
	c := NewCollector(stubFetcher{doc: json.RawMessage(`[{"flight_number":"MH1"}]`)}, store)

	_, err := c.Sync(today)
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, StageStore, syncErr.Stage)
}

// Two concurrent triggers must not interleave their delete/insert phases.
func TestSyncSerializesConcurrentCalls(t *testing.T) {
	doc := json.RawMessage(`[{"flight_number":"MH1"},{"flight_number":"AK2"}]`)
	store := newMemStore()
	c := NewCollector(stubFetcher{doc: doc}, store)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Sync(today)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, store.overlap, "syncs overlapped in the store")
	assert.Len(t, store.days["2024-05-15"], 2)
	assert.EqualValues(t, 4, c.Stats().TotalSyncs)
}
