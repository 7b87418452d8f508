package collector

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/zabeliqbal/langkawi-data-hub/db"
	"github.com/zabeliqbal/langkawi-data-hub/flights"
	"github.com/zabeliqbal/langkawi-data-hub/models"
	"github.com/zabeliqbal/langkawi-data-hub/types"
)

// Sync stages, reported inside SyncError so operators see where a refresh
// died.
const (
	StageFetch  = "fetch"
	StageLocate = "locate"
	StageStore  = "store"
)

// SyncError wraps a failure of one flight sync with the stage it occurred in.
type SyncError struct {
	Stage string
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("flight sync failed at %s: %v", e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// SyncResult summarizes one successful sync.
type SyncResult struct {
	Date          string `json:"date"`
	InsertedCount int    `json:"inserted_count"`
	RecordPath    string `json:"record_path"`
}

// Fetcher provides the raw upstream document.
type Fetcher interface {
	FetchDocument() (json.RawMessage, error)
}

// FlightStore persists one day's normalized arrivals.
type FlightStore interface {
	ReplaceDay(date string, arrivals []models.FlightArrival) (int, error)
}

// Collector runs the fetch-normalize-persist cycle for flight arrivals.
// Syncs are serialized by an in-process mutex; a second trigger while one is
// in flight waits rather than racing the delete/insert.
type Collector struct {
	fetcher Fetcher
	store   FlightStore

	syncMu  sync.Mutex
	statsMu sync.Mutex
	stats   types.SyncStats
}

func NewCollector(fetcher Fetcher, store FlightStore) *Collector {
	return &Collector{
		fetcher: fetcher,
		store:   store,
		stats: types.SyncStats{
			StartTime: time.Now(),
		},
	}
}

// Sync replaces today's persisted arrivals with a freshly fetched batch.
// The date, and the timestamps baked into synthesized identifiers, derive
// from the today argument only.
func (c *Collector) Sync(today time.Time) (SyncResult, error) {
	c.syncMu.Lock()
	defer c.syncMu.Unlock()

	doc, err := c.fetcher.FetchDocument()
	if err != nil {
		return SyncResult{}, c.fail(StageFetch, err)
	}

	records, path, err := flights.LocateRecordArray(doc)
	if err != nil {
		return SyncResult{}, c.fail(StageLocate, err)
	}
	log.Printf("Flight sync: located %d records at %q", len(records), path)

	arrivals := flights.Normalize(records, today)
	for i, a := range arrivals {
		if i >= 2 {
			break
		}
		log.Printf("Flight sync sample: %s from %q status %s", a.FlightNumber, a.Origin, a.Status)
	}

	date := today.Format("2006-01-02")
	inserted, err := c.store.ReplaceDay(date, arrivals)
	if err != nil {
		return SyncResult{}, c.fail(StageStore, err)
	}

	c.statsMu.Lock()
	c.stats.LastSync = time.Now()
	c.stats.LastError = ""
	c.stats.TotalSyncs++
	c.stats.RecordsStored += int64(inserted)
	c.stats.LastBatchCount = inserted
	c.statsMu.Unlock()

	log.Printf("Flight sync: stored %d arrivals for %s (total syncs: %d)",
		inserted, date, c.Stats().TotalSyncs)

	return SyncResult{Date: date, InsertedCount: inserted, RecordPath: path}, nil
}

func (c *Collector) fail(stage string, err error) error {
	serr := &SyncError{Stage: stage, Err: err}
	c.statsMu.Lock()
	c.stats.FailedSyncs++
	c.stats.LastError = serr.Error()
	c.statsMu.Unlock()
	return serr
}

// Stats returns a copy of the collector's counters.
func (c *Collector) Stats() types.SyncStats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// DBStore is the production FlightStore backed by the db package.
type DBStore struct{}

func (DBStore) ReplaceDay(date string, arrivals []models.FlightArrival) (int, error) {
	return db.ReplaceFlightDay(date, arrivals)
}
