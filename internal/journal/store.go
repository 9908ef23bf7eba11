// Package journal persists finished dock sessions and reports dock metrics.
package journal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spacehole-rogue/autodock/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is one finished dock session.
type Record struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Kind         string    `gorm:"size:16;index" json:"kind"`
	Station      string    `gorm:"size:64" json:"station"`
	Outcome      string    `gorm:"size:16;index" json:"outcome"`
	StartedAt    float64   `json:"startedAt"` // frame clock, ms
	EndedAt      float64   `json:"endedAt"`
	FuelAdded    float64   `json:"fuelAdded"`
	ItemsEjected int       `json:"itemsEjected"`
}

// TableName overrides the gorm default.
func (Record) TableName() string { return "dock_sessions" }

// FromReport converts a dock report into a journal record.
func FromReport(rep game.DockReport) Record {
	return Record{
		Kind:         rep.Kind.String(),
		Station:      rep.Station,
		Outcome:      rep.Outcome.String(),
		StartedAt:    rep.StartedAt,
		EndedAt:      rep.EndedAt,
		FuelAdded:    rep.FuelAdded,
		ItemsEjected: rep.ItemsEjected,
	}
}

// DurationMs returns the session length on the frame clock.
func (r Record) DurationMs() float64 { return r.EndedAt - r.StartedAt }

// Store is a dock journal backend.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	// Recent returns up to n records, newest first.
	Recent(ctx context.Context, n int) ([]Record, error)
	Close() error
}

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("journal: store closed")

// SQLiteStore keeps the journal in a local SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (and migrates) a journal database at path. An empty path
// uses a private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal %q: %w", path, err)
	}
	if path == "" {
		// Every pooled connection to :memory: is its own database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("journal pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts rec and fills in its ID.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	if s.db == nil {
		return ErrClosed
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("save dock record: %w", err)
	}
	return nil
}

// Recent returns up to n records, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, n int) ([]Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var out []Record
	err := s.db.WithContext(ctx).Order("id desc").Limit(n).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("query dock records: %w", err)
	}
	return out, nil
}

// Summary counts journal records by kind and outcome.
func (s *SQLiteStore) Summary(ctx context.Context) (map[string]int64, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var rows []struct {
		Kind    string
		Outcome string
		N       int64
	}
	err := s.db.WithContext(ctx).Model(&Record{}).
		Select("kind, outcome, count(*) as n").
		Group("kind, outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("summarize dock records: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Kind+"/"+r.Outcome] = r.N
	}
	return out, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// MemoryStore is an in-process Store, used when the journal is disabled
// on disk and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
	nextID  uint
	closed  bool
}

// NewMemoryStore creates an empty in-memory journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Save appends rec and fills in its ID.
func (m *MemoryStore) Save(_ context.Context, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	rec.ID = m.nextID
	m.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.records = append(m.records, *rec)
	return nil
}

// Recent returns up to n records, newest first.
func (m *MemoryStore) Recent(_ context.Context, n int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	n = min(max(n, 0), len(m.records))
	out := slices.Clone(m.records[len(m.records)-n:])
	slices.Reverse(out)
	return out, nil
}

// Close marks the store closed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
