package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/gridboard/internal/board"
)

const keyPreferences = "preferences"

// ErrInvalidPreferences is returned when preferences fail validation.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Preferences stores the CLI's defaults.
type Preferences struct {
	Files      uint      `json:"files"`
	Ranks      uint      `json:"ranks"`
	CheckRange bool      `json:"check_range"`
	EmptyChar  string    `json:"empty_char"`
	SetChar    string    `json:"set_char"`
	CellSize   int       `json:"cell_size"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefaultPreferences returns a checked chess layout rendered with '-' and 'x'.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Files:      board.Chess.Files,
		Ranks:      board.Chess.Ranks,
		CheckRange: board.Chess.CheckRange,
		EmptyChar:  "-",
		SetChar:    "x",
		CellSize:   40,
	}
}

// Layout returns the preferred board layout.
func (p *Preferences) Layout() board.Layout {
	return board.Layout{Files: p.Files, Ranks: p.Ranks, CheckRange: p.CheckRange}
}

// Validate checks the layout and that both render characters are single bytes.
func (p *Preferences) Validate() error {
	if err := p.Layout().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	if len(p.EmptyChar) != 1 || len(p.SetChar) != 1 {
		return fmt.Errorf("%w: render characters must be single bytes, got %q and %q",
			ErrInvalidPreferences, p.EmptyChar, p.SetChar)
	}
	if p.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidPreferences, p.CellSize)
	}
	return nil
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in DatabaseDir(dbDir): dbDir when set,
// the platform data directory otherwise.
func NewStorage(dbDir string) (*Storage, error) {
	dbDir, err := DatabaseDir(dbDir)
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a database that lives only as long as the Storage.
func OpenInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences validates and saves preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	prefs.UpdatedAt = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// ResetPreferences removes stored preferences so defaults apply again.
func (s *Storage) ResetPreferences() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPreferences))
	})
}
