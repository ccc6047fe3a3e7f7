package main

//go:generate mockgen -source=store.go -destination=store_mocks.go -package=main

import (
	"log"

	"github.com/hailam/gridboard/internal/storage"
	"github.com/urfave/cli/v2"
)

// preferenceStore is the part of storage.Storage the commands use.
type preferenceStore interface {
	LoadPreferences() (*storage.Preferences, error)
	SavePreferences(prefs *storage.Preferences) error
	ResetPreferences() error
	Close() error
}

// openStore opens the preferences database; tests replace it.
var openStore = func(dir string) (preferenceStore, error) {
	s, err := storage.NewStorage(dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// loadPreferences returns the stored preferences, falling back to defaults
// when the database is unavailable or holds something unusable.
func loadPreferences(c *cli.Context) *storage.Preferences {
	store, err := openStore(c.String(dbFlag.Name))
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v (using defaults)", err)
		return storage.DefaultPreferences()
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: preferences not loaded: %v (using defaults)", err)
		return storage.DefaultPreferences()
	}
	if err := prefs.Validate(); err != nil {
		log.Printf("Warning: ignoring stored preferences: %v", err)
		return storage.DefaultPreferences()
	}
	return prefs
}
