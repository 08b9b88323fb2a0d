package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jl-duee/shashki-engine/internal/board"
	"github.com/jl-duee/shashki-engine/internal/engine"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gameKeyPrefix  = "game:"
)

// ErrGameNotFound is returned when a saved game does not exist.
var ErrGameNotFound = fmt.Errorf("saved game not found")

// Preferences stores user settings.
type Preferences struct {
	EngineLevel engine.Difficulty `json:"engine_level"`
	HumanSide   board.Side        `json:"human_side"`
	LastPlayed  time.Time         `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		EngineLevel: engine.Medium,
		HumanSide:   board.White,
	}
}

// Stats stores play statistics.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
}

// Result is the outcome of a completed game.
type Result struct {
	Winner board.Side
	Draw   bool
}

// SavedGame is the persisted form of a game: the committed moves in
// shashki notation plus the masks and turn needed to resume play.
type SavedGame struct {
	Moves      []string   `json:"moves"`
	WhiteMen   uint64     `json:"white_men"`
	WhiteKings uint64     `json:"white_kings"`
	BlackMen   uint64     `json:"black_men"`
	BlackKings uint64     `json:"black_kings"`
	Turn       board.Side `json:"turn"`
	SavedAt    time.Time  `json:"saved_at"`
}

// Board returns the saved position.
func (sg *SavedGame) Board() board.Board {
	return board.BoardFrom(
		board.Bitboard(sg.WhiteMen),
		board.Bitboard(sg.WhiteKings),
		board.Bitboard(sg.BlackMen),
		board.Bitboard(sg.BlackKings),
	)
}

// Game returns a playable game over the saved position. The move history
// is notation only and is not replayed, so the returned game cannot undo
// past the save point.
func (sg *SavedGame) Game() *board.Game {
	return board.NewGameFrom(sg.Board(), sg.Turn)
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) a database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame persists the game's history and current position under a name.
func (s *Storage) SaveGame(name string, g *board.Game) error {
	b := g.Board()
	executed := g.ExecutedMoves()
	saved := SavedGame{
		Moves:      make([]string, 0, len(executed)),
		WhiteMen:   uint64(b.WhiteMen),
		WhiteKings: uint64(b.WhiteKings),
		BlackMen:   uint64(b.BlackMen),
		BlackKings: uint64(b.BlackKings),
		Turn:       g.Turn(),
		SavedAt:    time.Now(),
	}
	for i := range executed {
		saved.Moves = append(saved.Moves, executed[i].String())
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+name), data)
	})
}

// LoadGame loads a saved game by name.
func (s *Storage) LoadGame(name string) (*SavedGame, error) {
	var saved SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// ListGames returns the names of all saved games.
func (s *Storage) ListGames() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(gameKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gameKeyPrefix))
		}
		return nil
	})

	return names, err
}

// DeleteGame removes a saved game by name.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + name))
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
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

// SaveStats saves play statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads play statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordResult records a completed game and updates statistics.
func (s *Storage) RecordResult(result Result) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch {
	case result.Draw:
		stats.Draws++
	case result.Winner == board.White:
		stats.WhiteWins++
	default:
		stats.BlackWins++
	}

	return s.SaveStats(stats)
}
