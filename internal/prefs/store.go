// Package prefs is the durable key-value preference store. It holds the two
// keys the surrounding UI relies on across sessions: the theme name and a
// bounded chat conversation log. Values are free-form; nothing here is
// validated against a schema. The catalog/selection/order pipeline does not
// depend on this store.
package prefs

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketName = "preferences"

	// ThemeKey stores the UI theme name.
	ThemeKey = "theme"
	// ChatLogKey stores the JSON-encoded conversation log.
	ChatLogKey = "chat_log"

	// MaxChatLogEntries bounds the conversation log; oldest entries drop first.
	MaxChatLogEntries = 20
)

// LogEntry is one line of the chat conversation log.
type LogEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Store is a bbolt-backed preference store. A single file, a single bucket.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preference bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or the empty string when the key is unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

// Set writes the value for key.
func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme name, empty when never set.
func (s *Store) Theme() (string, error) {
	return s.Get(ThemeKey)
}

// SetTheme stores the theme name.
func (s *Store) SetTheme(name string) error {
	return s.Set(ThemeKey, name)
}

// ChatLog returns the stored conversation log, oldest first.
func (s *Store) ChatLog() ([]LogEntry, error) {
	raw, err := s.Get(ChatLogKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var entries []LogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode chat log: %w", err)
	}
	return entries, nil
}

// AppendChatLog appends entries to the conversation log, trimming it to the
// MaxChatLogEntries most recent. The read-append-write runs in one
// transaction so concurrent appends cannot overwrite each other.
func (s *Store) AppendChatLog(entries ...LogEntry) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))

		var log []LogEntry
		if raw := bucket.Get([]byte(ChatLogKey)); raw != nil {
			if err := json.Unmarshal(raw, &log); err != nil {
				return fmt.Errorf("failed to decode chat log: %w", err)
			}
		}

		log = append(log, entries...)
		if len(log) > MaxChatLogEntries {
			log = log[len(log)-MaxChatLogEntries:]
		}

		raw, err := json.Marshal(log)
		if err != nil {
			return fmt.Errorf("failed to encode chat log: %w", err)
		}
		return bucket.Put([]byte(ChatLogKey), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to append chat log: %w", err)
	}
	return nil
}
