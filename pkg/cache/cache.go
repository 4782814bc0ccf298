package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Namespace is the fixed key the image cache blob lives under.
const Namespace = "product-img-cache-v1"

// Store persists a string-keyed cache as a single JSON blob per
// namespace. The blob is read once at process start and rewritten whole
// on every update; there are no partial writes.
type Store struct {
	db        *sql.DB
	namespace string
}

func New(dbPath, namespace string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			namespace TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, namespace: namespace}, nil
}

// Load reads the blob. A missing row or an unparseable blob both come
// back as an empty map with no error; corruption is not worth failing
// startup over.
func (s *Store) Load() (map[string]string, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT data FROM blobs WHERE namespace = ?`, s.namespace,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries := map[string]string{}
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		log.Printf("Cache: discarding unparseable blob for %s: %v", s.namespace, err)
		return map[string]string{}, nil
	}
	return entries, nil
}

// Save rewrites the whole blob. Last writer wins.
func (s *Store) Save(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO blobs (namespace, data, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(namespace)
		 DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.namespace, string(data), time.Now(),
	)
	if err != nil {
		log.Printf("Cache: failed to store blob for %s: %v", s.namespace, err)
	}
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
