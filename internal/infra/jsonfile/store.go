// Package jsonfile implements the Entity Store contract over one JSON array
// file per entity type. It is durable across restarts and meant for
// single-process, low-concurrency administrative use: file access is
// serialized by a process-local mutex, and sequences spanning entity types
// are not atomic.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	fileDioceses      = "dioceses.json"
	fileParishes      = "parishes.json"
	fileBaptisms      = "baptisms.json"
	fileBaptismNotes  = "baptism_notes.json"
	fileCommunions    = "communions.json"
	fileConfirmations = "confirmations.json"
	fileMarriages     = "marriages.json"
	fileParties       = "marriage_parties.json"
	fileWitnesses     = "marriage_witnesses.json"
	fileHolyOrders    = "holy_orders.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "jsonfile: create data dir")
	}
	return &Store{dir: dir}, nil
}

func read[T any](s *Store, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "jsonfile: read %s", name)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "jsonfile: decode %s", name)
	}
	return items, nil
}

func write[T any](s *Store, name string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "jsonfile: encode %s", name)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "jsonfile: write %s", name)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "jsonfile: replace %s", name)
	}
	return nil
}

// nextID assigns max(existing)+1, guaranteeing uniqueness and monotonic
// non-reuse within an entity type.
func nextID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
