// Package history keeps the append/upsert log of generated documents and
// derives sequential numbering from it. The store is a single flat JSON
// array, read fully and written fully back.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bratus/pavadzimes/internal/domain"
	"github.com/bratus/pavadzimes/internal/logger"
)

// DefaultStartNumber is the first document number handed out when the
// ledger holds no prior documents.
const DefaultStartNumber = 49

// Ledger is the file-backed history store. One process at a time: the
// upsert cycle rewrites the whole file via a temp file and atomic rename
// so a concurrent reader never sees a half-written array.
type Ledger struct {
	path string
	log  zerolog.Logger
}

// New creates a ledger over the given file path.
func New(path string) *Ledger {
	return &Ledger{
		path: path,
		log:  logger.WithComponent("history"),
	}
}

// Load reads all entries. A missing or unparseable file yields an empty
// ledger (fresh numbering sequence) rather than an error.
func (l *Ledger) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.log.Warn().Err(err).Str("path", l.path).Msg("history file unreadable, starting fresh")
		return nil, nil
	}
	return entries, nil
}

// Upsert saves one entry, replacing any earlier entry with the same
// document ID. Regenerating a document must not duplicate history rows.
func (l *Ledger) Upsert(e domain.HistoryEntry) error {
	entries, err := l.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].DocumentID == e.DocumentID {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}

	return l.write(entries)
}

// Clear drops all entries. Individual entries are never deleted.
func (l *Ledger) Clear() error {
	return l.write([]domain.HistoryEntry{})
}

// NextNumber returns the next unused sequence number: the highest numeric
// suffix among recorded document IDs plus one, or DefaultStartNumber when
// the ledger is empty.
func (l *Ledger) NextNumber() int {
	entries, err := l.Load()
	if err != nil {
		l.log.Warn().Err(err).Msg("numbering falls back to default")
		return DefaultStartNumber
	}

	max := 0
	for _, e := range entries {
		if n, ok := numberSuffix(e.DocumentID); ok && n > max {
			max = n
		}
	}
	if max == 0 {
		return DefaultStartNumber
	}
	return max + 1
}

// numberSuffix extracts the numeric part of an ID like "BR 0049".
func numberSuffix(id string) (int, bool) {
	fields := strings.Fields(id)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (l *Ledger) write(entries []domain.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close history file: %w", err)
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
