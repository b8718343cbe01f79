package save

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/lawnchairsociety/delver/internal/database"
	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/logger"
)

// DefaultSlot is used when the player saves without naming a slot
const DefaultSlot = "savegame"

const (
	snapshotExt = ".json"
	checksumExt = ".blake2b"
)

var slotNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Slot describes a stored snapshot
type Slot struct {
	Name    string
	Size    int
	SavedAt time.Time
}

// Store keeps snapshots in named slots
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
	List() ([]Slot, error)
	Delete(name string) error
}

// ValidateSlotName rejects names that are empty, too long or not
// filename safe
func ValidateSlotName(name string) error {
	if !slotNamePattern.MatchString(name) {
		return fmt.Errorf("slot name %q: %w", name, gameerr.ErrInvalidSelection)
	}
	return nil
}

// Checksum returns the hex blake2b-256 digest of data
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func verify(name string, data []byte, want string) error {
	if got := Checksum(data); got != want {
		return fmt.Errorf("slot %s checksum mismatch: %w", name, gameerr.ErrCorruptSave)
	}
	return nil
}

func noSave(name string) error {
	return fmt.Errorf("no save named %q: %w", name, gameerr.ErrNothingHere)
}

// FileStore keeps each slot as <name>.json in a directory, next to a
// <name>.blake2b checksum file
type FileStore struct {
	dir   string
	write func(path string, data []byte) error
}

// NewFileStore creates a store rooted at dir, creating it if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir, write: writeAtomic}, nil
}

func (s *FileStore) path(name, ext string) string {
	return filepath.Join(s.dir, name+ext)
}

// Save writes data to the slot atomically
func (s *FileStore) Save(name string, data []byte) error {
	if err := ValidateSlotName(name); err != nil {
		return err
	}
	// The old checksum goes first so an interrupted save is never
	// verified against the previous snapshot
	sumPath := s.path(name, checksumExt)
	if err := os.Remove(sumPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear checksum for %s: %w", name, err)
	}
	if err := s.write(s.path(name, snapshotExt), data); err != nil {
		return err
	}
	if err := s.write(sumPath, []byte(Checksum(data))); err != nil {
		return err
	}
	logger.Info("save written", "slot", name, "bytes", len(data), "store", "file")
	return nil
}

// writeAtomic writes to a temporary file in the same directory and renames
// it over path so a crash never leaves a half written file
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Load reads the slot, verifying its checksum when one was recorded
func (s *FileStore) Load(name string) ([]byte, error) {
	if err := ValidateSlotName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name, snapshotExt))
	if errors.Is(err, os.ErrNotExist) {
		return nil, noSave(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", name, err)
	}

	sum, err := os.ReadFile(s.path(name, checksumExt))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Saves copied in by hand have no checksum
	case err != nil:
		return nil, fmt.Errorf("failed to read checksum for %s: %w", name, err)
	default:
		if err := verify(name, data, strings.TrimSpace(string(sum))); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// List returns the slots newest first
func (s *FileStore) List() ([]Slot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var slots []Slot
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), snapshotExt)
		if !ok || entry.IsDir() || ValidateSlotName(name) != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		slots = append(slots, Slot{Name: name, Size: int(info.Size()), SavedAt: info.ModTime()})
	}
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].SavedAt.Equal(slots[j].SavedAt) {
			return slots[i].SavedAt.After(slots[j].SavedAt)
		}
		return slots[i].Name < slots[j].Name
	})
	return slots, nil
}

// Delete removes the slot and its checksum
func (s *FileStore) Delete(name string) error {
	if err := ValidateSlotName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name, snapshotExt))
	if errors.Is(err, os.ErrNotExist) {
		return noSave(name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete save %s: %w", name, err)
	}
	if err := os.Remove(s.path(name, checksumExt)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete checksum for %s: %w", name, err)
	}
	logger.Info("save deleted", "slot", name, "store", "file")
	return nil
}

// DBStore keeps slots as rows in a SQL database
type DBStore struct {
	db *database.Database
}

// NewDBStore creates a store over an open database
func NewDBStore(db *database.Database) *DBStore {
	return &DBStore{db: db}
}

// Save upserts the slot
func (s *DBStore) Save(name string, data []byte) error {
	if err := ValidateSlotName(name); err != nil {
		return err
	}
	if _, err := s.db.PutSave(name, data, Checksum(data)); err != nil {
		return err
	}
	logger.Info("save written", "slot", name, "bytes", len(data), "store", s.db.Dialect().Driver)
	return nil
}

// Load reads the slot and verifies its checksum
func (s *DBStore) Load(name string) ([]byte, error) {
	if err := ValidateSlotName(name); err != nil {
		return nil, err
	}
	rec, err := s.db.GetSave(name)
	if errors.Is(err, database.ErrSaveNotFound) {
		return nil, noSave(name)
	}
	if err != nil {
		return nil, err
	}
	if err := verify(name, rec.Data, rec.Checksum); err != nil {
		return nil, err
	}
	return rec.Data, nil
}

// List returns the slots newest first
func (s *DBStore) List() ([]Slot, error) {
	infos, err := s.db.ListSaves()
	if err != nil {
		return nil, err
	}
	slots := make([]Slot, 0, len(infos))
	for _, info := range infos {
		slots = append(slots, Slot{Name: info.Name, Size: info.Size, SavedAt: info.SavedAt})
	}
	return slots, nil
}

// Delete removes the slot
func (s *DBStore) Delete(name string) error {
	if err := ValidateSlotName(name); err != nil {
		return err
	}
	err := s.db.DeleteSave(name)
	if errors.Is(err, database.ErrSaveNotFound) {
		return noSave(name)
	}
	return err
}
