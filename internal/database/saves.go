package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSaveNotFound is returned when no slot has the requested name.
var ErrSaveNotFound = errors.New("save not found")

// SaveRecord is one stored snapshot.
type SaveRecord struct {
	ID       string
	Name     string
	Data     []byte
	Checksum string
	SavedAt  time.Time
}

// SaveInfo describes a slot without its data.
type SaveInfo struct {
	Name    string
	Size    int
	SavedAt time.Time
}

// PutSave writes data into the named slot, replacing whatever it held.
// The slot keeps its ID across overwrites.
func (d *Database) PutSave(name string, data []byte, checksum string) (*SaveRecord, error) {
	rec := &SaveRecord{
		ID:       uuid.NewString(),
		Name:     name,
		Data:     data,
		Checksum: checksum,
		SavedAt:  time.Now().UTC().Truncate(time.Second),
	}

	_, err := d.db.Exec(d.dialect.Rebind(`
		INSERT INTO saves (id, name, data, checksum, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			data = excluded.data,
			checksum = excluded.checksum,
			saved_at = excluded.saved_at`),
		rec.ID, rec.Name, rec.Data, rec.Checksum, rec.SavedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to write save %q: %w", name, err)
	}

	if err := d.db.QueryRow(d.dialect.Rebind("SELECT id FROM saves WHERE name = ?"), name).Scan(&rec.ID); err != nil {
		return nil, fmt.Errorf("failed to read back save %q: %w", name, err)
	}
	return rec, nil
}

// GetSave reads the named slot.
func (d *Database) GetSave(name string) (*SaveRecord, error) {
	rec := &SaveRecord{}
	err := d.db.QueryRow(d.dialect.Rebind(`
		SELECT id, name, data, checksum, saved_at
		FROM saves WHERE name = ?`), name,
	).Scan(&rec.ID, &rec.Name, &rec.Data, &rec.Checksum, &rec.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrSaveNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %q: %w", name, err)
	}
	return rec, nil
}

// ListSaves returns every slot, most recently saved first.
func (d *Database) ListSaves() ([]SaveInfo, error) {
	rows, err := d.db.Query(`
		SELECT name, LENGTH(data), saved_at
		FROM saves ORDER BY saved_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var infos []SaveInfo
	for rows.Next() {
		var info SaveInfo
		if err := rows.Scan(&info.Name, &info.Size, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteSave removes the named slot.
func (d *Database) DeleteSave(name string) error {
	result, err := d.db.Exec(d.dialect.Rebind("DELETE FROM saves WHERE name = ?"), name)
	if err != nil {
		return fmt.Errorf("failed to delete save %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete save %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrSaveNotFound)
	}
	return nil
}
