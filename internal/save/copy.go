package save

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/logger"
)

// CopyResult reports what Copy did with each slot
type CopyResult struct {
	Copied  []string
	Skipped []string // unreadable or failing their checksum
}

// Copy moves every readable slot from src into dst, overwriting slots of
// the same name. With dryRun set nothing is written. A slot that fails to
// load is skipped; a failed write stops the copy.
func Copy(dst, src Store, dryRun bool) (CopyResult, error) {
	var res CopyResult
	slots, err := src.List()
	if err != nil {
		return res, err
	}

	for _, slot := range slots {
		data, err := src.Load(slot.Name)
		if err != nil {
			logger.Warning("skipping slot", "slot", slot.Name, "error", err)
			res.Skipped = append(res.Skipped, slot.Name)
			continue
		}
		if !dryRun {
			if err := dst.Save(slot.Name, data); err != nil {
				return res, fmt.Errorf("failed to copy slot %s: %w", slot.Name, err)
			}
		}
		res.Copied = append(res.Copied, slot.Name)
	}
	return res, nil
}
