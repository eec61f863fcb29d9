package ordering

import (
	"strings"

	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
	"ilweld/pkg/paths"
	"ilweld/pkg/types"
)

// WriteOrderRecord writes the final merge order next to the primary
// assembly, one base file name per line, at the primary's path with its
// extension replaced by paths.RecordExt. The record is informational
// only; callers treat a write failure as a warning, never as a run
// failure. The record path is returned either way so callers can log it.
func WriteOrderRecord(fsys types.FS, primaryPath string, order []string) (string, error) {
	recordPath := paths.ReplaceExt(primaryPath, paths.RecordExt)

	var sb strings.Builder
	for _, file := range order {
		sb.WriteString(BaseName(file))
		sb.WriteByte('\n')
	}

	if err := fsys.WriteFile(recordPath, []byte(sb.String()), 0644); err != nil {
		return recordPath, errors.Wrapf(err, errors.ErrRecordWrite,
			"failed to write order record: %s", recordPath)
	}

	logger := logging.GetLogger("ordering.record")
	logger.Debug().
		Str("path", recordPath).
		Int("files", len(order)).
		Msg("Wrote order record")

	return recordPath, nil
}
