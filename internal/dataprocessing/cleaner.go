package dataprocessing

import (
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// recordKey separates fields when hashing a row. Unit separator cannot
// occur in parsed record fields.
const recordKey = "\x1f"

// Clean returns a copy of the dataframe with exact duplicate rows removed
// and every row containing a missing value dropped. The first occurrence of
// a duplicated row is kept and row order is otherwise preserved. Clean is
// idempotent: cleaning an already clean dataframe returns an equal result.
func Clean(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Err != nil || df.Nrow() == 0 {
		return df
	}

	records := df.Records()
	header := records[0]

	seen := make(map[string]struct{}, len(records)-1)
	out := make([][]string, 0, len(records))
	out = append(out, header)

	duplicates, missing := 0, 0
	for _, row := range records[1:] {
		if rowHasMissing(row) {
			missing++
			continue
		}
		key := strings.Join(row, recordKey)
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}

	if duplicates > 0 || missing > 0 {
		slog.Debug("cleaned dataframe",
			slog.Int("duplicate_rows", duplicates),
			slog.Int("missing_value_rows", missing),
			slog.Int("remaining_rows", len(out)-1))
	}

	if len(out) == 1 {
		return emptyLike(df)
	}
	return dataframe.LoadRecords(out, dataframe.WithTypes(colTypes(df)))
}

// rowHasMissing reports whether any field of the row is a missing marker.
func rowHasMissing(row []string) bool {
	for _, field := range row {
		if isMissing(field) {
			return true
		}
	}
	return false
}
