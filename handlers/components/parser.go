package components

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/molstack/scoreflow/handlers/external/feasibility"
	"github.com/molstack/scoreflow/pkg/vector"
)

// parseResponse converts a response body into a ScoreVector of exactly
// batchSize slots.
//
// Entry i of the body maps to slot i of the output: alignment is purely
// positional and the smiles field of each record is never reconciled
// against the input batch, so a server that reorders or drops entries will
// silently misalign scores. Entries past batchSize are ignored. A body that
// is not a list at all yields an all-missing vector rather than an error.
func parseResponse(body []byte, batchSize int) vector.ScoreVector {
	results := vector.NewMissing(batchSize)

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return results
	}

	for i, raw := range records {
		if i >= batchSize {
			break
		}
		var record feasibility.PredictionRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		if record.Prediction == nil {
			continue
		}
		if value, ok := coerceFloat(record.Prediction); ok {
			results[i] = value
		}
	}
	return results
}

// coerceFloat accepts JSON numbers and numeric strings; anything else
// leaves the slot missing.
func coerceFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
