package vector

import (
	"encoding/json"
	"math"
)

// ScoreVector holds one prediction per input molecule for a single endpoint.
// Its length always equals the batch length; slots without a valid prediction
// carry the missing sentinel (NaN) so positional alignment is never lost.
type ScoreVector []float64

// ResultSet holds one ScoreVector per configured endpoint, in endpoint
// configuration order.
type ResultSet []ScoreVector

// Missing is the sentinel stored for absent or failed predictions.
func Missing() float64 {
	return math.NaN()
}

// NewMissing returns a ScoreVector of the given size with every slot set to
// the missing sentinel.
func NewMissing(size int) ScoreVector {
	v := make(ScoreVector, size)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}

func (v ScoreVector) IsMissing(index int) bool {
	return math.IsNaN(v[index])
}

// MissingCount returns the number of slots still holding the sentinel.
func (v ScoreVector) MissingCount() int {
	count := 0
	for i := range v {
		if math.IsNaN(v[i]) {
			count++
		}
	}
	return count
}

// MarshalJSON encodes missing slots as null since NaN has no JSON literal.
func (v ScoreVector) MarshalJSON() ([]byte, error) {
	out := make([]*float64, len(v))
	for i := range v {
		if !math.IsNaN(v[i]) {
			value := v[i]
			out[i] = &value
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null entries back into the missing sentinel.
func (v *ScoreVector) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ScoreVector, len(raw))
	for i, value := range raw {
		if value == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *value
		}
	}
	*v = out
	return nil
}
