package s1

import (
	"encoding/json"
	"fmt"
)

type intervalJSON struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// MarshalJSON encodes the interval as {"lo": ..., "hi": ...}.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{Lo: i.lo, Hi: i.hi})
}

// UnmarshalJSON decodes {"lo": ..., "hi": ...} through NewInterval, so
// out-of-range endpoints are rejected.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode interval: %w", err)
	}
	v, err := NewInterval(raw.Lo, raw.Hi)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
