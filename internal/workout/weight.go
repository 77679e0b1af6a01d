package workout

import (
	"strconv"
	"strings"
)

// WeightKind discriminates the parsed form of a set's weight text.
type WeightKind int

const (
	// WeightNumeric means a number could be extracted from the text.
	WeightNumeric WeightKind = iota
	// WeightBodyweight means the text was empty, "bodyweight", or "bw".
	WeightBodyweight
	// WeightUnparsed means the text was present but no number could be
	// extracted. Kept distinct from bodyweight even though both render as
	// "no weight" on charts.
	WeightUnparsed
)

// Weight is the tagged value a set's free-text weight resolves to at the
// analytics boundary.
type Weight struct {
	Kind  WeightKind
	Value float64 // meaningful only when Kind == WeightNumeric
	Raw   string
}

// Numeric reports the numeric value, and whether one exists.
func (w Weight) Numeric() (float64, bool) {
	return w.Value, w.Kind == WeightNumeric
}

// ParseWeight classifies a set's weight text.
func ParseWeight(text string) Weight {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if trimmed == "" || lower == "bodyweight" || lower == "bw" {
		return Weight{Kind: WeightBodyweight, Raw: trimmed}
	}

	// Keep digit and dot runes: "135lbs" → "135", "12.5 kg" → "12.5".
	var b strings.Builder
	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Weight{Kind: WeightUnparsed, Raw: trimmed}
	}
	return Weight{Kind: WeightNumeric, Value: v, Raw: trimmed}
}
