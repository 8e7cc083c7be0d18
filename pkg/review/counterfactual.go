package review

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ActualValue reads a situational variable out of a pre-session snapshot for
// the counterfactual editor. Only numeric snapshot values are usable; for
// anything else (missing key, string, bool) it returns ok=false and the
// entry keeps whatever value it previously held.
func ActualValue(snapshot map[string]interface{}, variable string) (string, bool) {
	raw, found := snapshot[variable]
	if !found {
		return "", false
	}
	switch v := raw.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

// FormatOutcomeChange renders the signed outcome delta for a counterfactual,
// one decimal place, with an explicit "+" for non-negative deltas
// ("+2.0", "-1.5", "+0.0"). The baseline subtracted is the section-1
// *optimal* prediction, not the baseline prediction.
func FormatOutcomeChange(newPredictedQuality, predictedQualityOptimal float64) string {
	delta := math.Round((newPredictedQuality-predictedQualityOptimal)*10) / 10
	if delta == 0 {
		// Normalize negative zero so it formats as "+0.0".
		delta = 0
	}
	return fmt.Sprintf("%+.1f", delta)
}
