// params.go - Named-parameter validation for update_effect_parameters

package main

// Recognized parameter keys per effect kind, per spec §4.8's
// update_effect_parameters and §4.10's failure semantics: unrecognized
// keys are silently ignored rather than rejecting the whole call.
var effectParamKeys = map[string]map[string]bool{
	"lowpass": {"cutoff": true, "resonance": true, "mix": true},
	"delay":   {"time": true, "feedback": true, "mix": true},
	"octave":  {"blend": true, "mode": true},
}

// filterParams drops any key in params not recognized for the named
// effect kind, matching audio_chip.go's defensive clamp-or-ignore
// register-write discipline applied here to string-keyed parameters
// instead of register addresses.
func filterParams(canonName string, params map[string]float64) map[string]float64 {
	allowed := effectParamKeys[canonName]
	if allowed == nil {
		return nil
	}
	out := make(map[string]float64, len(params))
	for k, v := range params {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}
