package views

import (
	"strings"

	"github.com/meltforce/powerup/internal/catalog"
)

// HighIntensity is the fallback label when a preset name matches neither the
// catalog nor any category keyword.
const HighIntensity = "High Intensity"

// HICInfo is the display block for a logged HIC workout: the inferred
// category label and its fixed description.
type HICInfo struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// categoryKeywords drive the fallback substring heuristic. Order matters:
// the first category with a matching keyword wins, so a name containing both
// "hills" and "power" classifies as Aerobic/Anaerobic.
var categoryKeywords = []struct {
	category catalog.Category
	words    []string
}{
	{catalog.AerobicAnaerobic, []string{"oxygen", "endurance", "interval", "reset", "hills", "lungs"}},
	{catalog.GeneralConditioning, []string{"gc", "beat", "brig", "wire"}},
	{catalog.PowerDevelopment, []string{"power", "plyometric", "kinetic", "transition"}},
}

var categoryDescriptions = map[string]string{
	string(catalog.AerobicAnaerobic):    "This workout targets both aerobic and anaerobic energy systems, improving cardiovascular endurance and power output through high-intensity intervals.",
	string(catalog.GeneralConditioning): "A comprehensive conditioning workout designed to improve overall fitness, combining cardiovascular endurance with functional strength movements.",
	string(catalog.PowerDevelopment):    "Focused on developing explosive power and speed through plyometric movements and high-intensity exercises that target fast-twitch muscle fibers.",
	HighIntensity:                       "A high-intensity cardio workout designed to push your limits and improve cardiovascular fitness in a short amount of time.",
}

// InferHICInfo derives the category label and description for a HIC preset
// name. Exact catalog membership is authoritative; the keyword heuristic only
// applies to free-form or legacy names, and unknown names fall back to the
// generic High Intensity label.
func InferHICInfo(presetName string) HICInfo {
	category := HighIntensity
	if cat, ok := catalog.LookupPreset(presetName); ok {
		category = string(cat)
	} else {
		lower := strings.ToLower(presetName)
	scan:
		for _, ck := range categoryKeywords {
			for _, word := range ck.words {
				if strings.Contains(lower, word) {
					category = string(ck.category)
					break scan
				}
			}
		}
	}
	return HICInfo{
		Category:    category,
		Description: categoryDescriptions[category],
	}
}

// IntensityLevel maps a HIC workout duration in minutes to its display
// intensity: shorter presets are run at higher effort.
func IntensityLevel(durationMin int) string {
	switch {
	case durationMin <= 15:
		return "Max"
	case durationMin <= 25:
		return "High"
	default:
		return "Moderate"
	}
}
