// Package catalog holds the static preset enumerations and the Training
// Vault instruction library. Content is fixed seed data, initialized once and
// never mutated at runtime.
package catalog

// Category is one of the three preset groupings.
type Category string

const (
	AerobicAnaerobic    Category = "Aerobic/Anaerobic"
	GeneralConditioning Category = "General Conditioning"
	PowerDevelopment    Category = "Power Development"
)

// AerobicAnaerobicPresets are the canonical aerobic/anaerobic preset names.
var AerobicAnaerobicPresets = []string{
	"Connaught Range 10 to 1s",
	"Fast 5",
	"600M Resets",
	"Heavy Bag Resets",
	"Indoor Power Intervals",
	"Sledge Drill",
	"BOO",
	"BOO II",
	"Fobbit Intervals",
	"Short Hills",
	"Oxygen Debt 101",
	"Speed-Endurance Ladders",
	"Meat Eater",
	"Meat Eater II",
	"Disarmed",
	"Standard Issue Hills",
	"Apex Hills",
	"Bloody Lungs",
	"Bloody Lungs II",
	"Anaerobic Capacity",
	"Pepper Pot",
	"Buffalo Laps",
	"Meat Eater III",
	"Devil's Trinity - Combat Conditioning Circuit",
}

// GeneralConditioningPresets are the canonical general conditioning preset names.
var GeneralConditioningPresets = []string{
	"GC# 1 aka Beat Your Face",
	"GC# 2",
	"GC# 3 aka Brig Rat",
	"GC# 4",
	"GC #5",
	"GC #6",
	"GC #7",
	"GC #8",
	"GC #9",
	"GC #10",
	"GC #11 aka Outside the Wire",
	"GC #12",
}

// PowerDevelopmentPresets are the canonical power development preset names.
var PowerDevelopmentPresets = []string{
	"BW Plyometric Power",
	"Power Complex",
	"Kinetic Conditioning",
	"Transition Complex",
}

// presetIndex maps each canonical preset name to its owning category.
// Names are unique within each set; collisions across sets are not expected.
var presetIndex = buildPresetIndex()

func buildPresetIndex() map[string]Category {
	idx := make(map[string]Category,
		len(AerobicAnaerobicPresets)+len(GeneralConditioningPresets)+len(PowerDevelopmentPresets))
	for _, name := range AerobicAnaerobicPresets {
		idx[name] = AerobicAnaerobic
	}
	for _, name := range GeneralConditioningPresets {
		idx[name] = GeneralConditioning
	}
	for _, name := range PowerDevelopmentPresets {
		idx[name] = PowerDevelopment
	}
	return idx
}

// LookupPreset returns the category owning the given preset name. The match
// is exact and case-sensitive against the canonical display strings.
func LookupPreset(name string) (Category, bool) {
	cat, ok := presetIndex[name]
	return cat, ok
}

// PresetsByCategory returns the canonical preset names for a category, in
// display order. Unknown categories yield nil.
func PresetsByCategory(cat Category) []string {
	switch cat {
	case AerobicAnaerobic:
		return AerobicAnaerobicPresets
	case GeneralConditioning:
		return GeneralConditioningPresets
	case PowerDevelopment:
		return PowerDevelopmentPresets
	}
	return nil
}
