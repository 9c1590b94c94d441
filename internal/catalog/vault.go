package catalog

import "fmt"

// Instruction is one Training Vault entry: a numbered, titled workout with
// its ordered step list. Numbers are dense and contiguous from 1.
type Instruction struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Steps  []string `json:"steps"`
}

// FormattedTitle returns the display title prefixed with the number.
func (i Instruction) FormattedTitle() string {
	return fmt.Sprintf("%d. %s", i.Number, i.Title)
}

// Vault returns the full Training Vault in ascending-number order. The
// returned slice is shared seed data; callers must not modify it.
func Vault() []Instruction {
	return vault
}

// VaultByNumber returns the instruction with the given number, or false if
// no entry exists.
func VaultByNumber(n int) (Instruction, bool) {
	if n < 1 || n > len(vault) {
		return Instruction{}, false
	}
	return vault[n-1], true
}

var vault = []Instruction{
	{Number: 1, Title: "Connaught Range 10-to-1s", Steps: []string{
		"10 burpees", "100m sprint", "9 burpees", "100m sprint", "… to 1 burpee", "Sprint back to the start each time.",
	}},
	{Number: 2, Title: "Fast 5 Tempo Run", Steps: []string{
		"5km (3 miles) run", "Pace should make conversation difficult.",
	}},
	{Number: 3, Title: "600m Resets", Steps: []string{
		"600m max effort sprint", "Rest 3-5 minutes", "x6 rounds", "Warm up with a 5-10 minute jog before starting.",
	}},
	{Number: 4, Title: "Heavy Bag Resets", Steps: []string{
		"90 seconds heavy bag strikes at max effort", "Rest 2-5 minutes", "x5 rounds",
	}},
	{Number: 5, Title: "Indoor Power Intervals", Steps: []string{
		"2 minute run, row, or Airdyne at max effort", "Rest 3-5 minutes", "x5 rounds",
	}},
	{Number: 6, Title: "Sledge Drill", Steps: []string{
		"Sledgehammer/Tire Strikes for 1 minute", "Jump Rope for 1 minute", "Sledgehammer/Tire Strikes for 30 seconds", "Jump Rope for 30 seconds", "Rest 2-3 minutes", "x5 rounds", "Alternate hands and grip for the sledge strikes.",
	}},
	{Number: 7, Title: "Black on Oxygen (BOO)", Steps: []string{
		"60 seconds kettlebell swings (or 30 swings)", "800m run", "Rest 2-3 minutes", "x5 rounds",
	}},
	{Number: 8, Title: "BOO II", Steps: []string{
		"10 burpees", "800m run", "5 burpees", "400m max effort sprint", "Rest 2-3 minutes", "x3 rounds", "Aim to complete each round as quickly as possible.",
	}},
	{Number: 9, Title: "Fobbit Intervals", Steps: []string{
		"2 minute run, row, or skip", "20 kettlebell swings", "2 minute run, row, or skip", "10 kettlebell snatches per arm", "Repeat this sequence for 20 minutes.",
	}},
	{Number: 10, Title: "Short Hills", Steps: []string{
		"Sprint up a hill for 10-15 seconds", "Walk down the hill as your rest", "x10 rounds",
	}},
	{Number: 11, Title: "Oxygen Debt 101", Steps: []string{
		"200m max effort sprint", "Rest 30 seconds", "Repeat the sprint two more times", "Rest 3 minutes", "Repeat this sequence for 3-4 rounds.",
	}},
	{Number: 12, Title: "Speed-Endurance Ladders", Steps: []string{
		"400m sprint", "Rest 40 seconds", "300m sprint", "Rest 30 seconds", "200m sprint", "Rest 20 seconds", "100m sprint", "Rest 10 seconds", "Work your way back up the ladder in reverse.",
	}},
	{Number: 13, Title: "Meat-Eater", Steps: []string{
		"100m max effort sprint", "20 Russian kettlebell swings", "Walk back to the start", "x10 rounds", "Leave the kettlebell 100m away at the finish line.",
	}},
	{Number: 14, Title: "Meat-Eater II", Steps: []string{
		"10 Russian kettlebell swings", "10 burpees", "Rest 60 seconds", "x10 rounds", "Complete the entire workout for time.",
	}},
	{Number: 15, Title: "Disarmed", Steps: []string{
		"10 burpees", "Heavy bag strikes for 2 minutes", "Rest 60 seconds", "x3-5 rounds",
	}},
	{Number: 16, Title: "Standard Issue Hills", Steps: []string{
		"5-10 hill sprints", "Rest 1-2 minutes between sprints", "Sprint up a hill that takes 30-45 seconds to ascend. Walk or jog down.",
	}},
	{Number: 17, Title: "Apex Hills", Steps: []string{
		"Hill sprint", "10 Russian kettlebell swings", "Walk down the hill", "Rest 1-2 minutes", "x5-10 rounds", "Place the kettlebell at the top of the hill. The rest interval starts at the bottom.",
	}},
	{Number: 18, Title: "Bloody Lungs I", Steps: []string{
		"10 plank push-ups", "Hill sprint", "10 burpees", "Walk down the hill", "x5 rounds", "A plank push-up consists of a plank to an upright plank, one regular push-up, then back to a plank, which counts as one rep.",
	}},
	{Number: 19, Title: "Bloody Lungs II", Steps: []string{
		"10 burpees", "Hill sprint", "5 kettlebell/dumbbell snatches per arm", "Walk down the hill", "Rest 1-2 minutes", "x5-10 rounds", "Place the kettlebell at the top of the hill.",
	}},
	{Number: 20, Title: "Anaerobic Capacity", Steps: []string{
		"800m jog", "400m sprint", "800m jog", "400m sprint", "400m jog", "200m sprint", "400m jog", "200m sprint", "Complete this sequence continuously.", "Finisher: 50 plank push-ups.",
	}},
	{Number: 21, Title: "Pepper Potting", Steps: []string{
		"Carry a 30-50lb rucksack, backpack, or weight vest.", "Set a timer for every 5 minutes.", "Hike or walk a 1.5-mile route.", "Every 5 minutes, run for 100m, stopping every 4th or 5th step to drop to one knee for 2 seconds before continuing.",
	}},
	{Number: 22, Title: "Buffalo Laps", Steps: []string{
		"10 burpees", "400m run", "10 two-handed kettlebell swings (or 20 one-handed)", "Rest 45-60 seconds", "x4 rounds", "Complete as quickly as possible for time.",
	}},
	{Number: 23, Title: "Meat-Eater III", Steps: []string{
		"10 double kettlebell clean and press", "300m sprint", "Lunge 100m back to the start", "x4-6 rounds", "Use two kettlebells of equal, moderate weight.",
	}},
	{Number: 24, Title: "Devil's Trinity", Steps: []string{
		"Kettlebell swings for 1 minute", "Burpees for 1 minute", "Heavy bag strikes for 1 minute", "Rest for 1 minute", "x5 rounds", "Perform each exercise for as many reps as possible in the minute.",
	}},
	{Number: 25, Title: "GC 1 (Beat Your Face)", Steps: []string{
		"Burpees for 3 minutes", "Rest for 3 minutes", "Burpees for 2 minutes", "Rest for 2 minutes", "Burpees for 1 minute", "Rest for 1 minute", "x1-3 rounds", "Perform as many burpees as possible in the given time.",
	}},
	{Number: 26, Title: "GC 2", Steps: []string{
		"Pull-ups x10, burpees x10, squat jumps x10, plyometric push-ups x10", "Pull-ups x9, burpees x9, etc.", "Continue this descending ladder to 1 rep.", "Complete the entire workout for time.",
	}},
	{Number: 27, Title: "GC 3 (Brig Rat)", Steps: []string{
		"Burpees for 30 seconds", "Dips for 30 seconds", "Burpees for 30 seconds", "Squats for 30 seconds", "Burpees for 30 seconds", "Back extensions for 30 seconds", "Rest for 1 minute", "x3-5 rounds", "Use bodyweight for squats. A plank can replace back extensions.",
	}},
	{Number: 28, Title: "GC 4", Steps: []string{
		"100 pull-ups", "400m run", "100 push-ups", "400m run", "100 kettlebell/dumbbell swings", "400m run", "Complete for time.",
	}},
	{Number: 29, Title: "GC 5", Steps: []string{
		"A", "Max dips in 1 minute", "Rest 90 seconds", "Max push-ups in 1 minute", "Rest 90 seconds", "x3 rounds", "B", "5 pull-ups", "10 burpees", "x3 rounds", "Complete all of A, then rest 2 minutes before starting B.",
	}},
	{Number: 30, Title: "GC 6", Steps: []string{
		"Sledgehammer/Tire Strikes x10", "Burpees x5", "Squats x10", "As many rounds as possible in 5 minutes", "Rest 60-90 seconds", "x3 rounds", "Kettlebell or dumbbell swings can be substituted for sledgehammer strikes.",
	}},
	{Number: 31, Title: "GC 7", Steps: []string{
		"50 burpees", "50 squats", "50 diamond push-ups", "800m run", "x3 rounds", "Complete for time.",
	}},
	{Number: 32, Title: "GC 8", Steps: []string{
		"A", "10 kettlebell/dumbbell snatches per arm", "25 box jumps", "25 hanging knees to elbow", "25 dips", "5 burpees", "x4 rounds for time", "B", "60 seconds handstand static hold", "Rest 2-3 minutes", "x3 rounds", "Complete A before moving to B.",
	}},
	{Number: 33, Title: "GC 9", Steps: []string{
		"A", "3 pull-ups", "5 burpees", "10 squats", "Complete as many rounds as possible in 10 minutes.", "B", "10x 100m sprints", "Complete A before moving to B.",
	}},
	{Number: 34, Title: "GC 10", Steps: []string{
		"A", "2 minute jog", "25 burpees", "x4 rounds", "B", "Core or grip finisher", "The burpees should be completed as quickly as possible.",
	}},
	{Number: 35, Title: "GC 11 (Outside the Wire)", Steps: []string{
		"A", "100m sprint", "50m bear crawl", "x5 rounds for time", "B", "100 sledgehammer/tire strikes for time", "Complete A and B as quickly as possible.",
	}},
	{Number: 36, Title: "GC 12", Steps: []string{
		"A", "1.5 mile run for time", "B", "20 barbell push-press", "20 back extensions", "20 pull-ups", "x3 rounds for time", "Use a light weight (15-30% of your 1RM) for the push-press.",
	}},
	{Number: 37, Title: "BW Plyo - Power", Steps: []string{
		"A", "10 explosive plyometric push-ups", "Rest 90 seconds", "10 explosive jump squats", "Rest 90 seconds", "5-10 explosive plyometric pull-ups", "Rest 2 minutes", "x3 rounds", "B", "5x 50m sprints", "The movements in A should be explosive and crisp.",
	}},
	{Number: 38, Title: "Power Complex", Steps: []string{
		"5 barbell push-press at 60-70% of 1RM", "Rest 1-2 minutes", "10 double kettlebell/dumbbell squat jumps", "Rest 1-2 minutes", "5 kettlebell/dumbbell snatches per arm", "Rest 1-2 minutes", "5 plyo pull-ups", "Rest 1-2 minutes", "x3 rounds", "Perform all exercises with maximum speed and explosiveness.",
	}},
	{Number: 39, Title: "Kinetic Conditioning", Steps: []string{
		"50m sprint + 5 explosive plyometric push-ups", "Rest 2 minutes", "50m sprint + 5 explosive squat jumps", "Rest 2 minutes", "x3 rounds", "All movements must be performed at maximum intensity. Take more than 2 minutes of rest if needed.",
	}},
	{Number: 40, Title: "Transition Complex", Steps: []string{
		"3 front squats at 85% of 1RM", "10 squat jumps", "Rest 2 minutes", "3 standing overhead presses at 85% of 1RM", "10 plyometric push-ups", "Rest 2 minutes", "3 weighted pull-ups", "10 medicine ball slams", "x2-3 rounds", "The heavy lifts should prime you for the power work.",
	}},
}
