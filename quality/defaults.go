package quality

// DefaultComponents spells conventional chord symbols in 12-TET semitones.
var DefaultComponents = Components{
	Triads: []Triad{
		{"", []int{0, 4, 7}},
		{"m", []int{0, 3, 7}},
		{"dim", []int{0, 3, 6}},
		{"aug", []int{0, 4, 8}},
		{"sus2", []int{0, 2, 7}},
		{"sus4", []int{0, 5, 7}},
		{"dim7", []int{0, 3, 6, 9}},
		{"5", []int{0, 7}},
	},
	Extensions: []Extension{
		{"", 0},
		{"6", 9},
		{"7", 10},
		{"M7", 11},
	},
	Tensions: []Tension{
		{Name: "b5", Interval: 6, Replaces: 7, Group: "5"},
		{Name: "#5", Interval: 8, Replaces: 7, Group: "5"},
		{Name: "b9", Interval: 13, Group: "9"},
		{Name: "9", Interval: 14, Group: "9"},
		{Name: "#9", Interval: 15, Group: "9"},
		{Name: "11", Interval: 17, Group: "11"},
		{Name: "#11", Interval: 18, Group: "11"},
		{Name: "b13", Interval: 20, Group: "13"},
		{Name: "13", Interval: 21, Group: "13"},
	},
	MaxTensions: 2,
}

var conflicts = map[string]string{
	"b5": "#11",
	"#5": "b13",
}

func hasPerfectFifth(triad Triad) bool {
	for _, v := range triad.Intervals {
		if v == 7 {
			return true
		}
	}
	return false
}

// DefaultValidator rejects combinations that are not written as chord symbols.
func DefaultValidator(triad Triad, ext Extension, tensions []Tension) bool {
	switch triad.Name {
	case "dim7", "5":
		return ext.Name == "" && len(tensions) == 0
	case "dim":
		if ext.Name != "" {
			return false
		}
	case "aug":
		if ext.Name == "6" {
			return false
		}
	}

	groups := map[string]bool{}
	names := map[string]bool{}
	for _, t := range tensions {
		if groups[t.Group] {
			return false
		}
		groups[t.Group] = true
		names[t.Name] = true
	}
	for a, b := range conflicts {
		if names[a] && names[b] {
			return false
		}
	}
	if groups["5"] && !hasPerfectFifth(triad) {
		return false
	}
	switch triad.Name {
	case "m":
		if names["#9"] {
			return false
		}
	case "sus2":
		if groups["9"] {
			return false
		}
	case "sus4":
		if groups["11"] {
			return false
		}
	case "dim", "aug":
		if groups["5"] || names["b13"] || names["#11"] {
			return false
		}
	}
	return true
}

// Default returns a freshly generated table of the default qualities.
func Default() *Table {
	return NewTable(Generate(DefaultComponents, DefaultValidator))
}
