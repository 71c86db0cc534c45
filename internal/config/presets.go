package config

import "sort"

// Preset is a named starting script for one mode.
type Preset struct {
	Mode        string
	Description string
	Script      string
}

var Presets = map[string]map[string]Preset{
	"linkedlist": {
		"basic": {
			Mode:        "linkedlist",
			Description: "three nodes with a middle insert",
			Script:      "insert 5\ninsert 10\ninsert 7 1\n",
		},
		"splice": {
			Mode:        "linkedlist",
			Description: "inserts and deletes at the head, middle and tail",
			Script:      "insert 1\ninsert 2\ninsert 3\ninsert 0 0\ninsert 9 2\ndelete 99\ndelete\n",
		},
	},
	"stack": {
		"lifo": {
			Mode:        "stack",
			Description: "push three values and pop two",
			Script:      "push 1\npush 2\npush 3\npop\npop\n",
		},
		"tower": {
			Mode:        "stack",
			Description: "a tall stack",
			Script:      "push 10\npush 20\npush 30\npush 40\npush 50\n",
		},
	},
	"queue": {
		"fifo": {
			Mode:        "queue",
			Description: "interleaved enqueue and dequeue",
			Script:      "enqueue 1\nenqueue 2\ndequeue\nenqueue 3\nenqueue 4\ndequeue\n",
		},
		"line": {
			Mode:        "queue",
			Description: "a queue of five",
			Script:      "enqueue 1\nenqueue 2\nenqueue 3\nenqueue 4\nenqueue 5\n",
		},
	},
}

func GetPreset(mode, name string) *Preset {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	p, ok := modePresets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names for mode in sorted order.
func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
