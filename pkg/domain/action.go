package domain

import (
	"strings"
)

// Action is an operator-selectable operation.
// Brew actions are valid only while Ready, maintenance actions only while ActionRequired.
type Action int

const (
	ActionEspresso Action = iota + 1
	ActionAmerican
	ActionHotWater
	ActionFillWater
	ActionFillCoffee
	ActionEmptyDump
)

type actionInfo struct {
	label       string
	description string
	brew        bool
}

// actionTable is the single mapping between variants and their labels.
var actionTable = map[Action]actionInfo{
	ActionEspresso:   {label: "Espresso", description: "Brew an espresso", brew: true},
	ActionAmerican:   {label: "American", description: "Brew an american coffee", brew: true},
	ActionHotWater:   {label: "HotWater", description: "Pour hot water", brew: true},
	ActionFillWater:  {label: "FillWater", description: "Fill the water deposit"},
	ActionFillCoffee: {label: "FillCoffee", description: "Fill the coffee deposit"},
	ActionEmptyDump:  {label: "EmptyDump", description: "Empty the waste dump"},
}

var (
	brewActions        = []Action{ActionEspresso, ActionAmerican, ActionHotWater}
	maintenanceActions = []Action{ActionFillWater, ActionFillCoffee, ActionEmptyDump}
)

// Label returns the stable label used to submit the action.
func (a Action) Label() string {
	if info, ok := actionTable[a]; ok {
		return info.label
	}
	return ""
}

// Description returns a short human readable description.
func (a Action) Description() string {
	return actionTable[a].description
}

// IsBrew reports whether the action draws from the deposits.
func (a Action) IsBrew() bool {
	return actionTable[a].brew
}

func (a Action) String() string {
	if l := a.Label(); l != "" {
		return l
	}
	return "Unknown"
}

// MarshalText lets Action appear by label in JSON frames and structured logs.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseAction resolves a label to its action.
// Matching ignores case and surrounding whitespace.
func ParseAction(label string) (Action, bool) {
	label = strings.TrimSpace(label)
	for _, a := range AllActions() {
		if strings.EqualFold(a.Label(), label) {
			return a, true
		}
	}
	return 0, false
}

// AllActions lists every action in declaration order.
func AllActions() []Action {
	all := make([]Action, 0, len(brewActions)+len(maintenanceActions))
	all = append(all, brewActions...)
	return append(all, maintenanceActions...)
}

// ActionsFor returns the ordered actions that are valid in the given state.
// The returned slice is a copy and may be modified by the caller.
func ActionsFor(state State) []Action {
	var src []Action
	if state == StateReady {
		src = brewActions
	} else {
		src = maintenanceActions
	}
	return append([]Action(nil), src...)
}

// Labels maps actions to their labels, preserving order.
func Labels(actions []Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label()
	}
	return labels
}
