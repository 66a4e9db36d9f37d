package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/brewer/pkg/domain"
)

// Warning flags appended to a deposit line.
const (
	FlagEmpty = "EMPTY"
	FlagFull  = "FULL"
)

// Status is a point-in-time view of the machine.
type Status struct {
	Coffee      domain.Deposit `json:"coffee"`
	Water       domain.Deposit `json:"water"`
	Waste       domain.Deposit `json:"waste"`
	CoffeeEmpty bool           `json:"coffee_empty"`
	WaterEmpty  bool           `json:"water_empty"`
	WasteFull   bool           `json:"waste_full"`
	State       domain.State   `json:"state"`
}

// Status captures the deposits, the warning predicates and the state.
func (c *Controller) Status() Status {
	return Status{
		Coffee:      c.coffee,
		Water:       c.water,
		Waste:       c.waste,
		CoffeeEmpty: c.CoffeeDepositEmpty(),
		WaterEmpty:  c.WaterDepositEmpty(),
		WasteFull:   c.WasteDumpFull(),
		State:       c.state,
	}
}

// RenderStatus renders the current status as plain text.
func (c *Controller) RenderStatus() string {
	return c.Status().String()
}

// StatusLine is one rendered row of a Status.
type StatusLine struct {
	Name    string
	Deposit domain.Deposit
	Flag    string
}

// Lines returns the deposit rows in display order.
// Flag is empty when no warning applies.
func (s Status) Lines() []StatusLine {
	return []StatusLine{
		{Name: "Coffee", Deposit: s.Coffee, Flag: flag(s.CoffeeEmpty, FlagEmpty)},
		{Name: "Water", Deposit: s.Water, Flag: flag(s.WaterEmpty, FlagEmpty)},
		{Name: "Waste", Deposit: s.Waste, Flag: flag(s.WasteFull, FlagFull)},
	}
}

func (s Status) String() string {
	var b strings.Builder
	for _, l := range s.Lines() {
		fmt.Fprintf(&b, "%s: %d/%d", l.Name, l.Deposit.Load, l.Deposit.Capacity)
		if l.Flag != "" {
			fmt.Fprintf(&b, " [%s]", l.Flag)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "State: %s", s.State)
	return b.String()
}

func flag(on bool, name string) string {
	if on {
		return name
	}
	return ""
}
