package domain

// DepositKind names one of the three deposits of the machine.
type DepositKind string

const (
	DepositCoffee DepositKind = "coffee"
	DepositWater  DepositKind = "water"
	DepositWaste  DepositKind = "waste"
)

// Deposit is a bounded reservoir of a consumable or a waste sink.
// Invariant: 0 <= Load <= Capacity.
type Deposit struct {
	Load     uint8 `json:"load"`
	Capacity uint8 `json:"capacity"`
}

// NewDeposit returns an empty deposit with the given capacity.
func NewDeposit(capacity uint8) Deposit {
	return Deposit{Capacity: capacity}
}

// Fill sets the load to the capacity.
func (d *Deposit) Fill() {
	d.Load = d.Capacity
}

// Empty sets the load to zero.
func (d *Deposit) Empty() {
	d.Load = 0
}

// Room is the amount that can still be added before the deposit is at capacity.
func (d Deposit) Room() uint8 {
	return d.Capacity - d.Load
}

// CanDraw reports whether n units can be taken without going below zero.
func (d Deposit) CanDraw(n uint8) bool {
	return d.Load >= n
}

// CanAdd reports whether n units can be added without exceeding the capacity.
func (d Deposit) CanAdd(n uint8) bool {
	return d.Room() >= n
}
