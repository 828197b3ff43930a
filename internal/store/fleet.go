package store

import (
	"slices"

	"github.com/jask/courierapp/internal/record"
)

const kindDriver = "driver"

// Roster holds the session's drivers.
type Roster struct {
	drivers []record.Driver
}

// NewRoster returns a roster holding a copy of drivers.
func NewRoster(drivers []record.Driver) *Roster {
	return &Roster{drivers: slices.Clone(drivers)}
}

func (r *Roster) List() []record.Driver {
	return slices.Clone(r.drivers)
}

// Visible returns every driver, or only the available ones.
func (r *Roster) Visible(onlyAvailable bool) []record.Driver {
	if !onlyAvailable {
		return r.List()
	}
	out := make([]record.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		if d.Available {
			out = append(out, d)
		}
	}
	return out
}

// ToggleAvailability flips the driver between available and offline and
// returns the updated driver.
func (r *Roster) ToggleAvailability(id string) (record.Driver, error) {
	i := slices.IndexFunc(r.drivers, func(d record.Driver) bool { return d.ID == id })
	if i < 0 {
		return record.Driver{}, &record.NotFoundError{Kind: kindDriver, ID: id}
	}
	r.drivers[i].Available = !r.drivers[i].Available
	return r.drivers[i], nil
}

func (r *Roster) AvailableCount() int {
	n := 0
	for _, d := range r.drivers {
		if d.Available {
			n++
		}
	}
	return n
}

// Board is the read-only orders list.
type Board struct {
	orders []record.Order
}

func NewBoard(orders []record.Order) *Board {
	return &Board{orders: slices.Clone(orders)}
}

func (b *Board) List() []record.Order {
	return slices.Clone(b.orders)
}

// CountByStatus tallies orders per delivery stage.
func (b *Board) CountByStatus() map[record.OrderStatus]int {
	out := make(map[record.OrderStatus]int, len(record.OrderStatuses))
	for _, o := range b.orders {
		out[o.Status]++
	}
	return out
}
