package table

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/rowdrag/drag"
)

// Bounds is the on-screen box of a zone, inclusive on every edge.
type Bounds struct {
	StartX, StartY int
	EndX, EndY     int
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.StartX && x <= b.EndX && y >= b.StartY && y <= b.EndY
}

// Rect returns the vertical extent of the box.
func (b Bounds) Rect() drag.Rect {
	return drag.Rect{Top: b.StartY, Height: b.EndY - b.StartY + 1}
}

// Locator finds where a marked zone was last rendered.
type Locator interface {
	Locate(id string) (Bounds, bool)
}

type zoneLocator struct {
	manager *zone.Manager
}

// ZoneLocator locates zones tracked by a bubblezone manager. A nil manager
// means the global one.
func ZoneLocator(m *zone.Manager) Locator {
	return zoneLocator{manager: m}
}

func (l zoneLocator) Locate(id string) (Bounds, bool) {
	var z *zone.ZoneInfo
	if l.manager != nil {
		z = l.manager.Get(id)
	} else {
		z = zone.Get(id)
	}
	if z.IsZero() {
		return Bounds{}, false
	}
	return Bounds{StartX: z.StartX, StartY: z.StartY, EndX: z.EndX, EndY: z.EndY}, true
}
