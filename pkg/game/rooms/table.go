package rooms

import (
	"errors"
	"math/rand"
	"sort"

	"dungeongen/pkg/game/config"
)

// ErrNoEligibleEntry is returned by Select when no entry can be drawn
var ErrNoEligibleEntry = errors.New("no eligible room type")

// FallbackType is used when the table has nothing to offer
var FallbackType = config.RoomType{
	Shape:    config.ShapeRectangular,
	Weight:   0,
	MaxDoors: config.DefaultRectangularDoors,
}

// RoomTable selects room types. Mandatory entries (PerWorldMin) come first,
// highest priority first; after that entries are drawn by weight.
type RoomTable struct {
	entries     []config.RoomType
	mandatory   []config.RoomType
	totalWeight int
}

// NewRoomTable builds a table from config entries
func NewRoomTable(types []config.RoomType) *RoomTable {
	t := &RoomTable{entries: append([]config.RoomType(nil), types...)}

	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Priority > t.entries[j].Priority
	})

	for _, e := range t.entries {
		t.totalWeight += e.Weight
		for i := 0; i < e.PerWorldMin; i++ {
			t.mandatory = append(t.mandatory, e)
		}
	}

	return t
}

// MandatoryCount returns how many room indices are reserved for mandatory entries
func (t *RoomTable) MandatoryCount() int {
	return len(t.mandatory)
}

// Select returns the room type for the room at index. Weighted draws consume
// one value from rng; mandatory picks consume nothing. When nothing is
// eligible it returns FallbackType with ErrNoEligibleEntry.
func (t *RoomTable) Select(index int, rng *rand.Rand) (config.RoomType, error) {
	if index < len(t.mandatory) {
		return t.mandatory[index], nil
	}

	if t.totalWeight <= 0 {
		return FallbackType, ErrNoEligibleEntry
	}

	w := rng.Intn(t.totalWeight)
	for _, e := range t.entries {
		w -= e.Weight
		if w < 0 {
			return e, nil
		}
	}

	return FallbackType, ErrNoEligibleEntry
}
