package generator

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/rooms"
)

// Placement is the outcome of PlaceRooms
type Placement struct {
	Rooms           []*rooms.Room
	Exhausted       bool
	Fallbacks       int
	CandidatesTried int
}

// PlaceRooms places up to cfg.RoomCount rooms by rejection sampling.
//
// Room types are drawn from rng. Each room index gets its own stream derived
// from seed, so a room's geometry only depends on the seed, its index and its
// type. Placement stops at the first room that cannot be placed within
// cfg.PlacementAttempts candidates.
func PlaceRooms(grid *world.Grid, cfg config.Config, seed int64, rng *rand.Rand, notify Listener) Placement {
	var p Placement
	table := rooms.NewRoomTable(cfg.RoomTypes)

	for i := 0; i < cfg.RoomCount; i++ {
		rt, err := table.Select(i, rng)
		if err != nil {
			p.Fallbacks++
			notify.emit(Event{Kind: EventTypeFallback, Index: i, RoomType: rt})
		}

		room := rooms.NewRoom(i, rt)
		roomRng := rand.New(rand.NewSource(RoomSeed(seed, i)))

		placed := false
		attempts := 0
		for attempts < cfg.PlacementAttempts {
			attempts++
			room.Generate(roomRng, cfg)
			if !collidesWithAny(room, p.Rooms) {
				placed = true
				break
			}
		}
		p.CandidatesTried += attempts

		if !placed {
			p.Exhausted = true
			notify.emit(Event{Kind: EventPlacementExhausted, Index: i, Attempts: attempts, RoomType: rt})
			break
		}

		if cfg.Features.Rooms {
			room.Populate(grid)
		}
		if cfg.Features.Decor {
			room.PopulateDecor(grid)
		}

		p.Rooms = append(p.Rooms, room)
		notify.emit(Event{Kind: EventRoomPlaced, Index: i, Attempts: attempts, Room: room, RoomType: rt})
	}

	return p
}

func collidesWithAny(candidate *rooms.Room, placed []*rooms.Room) bool {
	for _, other := range placed {
		if rooms.Collides(candidate.Shape, other.Shape) {
			return true
		}
	}
	return false
}

// RoomSeed derives the seed of a room's private stream (splitmix64)
func RoomSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
