package devtools

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/rooms"
)

// DevMapSize is the width and height of the developer test map
const DevMapSize = 50

// DevDungeon builds a hard-coded 50x50 developer test map: a boss room in the
// middle with rooms lined up on its east and south nubs, plus corner rooms
// holding chests. Every tile type and both straight tunnel kinds show up.
func DevDungeon(opts ...generator.Option) (*generator.Dungeon, error) {
	cfg := config.Default()
	cfg.WorldWidth = DevMapSize
	cfg.WorldHeight = DevMapSize
	cfg.RoomCount = 6

	gen, err := generator.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	boss := rooms.NewBossRoom(world.Point{X: 25, Y: 25}, 6, cfg)

	topLeft := rooms.NewRectangularRoom(world.Rect{Left: 2, Top: 2, Right: 8, Bottom: 7})
	topLeft.AddChest(world.Point{X: 4, Y: 4})
	topRight := rooms.NewRectangularRoom(world.Rect{Left: 40, Top: 3, Right: 46, Bottom: 8})
	topRight.AddChest(world.Point{X: 42, Y: 5})

	shapes := []rooms.Shape{
		boss,
		topLeft,
		// shares rows with the boss's east nub
		rooms.NewRectangularRoom(world.Rect{Left: 38, Top: 24, Right: 44, Bottom: 28}),
		// shares columns with the boss's south nub
		rooms.NewRectangularRoom(world.Rect{Left: 24, Top: 40, Right: 28, Bottom: 46}),
		topRight,
		rooms.NewRectangularRoom(world.Rect{Left: 3, Top: 40, Right: 9, Bottom: 46}),
	}

	rs := make([]*rooms.Room, len(shapes))
	for i, s := range shapes {
		rs[i] = rooms.NewRoomWithShape(i, s)
	}
	return gen.FromRooms(cfg.Seed, rs), nil
}
