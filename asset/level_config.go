package asset

// DefaultArenaLevel returns the default arena level YAML
// Coordinates are arena units; walls are [x1, y1, x2, y2], points are [x, y]
const DefaultArenaLevel = `
name: hell-arena
width: 800
height: 600
player_start: [400, 300]

walls:
  # Outer boundary
  - [50, 50, 750, 50]
  - [750, 50, 750, 550]
  - [750, 550, 50, 550]
  - [50, 550, 50, 50]
  # Upper-left pillar (open bottom-right)
  - [250, 150, 350, 150]
  - [350, 150, 350, 250]
  - [250, 250, 250, 150]
  # Lower-right pillar
  - [450, 350, 550, 350]
  - [550, 350, 550, 450]
  - [450, 450, 450, 350]
  # Cover
  - [150, 350, 150, 400]
  - [650, 200, 650, 250]

initial_spawns:
  - [150, 150]
  - [650, 150]
  - [150, 450]
  - [650, 450]
  - [400, 100]
  - [100, 300]
  - [700, 300]

spawn_points:
  - [100, 100]
  - [700, 100]
  - [100, 500]
  - [700, 500]
  - [400, 80]
  - [80, 300]
  - [720, 300]
`
