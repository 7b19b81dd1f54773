package component

// Cue is a sound effect requested by the simulation
type Cue uint8

const (
	CueShoot Cue = iota
	CueHit
	CuePowerup

	CueCount
)

var cueNames = [CueCount]string{
	CueShoot:   "shoot",
	CueHit:     "hit",
	CuePowerup: "powerup",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}
