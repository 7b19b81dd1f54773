package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive plays of the same cue
	MinSoundGap = 40 * time.Millisecond
)

// Default Volumes (0.0-1.0, scaled by master)
const (
	AudioMasterVolume  = 0.5
	AudioShootVolume   = 0.6
	AudioHitVolume     = 0.9
	AudioPowerupVolume = 1.0
	AudioMusicVolume   = 0.3
)

// Shoot Sound
const (
	ShootSoundDuration = 120 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 90 * time.Millisecond
	ShootSoundFreq     = 140.0 // Hz, body under the noise burst
)

// Hit Sound
const (
	HitSoundDuration = 180 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 120 * time.Millisecond
	HitSoundFreq     = 90.0
)

// Powerup Sound
const (
	PowerupSoundNote1Duration = 90 * time.Millisecond
	PowerupSoundNote2Duration = 260 * time.Millisecond
	PowerupSoundAttack        = 5 * time.Millisecond
	PowerupSoundNote1Release  = 40 * time.Millisecond
	PowerupSoundNote2Release  = 200 * time.Millisecond
	PowerupSoundNote1Freq     = 659.25 // E5
	PowerupSoundNote2Freq     = 987.77 // B5
)

// Background Loop
const (
	// MusicBeat is one kick period (120 BPM)
	MusicBeat     = 500 * time.Millisecond
	MusicKickTail = 110 * time.Millisecond
	MusicBassFreq = 55.0 // A1
)
