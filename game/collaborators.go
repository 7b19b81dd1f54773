package game

import (
	"github.com/google/uuid"

	"github.com/SrWilson89/doom/component"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Notifier,SoundPlayer,ScoreStore

// Notifier shows transient feedback to the player
type Notifier interface {
	// Notify displays a pickup message in its color
	Notify(message string, color component.RGB)
	// DamageFlash signals the player was hit
	DamageFlash()
}

// SoundPlayer plays cues and the background loop
// Failures are reported but never stop the simulation
type SoundPlayer interface {
	Play(cue component.Cue) error
	StartMusic() error
	StopMusic()
}

// ScoreStore persists the best score across sessions
type ScoreStore interface {
	// Best returns the stored best score, zero when none exists
	Best() (int, error)
	// Submit records score and returns the best after the update
	// newRecord is true when score strictly exceeded the previous best
	Submit(score int, session uuid.UUID) (best int, newRecord bool, err error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, component.RGB) {}
func (nopNotifier) DamageFlash()                 {}

type nopSound struct{}

func (nopSound) Play(component.Cue) error { return nil }
func (nopSound) StartMusic() error        { return nil }
func (nopSound) StopMusic()               {}
