package render

import (
	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/system"
)

// Arena palette
var (
	RgbBackground = RGB{R: 26, G: 27, B: 38} // Tokyo Night background
	RgbBlack      = RGB{}
	RgbFloor      = RGB{R: 38, G: 18, B: 14}
	RgbWall       = RGB{R: 150, G: 120, B: 100}

	RgbPlayer = RGB{R: 0, G: 255, B: 0}
	RgbFacing = RGB{R: 170, G: 255, B: 170}

	RgbEnemy     = RGB{R: 255, G: 50, B: 30}
	RgbEnemyHurt = RGB{R: 110, G: 15, B: 10}

	RgbBullet          = RGB{R: 255, G: 255, B: 120}
	RgbExplosiveBullet = RGB{R: 255, G: 110, B: 0}

	RgbFlash = RGB{R: 255, G: 0, B: 0}
)

// HUD palette
var (
	RgbHUDBg          = RGB{R: 20, G: 0, B: 0}
	RgbHUDText        = RGB{R: 255, G: 255, B: 255}
	RgbHUDLabel       = RGB{R: 180, G: 180, B: 180}
	RgbHealthGood     = RGB{R: 0, G: 255, B: 0}
	RgbHealthWarning  = RGB{R: 255, G: 255, B: 0}
	RgbHealthCritical = RGB{R: 255, G: 0, B: 0}
	RgbHealthInvuln   = RGB{R: 255, G: 255, B: 255}
	RgbRecord         = RGB{R: 255, G: 215, B: 0}
)

// Ray-cast palette
var (
	RgbCeiling = RGB{R: 20, G: 10, B: 10}
	RgbGround  = RGB{R: 60, G: 30, B: 20}
)

// HealthColor returns the HUD color for a health value by threshold
func HealthColor(health int, invulnerable bool) RGB {
	switch {
	case invulnerable:
		return RgbHealthInvuln
	case health < parameter.HealthCritical:
		return RgbHealthCritical
	case health < parameter.HealthWarning:
		return RgbHealthWarning
	default:
		return RgbHealthGood
	}
}

var powerupGlyphs = [component.PowerupTypeCount]rune{
	component.PowerupHealth:          '+',
	component.PowerupDamage:          'B',
	component.PowerupSpeed:           'S',
	component.PowerupFireRate:        'C',
	component.PowerupInvulnerability: 'I',
	component.PowerupExplosive:       'X',
	component.PowerupDoubleShot:      'D',
}

// PowerupGlyph returns the map glyph of a powerup type
func PowerupGlyph(t component.PowerupType) rune {
	if t.Valid() {
		return powerupGlyphs[t]
	}
	return '?'
}

// PowerupColor returns the effect color of a powerup type
func PowerupColor(t component.PowerupType) RGB {
	if eff, ok := system.DescribeEffect(t); ok {
		return eff.Color
	}
	return RgbHUDText
}
