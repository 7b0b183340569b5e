package render

// Base palette. Wall faces come in a hue pair so perpendicular
// surfaces read as distinct under identical lighting.
var (
	ColorBackground = RGB{R: 4, G: 3, B: 6}
	ColorFloor      = RGB{R: 26, G: 20, B: 16}
	ColorCeiling    = RGB{R: 10, G: 8, B: 14}

	ColorWallLit  = RGB{R: 168, G: 148, B: 118} // vertical faces
	ColorWallDark = RGB{R: 118, G: 102, B: 86}  // horizontal faces

	ColorKey      = RGB{R: 230, G: 200, B: 60}
	ColorArtifact = RGB{R: 150, G: 90, B: 220}
	ColorNote     = RGB{R: 210, G: 210, B: 190}
	ColorLight    = RGB{R: 255, G: 170, B: 70}
	ColorHazard   = RGB{R: 200, G: 40, B: 40}
	ColorDoor     = RGB{R: 90, G: 160, B: 150}
)

func kindColor(k SpriteKind) RGB {
	switch k {
	case SpriteKey:
		return ColorKey
	case SpriteArtifact:
		return ColorArtifact
	case SpriteNote:
		return ColorNote
	case SpriteLight:
		return ColorLight
	case SpriteHazard:
		return ColorHazard
	case SpriteDoor:
		return ColorDoor
	}
	return ColorNote
}
