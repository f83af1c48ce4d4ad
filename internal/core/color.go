package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette for the runner: pastel tones of a pink-sky scheme, mapped to
// 256-color terminals.
const (
	ColorDefault  Color = iota
	ColorSky            // background dots and horizon
	ColorCloud          // drifting clouds
	ColorGround         // ground line
	ColorFlower         // foreground decoration on the ground strip
	ColorDino           // player body
	ColorDinoDark       // player outline/legs
	ColorBow            // player accent
	ColorObstacle       // ground obstacles
	ColorBird           // flying obstacles
	ColorSparkle        // jump particles
	ColorText           // HUD and overlay text
	ColorAlert          // game over title
)
