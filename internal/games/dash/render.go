package dash

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	SpikeChar    = '▲'
	BackdropChar = '░'
	BubbleSmall  = '°'
	BubbleLarge  = 'o'
	BarFull      = '█'
	BarEmpty     = '░'
)

// obstaclePalette colors obstacles by sprite index.
var obstaclePalette = []core.Color{
	core.ColorOrange,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorRed,
}

// viewport scales the 1200×800 design canvas onto the terminal grid.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / core.DesignWidth,
		sy: float64(dst.Height()) / core.DesignHeight,
	}
}

// cells returns the cell rectangle covering r. Anything on screen covers
// at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y * v.sy))
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

func (v viewport) point(px, py float64) (int, int) {
	return int(math.Floor(px * v.sx)), int(math.Floor(py * v.sy))
}

func (v viewport) row(py float64) int {
	return int(math.Floor(py * v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || g.player == nil {
		return
	}
	v := newViewport(dst)

	g.drawBackdrop(dst, v)
	for _, b := range g.bubbles {
		g.drawBubble(dst, v, b)
	}
	for _, p := range g.platforms {
		x, y, w, _ := v.cells(p.Rect)
		dst.DrawHLine(x, y, w, core.Cell{Rune: PlatformChar, Color: core.ColorGreen})
	}
	sprites := g.assets.ObstacleSprites()
	for _, o := range g.obstacles {
		glyph := fallbackObstacle.Glyph
		if o.Sprite < len(sprites) {
			glyph = sprites[o.Sprite].Glyph
		}
		x, y, w, h := v.cells(o.Rect)
		dst.FillRect(x, y, w, h, core.Cell{Rune: glyph, Color: obstaclePalette[o.Sprite%len(obstaclePalette)]})
	}
	coinGlyph := g.assets.CoinSprite().Glyph
	for _, c := range g.coins {
		x, y, _, _ := v.cells(c.Rect)
		dst.SetCell(x, y, core.Cell{Rune: coinGlyph, Color: core.ColorBrightYellow})
	}
	g.drawSpikes(dst, v)

	px, py, pw, ph := v.cells(g.player.Rect)
	dst.FillRect(px, py, pw, ph, core.Cell{Rune: PlayerChar, Color: core.ColorBlue})

	g.drawHUD(dst)
	g.drawChargeBar(dst)
	g.drawOverlay(dst)
}

// drawBackdrop shades the band behind the spikes.
func (g *Game) drawBackdrop(dst *core.Screen, v viewport) {
	top := v.row(core.DesignHeight - g.cfg.Spikes.Height - g.cfg.Spikes.Backdrop)
	for y := max(top, 0); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), core.Cell{Rune: BackdropChar, Color: core.ColorGray})
	}
}

// drawSpikes fills the bottom strip with spike glyphs.
func (g *Game) drawSpikes(dst *core.Screen, v viewport) {
	top := min(v.row(core.DesignHeight-g.cfg.Spikes.Height), dst.Height()-1)
	for y := top; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), core.Cell{Rune: SpikeChar, Color: core.ColorRed})
	}
}

func (g *Game) drawBubble(dst *core.Screen, v viewport, b Bubble) {
	x, y := v.point(b.X, b.Y)
	glyph := BubbleSmall
	if b.Radius >= 8 {
		glyph = BubbleLarge
	}
	dst.SetCell(x, y, core.Cell{Rune: glyph, Color: core.ColorCyan})
}

// drawHUD draws timer, level, coins and lives.
func (g *Game) drawHUD(dst *core.Screen) {
	timeText := fmt.Sprintf(" Time: %d ", int(g.RemainingSeconds()))
	dst.DrawTextColor(1, 0, timeText, core.ColorWhite)

	levelText := fmt.Sprintf(" Level: %d / %d ", g.session.LevelIndex+1, g.LevelCount())
	dst.DrawTextCentered(0, levelText, core.ColorWhite)

	coinsText := fmt.Sprintf(" Coins: %d ", g.session.Total())
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(coinsText)-1, 0, coinsText, core.ColorBrightYellow)

	livesText := fmt.Sprintf(" Lives: %d ", g.session.Lives)
	dst.DrawTextColor(1, 1, livesText, core.ColorBrightRed)
}

// drawChargeBar draws the vertical jump-charge meter in the bottom right.
func (g *Game) drawChargeBar(dst *core.Screen) {
	barH := max(dst.Height()/6, 3)
	x := dst.Width() - 2
	bottom := dst.Height() - 3
	filled := int(math.Round(g.player.ChargeFraction() * float64(barH)))

	for i := 0; i < barH; i++ {
		c := core.Cell{Rune: BarEmpty, Color: core.ColorGray}
		if i < filled {
			c = core.Cell{Rune: BarFull, Color: core.ColorBrightRed}
		}
		dst.SetCell(x, bottom-i, c)
	}
}

// drawOverlay draws the message box for the current state.
func (g *Game) drawOverlay(dst *core.Screen) {
	switch g.state {
	case StateLevelComplete:
		drawMessage(dst, core.ColorBrightGreen,
			fmt.Sprintf("Level %d Complete!", g.session.LevelIndex+1),
			fmt.Sprintf("Coins: %d", g.session.Total()),
			"",
			"Press any key to continue")
	case StateGameOver:
		drawMessage(dst, core.ColorBrightRed,
			"OUCH!",
			fmt.Sprintf("Lives left: %d", g.session.Lives),
			"",
			fmt.Sprintf("Press any key to retry level %d", g.session.LevelIndex+1))
	case StateOutOfLives:
		title := "GAME OVER"
		if g.session.Lives > 0 {
			title = "ALL LEVELS CLEARED"
		}
		drawMessage(dst, core.ColorBrightYellow,
			title,
			fmt.Sprintf("Coins: %d", g.session.FinalCoins),
			"",
			"Enter your initials (up to 3 letters):",
			initialsField(g.initials.Typed()),
			"",
			"[Backspace=delete | Enter=confirm]")
	case StateScoreboard:
		drawMessage(dst, core.ColorWhite, g.scoreboardLines(dst.Height()-4)...)
	default:
		if g.paused {
			drawMessage(dst, core.ColorWhite, "PAUSED", "", "Press P to resume")
		}
	}
}

// scoreboardLines formats the leaderboard to fit maxLines rows.
func (g *Game) scoreboardLines(maxLines int) []string {
	lines := []string{"TOP SCORES", ""}
	if len(g.board) == 0 {
		lines = append(lines, "No scores recorded")
	}
	room := max(maxLines-len(lines)-2, 1)
	for i, e := range g.board {
		if i >= room {
			break
		}
		lines = append(lines, fmt.Sprintf("%2d. %-3s %5d coins", i+1, e.Name, e.Score))
	}
	return append(lines, "", "Press any key to play again")
}

// initialsField renders typed letters with placeholders, e.g. "A B _".
func initialsField(typed string) string {
	slots := make([]string, 0, initialsLen)
	for _, r := range typed {
		slots = append(slots, string(r))
	}
	for len(slots) < initialsLen {
		slots = append(slots, "_")
	}
	return strings.Join(slots, " ")
}

// drawMessage draws a centered box with one line of text per row.
func drawMessage(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, core.Cell{Rune: ' '})
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawTextColor(x, boxY+1+i, l, color)
	}
}
