package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/antidote-run/internal/core"
)

// Glyphs used by cell renderers.
const (
	GroundChar     = '▀'
	PlayerChar     = '█'
	BulletChar     = '─'
	KillableChar   = '▓'
	UnkillableChar = '█'
	ParticleChar   = '·'
	AntidoteChar   = '✚'
)

// DrawList returns the frame's primitives in virtual coordinates, back to front.
func (g *Game) DrawList() []core.DrawRequest {
	reqs := make([]core.DrawRequest, 0, 2+len(g.particles)+len(g.monsters)+len(g.gun.Bullets())+1)

	reqs = append(reqs, core.RectRequest(g.ground, core.ColorGreen, GroundChar))

	for _, p := range g.particles {
		reqs = append(reqs, core.CircleRequest(p.X, p.Y, p.Radius, core.ColorGray, ParticleChar))
	}

	if g.antidote != nil {
		reqs = append(reqs, core.RectRequest(g.antidote.Bounds, core.ColorBrightCyan, AntidoteChar))
	}

	for _, m := range g.monsters {
		if m.Killable {
			reqs = append(reqs, core.RectRequest(m.Bounds, core.ColorRed, KillableChar))
		} else {
			reqs = append(reqs, core.RectRequest(m.Bounds, core.ColorMagenta, UnkillableChar))
		}
	}

	for _, b := range g.gun.Bullets() {
		reqs = append(reqs, core.RectRequest(b.Bounds, core.ColorYellow, BulletChar))
	}

	playerColor := core.ColorBrightBlue
	if g.phase == core.PhaseGameOver {
		playerColor = core.ColorGray
	}
	reqs = append(reqs, core.RectRequest(g.player.Bounds, playerColor, PlayerChar))

	return reqs
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.Rasterize(g.DrawList(), g.cfg.Screen.Width, g.cfg.Screen.Height)

	hud := g.HUD()
	dst.DrawTextColored(1, 0, hudLine(hud), core.ColorBrightWhite)
	if hud.Antidote {
		text := " ANTIDOTE! "
		dst.DrawTextColored(dst.Width()-len([]rune(text))-1, 0, text, core.ColorBrightCyan)
	}

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.phase == core.PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Antidote found with %d points  |  Press R to play again", g.score))
	}
}

// hudLine formats the status line shown on the top row.
func hudLine(h core.HUD) string {
	return fmt.Sprintf(" Score: %d  Health: %s %3.0f%%  Hits: %d/%d  Kills: %d  Time: %.1fs ",
		h.Score, healthBar(h.HealthPct, 10), h.HealthPct, h.Hits, h.MaxHits, h.Kills, h.Elapsed)
}

// healthBar renders pct (0..100) as a fixed-width bar.
func healthBar(pct float64, width int) string {
	filled := int(pct/100*float64(width) + 0.5)
	filled = core.Clamp(filled, 0, width)
	return strings.Repeat("■", filled) + strings.Repeat("□", width-filled)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
