package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cosmic-calculator/cosmic_calculator/assets"
	"github.com/cosmic-calculator/cosmic_calculator/internal/audio"
	"github.com/cosmic-calculator/cosmic_calculator/internal/config"
	"github.com/cosmic-calculator/cosmic_calculator/internal/game"
	"github.com/cosmic-calculator/cosmic_calculator/internal/render"
	"github.com/cosmic-calculator/cosmic_calculator/internal/world"
)

const title = "Cosmic Calculator: Mission to Moon"

const feedLines = 4

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	sim    *game.Sim
	faces  *render.Faces
	sounds *audio.Manager
}

func NewGame() *Game {
	name := config.GetEnv("COSMIC_MISSION", "moon")
	data, err := assets.Missions.ReadFile("missions/" + name + ".json")
	if err != nil {
		log.Fatalf("load mission %q: %v", name, err)
	}
	mission, err := world.LoadMission(data)
	if err != nil {
		log.Fatalf("parse mission %q: %v", name, err)
	}

	faces, err := render.NewFaces()
	if err != nil {
		log.Fatalf("load fonts: %v", err)
	}

	sounds := audio.NewManager(config.GetEnvBool("COSMIC_MUTE", false))
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}

	return &Game{
		sim:    game.NewSim(mission, time.Now().UnixNano()),
		faces:  faces,
		sounds: sounds,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := game.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyDown),
		Start:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	g.sim.Advance(in)

	for _, cue := range g.sim.TakeCues() {
		g.sounds.Play(cueSound(cue))
	}
	return nil
}

func cueSound(cue game.SoundCue) audio.SoundType {
	switch cue {
	case game.CuePenalty:
		return audio.SoundPenalty
	case game.CueWin:
		return audio.SoundWin
	case game.CueGameOver:
		return audio.SoundGameOver
	default:
		return audio.SoundCollect
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBG)
	g.drawStarfield(screen)

	switch g.sim.State {
	case game.StateTitle:
		g.drawTitle(screen)
	case game.StatePlaying:
		g.drawPlaying(screen)
	case game.StateTransition:
		x, y := g.sim.ShipPos()
		g.drawShip(screen, x, y, 1, false, true)
	case game.StateLanding:
		g.drawLanding(screen)
	case game.StateGameOver:
		g.drawGameOver(screen)
	}
}

func (g *Game) drawStarfield(screen *ebiten.Image) {
	for _, star := range g.sim.Stars {
		render.FillCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), render.ColorText)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	g.drawTargetMoon(screen)
	g.drawShip(screen, 100, game.ScreenH/2, 1, false, true)

	render.DrawTextCentered(screen, "COSMIC CALCULATOR", g.faces.Big, game.ScreenW/2, 200, render.ColorGold)
	render.DrawTextCentered(screen, g.sim.Mission.Name, g.faces.UI, game.ScreenW/2, 270, render.ColorText)
	goal := fmt.Sprintf("Fly through clouds until your number equals %d.", g.sim.Mission.Target)
	render.DrawTextCentered(screen, goal, g.faces.UI, game.ScreenW/2, 330, render.ColorFaded)
	render.DrawTextCentered(screen, "Arrow keys steer. Stars grant power-ups.", g.faces.UI, game.ScreenW/2, 370, render.ColorFaded)
	render.DrawTextCentered(screen, "Click to launch", g.faces.UI, game.ScreenW/2, 450, render.ColorText)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	ghost := g.sim.Effects.Active(game.PowerGhost)

	for _, c := range g.sim.Clouds {
		g.drawCloud(screen, c, ghost)
	}
	for _, pu := range g.sim.PowerUps {
		g.drawPowerUp(screen, pu)
	}

	x, y := g.sim.ShipPos()
	g.drawShip(screen, x, y, 1, ghost, true)
	g.drawHUD(screen)
	g.drawFeed(screen)

	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	render.DrawText(screen, fps, g.faces.UI, game.ScreenW-260, game.ScreenH-35, render.ColorFaded)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	for _, c := range g.sim.Clouds {
		g.drawCloud(screen, c, false)
	}
	x, y := g.sim.ShipPos()
	g.drawShip(screen, x, y, 1, false, true)

	render.FillRect(screen, 0, 0, game.ScreenW, game.ScreenH, color.RGBA{0, 0, 0, 180})
	render.DrawTextCentered(screen, "GAME OVER", g.faces.Big, game.ScreenW/2, game.ScreenH/2-50, render.ColorWarn)
	render.DrawTextCentered(screen, "Press SPACE to Play Again", g.faces.UI, game.ScreenW/2, game.ScreenH/2+30, render.ColorFaded)
}

// drawShip renders the spaceship polygon with thruster flame at (lx, ly).
// The hull value is painted on when showValue is set.
func (g *Game) drawShip(screen *ebiten.Image, lx, ly, scale float64, ghost, showValue bool) {
	w := g.sim.Ship.W * scale
	h := g.sim.Ship.H * scale
	cx := lx + w/2
	cy := ly + h/2

	hull := render.ColorShip
	if ghost {
		hull = render.ColorShipGhost
		render.StrokeCircle(screen, float32(cx), float32(cy), float32(w), 2, render.ColorStarGhost)
	}

	// Thruster flame flickers on its own clock.
	tick := g.sim.Ticks
	if tick%10 < 8 {
		flameLen := (20 + float64((tick*7)%30)) * scale
		flame := []render.Point{
			{X: float32(lx + 10*scale), Y: float32(cy - 10*scale)},
			{X: float32(lx - flameLen), Y: float32(cy)},
			{X: float32(lx + 10*scale), Y: float32(cy + 10*scale)},
		}
		render.FillPolygon(screen, flame, render.ColorFire)
	}

	points := []render.Point{
		{X: float32(lx + w), Y: float32(cy)},
		{X: float32(lx), Y: float32(ly)},
		{X: float32(lx + 20*scale), Y: float32(cy)},
		{X: float32(lx), Y: float32(ly + h)},
	}
	render.FillPolygon(screen, points, hull)
	render.StrokePolygon(screen, points, float32(3*scale), render.ColorHullLine)

	if showValue {
		value := gameValue(g.sim.Ship.Value)
		render.DrawTextCentered(screen, value, g.faces.UI, int(cx)-10, int(cy), color.Black)
	}
}

func (g *Game) drawCloud(screen *ebiten.Image, c *game.Cloud, ghost bool) {
	base := render.ColorCloud
	textClr := render.ColorCloudText
	if ghost {
		base = render.ColorCloudGhost
		textClr = render.ColorCloudDim
	}

	for _, p := range c.Puffs {
		render.FillCircle(screen, float32(c.X+p.DX), float32(c.Y+p.DY), float32(p.R), base)
	}

	label := game.Label(c.Op, c.Operand)
	cx := int(c.X + c.W/2)
	cy := int(c.Y + c.H/2)
	render.DrawTextCentered(screen, label, g.faces.Cloud, cx+2, cy+2, render.ColorShadow)
	render.DrawTextCentered(screen, label, g.faces.Cloud, cx, cy, textClr)
}

func (g *Game) drawPowerUp(screen *ebiten.Image, pu *game.PowerUp) {
	var clr color.Color
	switch pu.Kind {
	case game.PowerSlowMotion:
		clr = render.ColorStarSlow
	case game.PowerRepair:
		clr = render.ColorStarFix
	case game.PowerGhost:
		clr = render.ColorStarGhost
	case game.PowerRapidFire:
		clr = render.ColorStarRapid
	case game.PowerInvert:
		clr = render.HSV(pu.Hue, 1, 1)
	default:
		clr = render.ColorText
	}

	b := pu.Bounds()
	pts := render.StarPoints(b.X+b.W/2, b.Y+b.H/2, 20, 10, pu.Angle)
	render.FillPolygon(screen, pts, clr)
	render.StrokePolygon(screen, pts, 2, render.ColorText)
}

func (g *Game) drawTargetMoon(screen *ebiten.Image) {
	mx, my := game.ScreenW-80, 80
	render.FillCircle(screen, float32(mx), float32(my), 50, render.ColorMoon)
	render.FillCircle(screen, float32(mx-15), float32(my-10), 10, render.ColorMoonCrater)
	render.DrawTextCentered(screen, fmt.Sprintf("%d", g.sim.Mission.Target), g.faces.UI, mx, my, color.RGBA{50, 50, 50, 255})
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawTargetMoon(screen)

	// Active effect labels, stacked top-left.
	type status struct {
		kind game.PowerUpKind
		clr  color.Color
	}
	statuses := []status{
		{game.PowerSlowMotion, render.ColorStarSlow},
		{game.PowerGhost, render.ColorStarGhost},
		{game.PowerInvert, render.ColorFlipped},
		{game.PowerRapidFire, render.ColorStarRapid},
	}
	y := 20
	for _, st := range statuses {
		if !g.sim.Effects.Active(st.kind) {
			continue
		}
		render.DrawText(screen, st.kind.Label(), g.faces.UI, 20, y, st.clr)
		y += 35
	}

	if g.sim.Speeding() && !g.sim.Effects.Active(game.PowerRapidFire) {
		render.DrawText(screen, "DECIMAL PENALTY! SPEED UP!", g.faces.UI, 20, y, render.ColorWarn)
	}

	// Fuel bar, bottom-left.
	pct := g.sim.Ship.FuelPct()
	barClr := render.ColorStarFix
	switch {
	case pct <= 25:
		barClr = render.ColorWarn
	case pct <= 50:
		barClr = render.ColorFeedWarning
	}
	barX, barY := float32(110), float32(game.ScreenH-45)
	render.DrawText(screen, "FUEL", g.faces.UI, 20, game.ScreenH-50, render.ColorText)
	render.FillRect(screen, barX, barY, 200*float32(pct)/100, 22, barClr)
	render.StrokeRect(screen, barX, barY, 200, 22, 2, render.ColorText)
}

func (g *Game) drawFeed(screen *ebiten.Image) {
	events := g.sim.Log.Recent(feedLines)
	y := game.ScreenH - 90 - 30*len(events)
	for _, ev := range events {
		render.DrawText(screen, ev.Text, g.faces.UI, 20, y, eventColor(ev.Priority))
		y += 30
	}
}

func eventColor(p game.EventPriority) color.Color {
	switch p {
	case game.EventBonus:
		return render.ColorFeedBonus
	case game.EventWarning:
		return render.ColorFeedWarning
	case game.EventCritical:
		return render.ColorFeedCritical
	default:
		return render.ColorFeedInfo
	}
}

func (g *Game) drawLanding(screen *ebiten.Image) {
	// Moon surface
	surfaceY := float32(game.ScreenH - game.MoonSurfaceH)
	render.FillRect(screen, 0, surfaceY, game.ScreenW, game.MoonSurfaceH, render.ColorMoon)
	render.FillEllipse(screen, 175, float32(game.ScreenH-130), 75, 20, render.ColorMoonCrater)

	// Landing craft
	g.drawShip(screen, game.LanderX, g.sim.LanderY, 2.5, false, false)
	if !g.sim.LanderTouchedDown() {
		// Landing dust near touchdown
		if g.sim.LanderY > float64(game.ScreenH-game.MoonSurfaceH-180) {
			dust := float32(10 + g.sim.Ticks%20)
			render.FillCircle(screen, 250, surfaceY, dust, render.ColorFaded)
		}
		return
	}

	g.drawAstronaut(screen)
}

// drawAstronaut renders the stick figure walking from the lander to the
// flag position, then the flag and the victory banners.
func (g *Game) drawAstronaut(screen *ebiten.Image) {
	groundY := float64(game.ScreenH - game.MoonSurfaceH)
	cx := float64(game.FigureStartX) + g.sim.FigureX
	cy := groundY - 40

	white := render.ColorText

	// Head
	render.FillCircle(screen, float32(cx), float32(cy-20), 10, color.Black)
	render.FillCircle(screen, float32(cx), float32(cy-20), 8, white)
	// Body
	render.Line(screen, float32(cx), float32(cy-10), float32(cx), float32(cy+20), 4, white)

	// Legs swing while walking, stand still at the flag.
	offset := 0.0
	if !g.sim.FlagPlanted() {
		offset = math.Sin(g.sim.FigureX*0.2) * 10
	}
	render.Line(screen, float32(cx), float32(cy+20), float32(cx-10+offset), float32(cy+50), 4, white)
	render.Line(screen, float32(cx), float32(cy+20), float32(cx+10-offset), float32(cy+50), 4, white)
	// Arm
	render.Line(screen, float32(cx), float32(cy), float32(cx+15), float32(cy+10), 4, white)

	if !g.sim.FlagPlanted() {
		return
	}

	// Flag pole and flag
	render.Line(screen, float32(cx+20), float32(cy+50), float32(cx+20), float32(cy-60), 4, color.RGBA{50, 50, 50, 255})
	const flagW, flagH = 220, 50
	render.FillRect(screen, float32(cx+22), float32(cy-60), flagW, flagH, render.ColorFlag)
	render.StrokeRect(screen, float32(cx+22), float32(cy-60), flagW, flagH, 2, white)
	render.DrawTextCentered(screen, "YOU WON!", g.faces.UI, int(cx+22+flagW/2), int(cy-60+flagH/2), white)

	render.DrawTextCentered(screen, "MISSION ACCOMPLISHED", g.faces.Big, game.ScreenW/2, 130, render.ColorGold)
	render.DrawTextCentered(screen, "Press SPACE to Play Again", g.faces.UI, game.ScreenW/2, 200, render.ColorFaded)
}

func gameValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenW, game.ScreenH
}

func main() {
	ebiten.SetWindowSize(game.ScreenW, game.ScreenH)
	ebiten.SetWindowTitle(title)

	g := NewGame()
	defer g.sounds.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
