package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/GauBen/le-pire-cube/internal/core"
	"github.com/GauBen/le-pire-cube/internal/geometry"
	"github.com/GauBen/le-pire-cube/internal/sim"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
	"github.com/GauBen/le-pire-cube/internal/world"
	"github.com/GauBen/le-pire-cube/internal/worldgen"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Scene projection scales, in screen cells per world unit.
const (
	cellsPerUnitU = 6.0 // along the travel diagonal, to the right
	cellsPerUnitV = 2.0 // across the corridor, slanting into the screen
	cellsPerUnitZ = 3.0 // altitude, straight up
)

// Tile checkerboard colors, indexed by lattice parity.
var tileColors = [2]core.Color{core.ColorBlue, core.ColorCyan}

// sceneLight is the direction light comes from, used to shade cube faces.
var sceneLight = vecmath.New(0.25, -0.55, 0.8).Normalize()

// Renderer projects the simulation scene into a screen buffer.
//
// The view is a fixed oblique projection: the world is rotated so the travel
// diagonal runs to the right, altitude maps straight up, and the lateral axis
// adds a slight vertical slant for depth. The cube is posed from the avatar's
// roll state and drawn face by face with backface culling.
type Renderer struct {
	eng  *sim.Engine
	view mgl64.Mat3
}

// NewRenderer creates a renderer for the given engine.
func NewRenderer(eng *sim.Engine) *Renderer {
	return &Renderer{
		eng:  eng,
		view: mgl64.Rotate3DZ(-math.Pi / 4),
	}
}

// layout fixes where the camera column and the ground baseline sit on screen.
type layout struct {
	camCol  int // screen column of the camera's travel position
	baseRow int // screen row of the ground plane at the corridor center
}

func layoutFor(s *core.Screen) layout {
	return layout{
		camCol:  s.Width() / 3,
		baseRow: core.Max(4, s.Height()-8),
	}
}

// project maps a world-space point to fractional screen coordinates.
func (r *Renderer) project(p vecmath.Vector3, cam float64, l layout) (float64, float64) {
	q := r.view.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	x := float64(l.camCol) + (q[0]-cam)*cellsPerUnitU
	y := float64(l.baseRow) - q[1]*cellsPerUnitV - q[2]*cellsPerUnitZ
	return x, y
}

// Render draws the full scene: tiles, death line, cube, HUD, and overlays.
func (r *Renderer) Render(s *core.Screen, paused bool) {
	s.Clear()

	l := layoutFor(s)
	cam := r.eng.CameraPosition(r.eng.Time())

	r.drawTiles(s, cam, l)
	r.drawDeathLine(s, cam, l)
	r.drawAvatar(s, cam, l)
	r.drawHUD(s)

	if r.eng.GameOver() {
		r.drawGameOver(s)
	}
	if paused {
		drawOverlay(s, "P A U S E D", core.ColorBrightYellow, "p resume   b menu   q quit")
	}
}

// drawTiles paints every materialized tile as a flat diamond, far lanes
// first so nearer tiles overwrite shared edges.
func (r *Renderer) drawTiles(s *core.Screen, cam float64, l layout) {
	corridor := r.eng.Config().World.CorridorWidth
	side := r.eng.Config().Avatar.Side

	wld := r.eng.World()
	start, end := wld.Window()
	if end < start {
		return
	}

	// A very wide terminal can show farther than the simulation has
	// materialized; widen the look-ahead to the screen's right edge.
	// One extra cell covers off-diagonal lanes and partial diamonds.
	visibleU := cam + float64(s.Width()-l.camCol)/cellsPerUnitU
	if visible := int(math.Ceil(visibleU/(side*math.Sqrt2))) + 1; visible > end {
		r.eng.MaterializeWindow(start, visible)
		start, end = wld.Window()
	}

	for d := corridor - 1; d > -corridor; d-- {
		for x := start; x <= end; x++ {
			y := x + d
			if y < start || y > end {
				continue
			}
			cell := wld.Cell(x, y)
			if cell == nil || cell.Kind == worldgen.KindEmpty {
				continue
			}
			r.drawTile(s, cam, l, x, y, side, cell)
		}
	}
}

// drawTile stamps one tile diamond centered on the cell's midpoint.
func (r *Renderer) drawTile(s *core.Screen, cam float64, l layout, x, y int, side float64, cell *world.Cell) {
	center := vecmath.New((float64(x)+0.5)*side, (float64(y)+0.5)*side, 0)
	fx, fy := r.project(center, cam, l)

	// A ground square projects to a diamond with these half extents.
	halfU := side * math.Sqrt2 / 2 * cellsPerUnitU
	halfV := side * math.Sqrt2 / 2 * cellsPerUnitV

	col := int(math.Round(fx))
	row := int(math.Round(fy))
	if col+int(halfU) < 0 || col-int(halfU) >= s.Width() {
		return
	}

	color := tileColors[core.Abs(x+y)%2]
	for dy := -int(halfV); dy <= int(halfV); dy++ {
		for dx := -int(halfU); dx <= int(halfU); dx++ {
			if math.Abs(float64(dx))/halfU+math.Abs(float64(dy))/halfV > 1 {
				continue
			}
			s.SetColored(col+dx, row+dy, '▒', color)
		}
	}

	if cell.Kind == worldgen.KindPowerUp {
		if cell.Consumed {
			s.SetColored(col, row, '◇', core.ColorGray)
		} else {
			s.SetColored(col, row, '◆', core.ColorBrightYellow)
		}
	}
}

// drawDeathLine draws the trailing kill plane as a vertical bar.
func (r *Renderer) drawDeathLine(s *core.Screen, cam float64, l layout) {
	col := l.camCol - int(math.Round(r.eng.Config().Camera.DeathZone*cellsPerUnitU))
	s.DrawVLineColored(col, 2, s.Height()-5, '║', core.ColorBrightRed)
}

// drawAvatar poses the cube from the avatar's roll state and draws its
// visible faces.
func (r *Renderer) drawAvatar(s *core.Screen, cam float64, l layout) {
	av := r.eng.Avatar()
	side := av.Side()

	box := geometry.NewBox(vecmath.New(side, side, side))
	if av.Turning() {
		// Roll about the leading bottom edge in the heading frame.
		box = box.RotateY(av.Rotation(), vecmath.Vector3{X: side})
	}
	box = box.RotateZ(av.Orientation(), vecmath.New(side/2, side/2, 0))
	box = box.Translate(av.Position())

	samples := core.Clamp(int(side*16), 8, 48)
	for _, face := range box.Faces() {
		if !r.faceVisible(face, cam, l) {
			continue
		}
		r.drawFace(s, face, cam, l, samples)
	}
}

// faceVisible reports whether an outward-wound face fronts the viewer.
// In screen coordinates (y down) a front face winds clockwise, which makes
// its shoelace sum negative.
func (r *Renderer) faceVisible(f geometry.Footprint, cam float64, l layout) bool {
	verts := f.Vertices()
	area := 0.0
	px, py := r.project(verts[len(verts)-1], cam, l)
	for _, v := range verts {
		x, y := r.project(v, cam, l)
		area += px*y - x*py
		px, py = x, y
	}
	return area < -1e-9
}

// drawFace fills a face by sampling it in world space and projecting each
// sample. The rune and color come from how squarely the face meets the light.
func (r *Renderer) drawFace(s *core.Screen, f geometry.Footprint, cam float64, l layout, samples int) {
	fill := '░'
	color := core.ColorGray
	switch brightness := f.Normal().Dot(sceneLight); {
	case brightness > 0.7:
		fill, color = '█', core.ColorBrightWhite
	case brightness > 0.45:
		fill, color = '▓', core.ColorWhite
	case brightness > 0.15:
		fill, color = '▒', core.ColorWhite
	}

	verts := f.Vertices()
	origin := verts[0]
	edgeA := verts[1].Sub(origin)
	edgeB := verts[3].Sub(origin)

	for i := 0; i <= samples; i++ {
		a := float64(i) / float64(samples)
		for j := 0; j <= samples; j++ {
			b := float64(j) / float64(samples)
			p := origin.Add(edgeA.Scale(a)).Add(edgeB.Scale(b))
			fx, fy := r.project(p, cam, l)
			s.SetColored(int(math.Round(fx)), int(math.Round(fy)), fill, color)
		}
	}
}

// drawHUD writes the status line and the controls hint.
func (r *Renderer) drawHUD(s *core.Screen) {
	av := r.eng.Avatar()
	t := r.eng.Time()
	if r.eng.GameOver() {
		t = r.eng.GameOverAt()
	}

	hud := fmt.Sprintf(" Score %d   Level %d   Speed %.2f   Time %.1fs", r.eng.Score(), av.Level(), av.AirborneSpeed(), t)
	s.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	controls := "arrows/wasd steer   space jump   p pause   q quit"
	s.DrawTextCenteredColored(s.Height()-1, controls, core.ColorGray)
}

// drawGameOver paints the end-of-run overlay.
func (r *Renderer) drawGameOver(s *core.Screen) {
	drawOverlay(s, "G A M E   O V E R", core.ColorBrightRed,
		fmt.Sprintf("Score %d", r.eng.Score()),
		fmt.Sprintf("Survived %.1fs", r.eng.GameOverAt()),
		"",
		"r restart   b menu   q quit",
	)
}

// drawOverlay draws a centered boxed message with a colored title.
func drawOverlay(s *core.Screen, title string, titleColor core.Color, lines ...string) {
	width := len([]rune(title))
	for _, ln := range lines {
		width = core.Max(width, len([]rune(ln)))
	}
	width += 6
	height := len(lines) + 4

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	s.DrawTextCenteredColored(box.Y+1, title, titleColor)
	for i, ln := range lines {
		s.DrawTextCentered(box.Y+3+i, ln)
	}
}
