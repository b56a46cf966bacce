// Command terraweave-viewer is the thin-glue interactive renderer from
// spec.md §1: it calls terraweave.Generate, uploads the resulting atlas
// and hydrology masks as textures, and lets an operator swap seed/biome
// and watch the terrain regenerate. It holds none of the domain logic --
// everything it draws comes straight out of the core package.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/oakfen-labs/terraweave"
)

const (
	screenW = 1040
	viewW   = 720
	viewH   = 720
)

var biomeNames = []string{"temperate", "alpine", "desert"}

// App is the ebiten game loop driving the viewer.
type App struct {
	cfg   terraweave.GenerateConfig
	biome string
	seed  int64

	atlasTex *ebiten.Image
	waterTex *ebiten.Image
	riverTex *ebiten.Image
	showMask bool

	panel          *ControlPanel
	rng            *rand.Rand
	dirty          bool
	lastChangeTime time.Time
	debounceDelay  time.Duration
}

// NewApp builds the viewer with a first generation already run.
func NewApp() *App {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	cfg := terraweave.DefaultConfig()
	cfg.Rows, cfg.Cols = 2, 2
	cfg.TileSize, cfg.Overlap = 256, 16
	cfg.Seed = rng.Int63()

	a := &App{
		cfg:           cfg,
		biome:         "temperate",
		seed:          cfg.Seed,
		rng:           rng,
		debounceDelay: 150 * time.Millisecond,
	}
	a.panel = NewControlPanel(a.biome, a.regenerateFromPanel)
	a.regenerate()
	return a
}

func (a *App) regenerateFromPanel(biome string, reroll bool) {
	a.biome = biome
	if reroll {
		a.seed = a.rng.Int63()
	}
	a.dirty = true
	a.lastChangeTime = time.Now()
}

// regenerate runs the core pipeline and uploads its outputs as textures.
func (a *App) regenerate() {
	cfg := a.cfg
	cfg.Seed = a.seed

	b, ok := terraweave.BiomeByName(a.biome)
	if !ok {
		b = terraweave.Temperate()
	}

	out, err := terraweave.Generate(cfg, b, terraweave.Options{})
	if err != nil {
		log.Printf("terraweave-viewer: generate failed: %v", err)
		return
	}

	a.atlasTex = heightfieldToImage(out.Atlas, elevationRamp)
	if out.WaterFeatures != nil {
		a.waterTex = heightfieldToImage(out.WaterFeatures.WaterMask, maskRamp(color.RGBA{40, 90, 200, 255}))
		a.riverTex = heightfieldToImage(out.WaterFeatures.RiverMask, maskRamp(color.RGBA{90, 200, 255, 255}))
	}
}

// Update advances the debounced regeneration and the ebitenui panel.
func (a *App) Update() error {
	a.panel.Update()

	if inpJustPressedM() {
		a.showMask = !a.showMask
	}

	if a.dirty && time.Since(a.lastChangeTime) >= a.debounceDelay {
		a.dirty = false
		a.regenerate()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 20, 26, 255})

	tex := a.atlasTex
	if a.showMask && a.waterTex != nil {
		tex = a.waterTex
	}
	if tex != nil {
		op := &ebiten.DrawImageOptions{}
		sx := float64(viewW) / float64(tex.Bounds().Dx())
		sy := float64(viewH) / float64(tex.Bounds().Dy())
		op.GeoM.Scale(sx, sy)
		screen.DrawImage(tex, op)
	}
	if a.showMask && a.riverTex != nil {
		op := &ebiten.DrawImageOptions{}
		sx := float64(viewW) / float64(a.riverTex.Bounds().Dx())
		sy := float64(viewH) / float64(a.riverTex.Bounds().Dy())
		op.GeoM.Scale(sx, sy)
		op.ColorScale.ScaleAlpha(0.8)
		screen.DrawImage(a.riverTex, op)
	}

	a.panel.Draw(screen)
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return screenW, viewH
}

func main() {
	ebiten.SetWindowTitle("terraweave viewer")
	ebiten.SetWindowSize(screenW, viewH)

	if err := ebiten.RunGame(NewApp()); err != nil {
		log.Fatal(err)
	}
}

// heightfieldToImage rasterizes a Heightfield through a ramp function into
// a freshly uploaded ebiten texture.
func heightfieldToImage(h *terraweave.Heightfield, ramp func(v float64) color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(h.Width, h.Height)
	pix := make([]byte, h.Width*h.Height*4)
	for y := 0; y < h.Height; y++ {
		for x := 0; x < h.Width; x++ {
			c := ramp(h.At(x, y))
			i := (y*h.Width + x) * 4
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
	img.WritePixels(pix)
	return img
}

func elevationRamp(v float64) color.RGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	switch {
	case v < 0.08:
		return color.RGBA{40, 70, 140, 255}
	case v < 0.14:
		return color.RGBA{210, 200, 150, 255}
	case v < 0.55:
		g := uint8(90 + v*120)
		return color.RGBA{60, g, 70, 255}
	default:
		gray := uint8(150 + v*100)
		return color.RGBA{gray, gray, gray, 255}
	}
}

func maskRamp(fg color.RGBA) func(float64) color.RGBA {
	return func(v float64) color.RGBA {
		if v <= 0 {
			return color.RGBA{0, 0, 0, 0}
		}
		a := uint8(v * 255)
		return color.RGBA{fg.R, fg.G, fg.B, a}
	}
}

var keyHeld = map[ebiten.Key]bool{}

func inpJustPressedM() bool {
	pressed := ebiten.IsKeyPressed(ebiten.KeyM)
	was := keyHeld[ebiten.KeyM]
	keyHeld[ebiten.KeyM] = pressed
	return pressed && !was
}

// ControlPanel is the ebitenui side panel exposing biome selection and a
// reroll button, in the same widget/container idiom as the mesh demo's
// debug panel.
type ControlPanel struct {
	ui       *ebitenui.UI
	fontFace text.Face
	label    *widget.Text
	biome    string
	onChange func(biome string, reroll bool)
}

// NewControlPanel builds the panel; onChange fires whenever the operator
// picks a biome or presses reroll.
func NewControlPanel(initialBiome string, onChange func(string, bool)) *ControlPanel {
	p := &ControlPanel{biome: initialBiome, onChange: onChange}
	p.fontFace = p.loadFont()
	p.ui = p.buildUI()
	return p
}

func (p *ControlPanel) loadFont() text.Face {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{Source: source, Size: 14}
}

func (p *ControlPanel) buildUI() *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.BackgroundImage(p.solidBackground(color.RGBA{28, 32, 40, 235})),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding:            widget.NewInsetsSimple(10),
			}),
			widget.WidgetOpts.MinSize(280, 0),
		),
	)

	panel.AddChild(p.label2("TERRAWEAVE", color.RGBA{255, 220, 100, 255}))
	panel.AddChild(p.label2("-- Biome --", color.RGBA{180, 180, 255, 255}))

	for _, name := range biomeNames {
		n := name
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(p.buttonImages()),
			widget.ButtonOpts.Text(n, &p.fontFace, &widget.ButtonTextColor{Idle: color.White}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.biome = n
				p.label.Label = fmt.Sprintf("biome: %s", p.biome)
				if p.onChange != nil {
					p.onChange(p.biome, false)
				}
			}),
		))
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(p.buttonImages()),
		widget.ButtonOpts.Text("Reroll Seed", &p.fontFace, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.onChange != nil {
				p.onChange(p.biome, true)
			}
		}),
	))

	p.label = p.label2(fmt.Sprintf("biome: %s", p.biome), color.RGBA{200, 200, 200, 255})
	panel.AddChild(p.label)
	panel.AddChild(p.label2("Press M to toggle masks", color.RGBA{128, 128, 128, 255}))

	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (p *ControlPanel) label2(s string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &p.fontFace, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)
}

func (p *ControlPanel) solidBackground(c color.RGBA) *eimage.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return eimage.NewNineSliceSimple(img, 0, 0)
}

func (p *ControlPanel) buttonImages() *widget.ButtonImage {
	idle := ebiten.NewImage(1, 1)
	idle.Fill(color.RGBA{70, 75, 90, 255})
	hover := ebiten.NewImage(1, 1)
	hover.Fill(color.RGBA{90, 95, 115, 255})
	pressed := ebiten.NewImage(1, 1)
	pressed.Fill(color.RGBA{110, 115, 140, 255})

	return &widget.ButtonImage{
		Idle:    eimage.NewNineSliceSimple(idle, 0, 0),
		Hover:   eimage.NewNineSliceSimple(hover, 0, 0),
		Pressed: eimage.NewNineSliceSimple(pressed, 0, 0),
	}
}

func (p *ControlPanel) Update() { p.ui.Update() }
func (p *ControlPanel) Draw(screen *ebiten.Image) { p.ui.Draw(screen) }
