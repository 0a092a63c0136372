package ui

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nesticle/internal/nes"
)

// P - pause
// R - one instruction while paused
// O - reload the current ROM

const (
	gameScreenScale  = 2
	gameScreenWidth  = 256
	gameScreenHeight = 240

	statusBarHeight = 48
)

type UI struct {
	bus     *nes.Bus
	status  string
	romPath string

	// parsed images keyed by path, so reopening a ROM skips the file
	romCache map[string]*nes.Cart
}

func New(bus *nes.Bus) *UI {
	return &UI{
		bus:      bus,
		status:   "No ROM loaded.",
		romCache: make(map[string]*nes.Cart),
	}
}

// LoadROM parses the file at path, or reuses a previously parsed
// image, and starts a fresh session on the bus.
func (ui *UI) LoadROM(path string) error {
	cart, ok := ui.romCache[path]
	if !ok {
		var err error
		cart, err = nes.NewCartFromFile(path)
		if err != nil {
			return err
		}
		ui.romCache[path] = cart
	}

	ui.bus.LoadCart(cart)
	ui.romPath = path
	ui.status = "Loaded: " + filepath.Base(path)
	return nil
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.bus.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.bus.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && ui.romPath != "" {
		if err := ui.LoadROM(ui.romPath); err != nil {
			// keep the session running and surface it on the status bar
			ui.status = "Failed to load: " + err.Error()
		}
	}

	ui.bus.Tic()
	return nil
}

func (ui *UI) Draw(screen *ebiten.Image) {
	if ui.bus.Loaded() {
		img := ebiten.NewImageFromImage(ui.bus.Screen())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(gameScreenScale, gameScreenScale)
		screen.DrawImage(img, op)
	}

	statusBarOffsetY := float32(gameScreenHeight * gameScreenScale)
	vector.DrawFilledRect(screen, 0, statusBarOffsetY,
		gameScreenWidth*gameScreenScale, statusBarHeight,
		color.RGBA{50, 50, 50, 255}, false)

	info := ui.bus.DebugInfo()
	var infoStr strings.Builder
	infoStr.WriteString(" " + ui.status)
	if ui.bus.Paused() {
		infoStr.WriteString(" [PAUSED]")
	}
	infoStr.WriteString("\n")
	fmt.Fprintf(&infoStr, " STATUS: %s  NEXT: %s\n", info.StatusString(), info.Op)
	fmt.Fprintf(&infoStr, " PC: %04X", info.PC)
	fmt.Fprintf(&infoStr, " A: $%02X", info.A)
	fmt.Fprintf(&infoStr, " X: $%02X", info.X)
	fmt.Fprintf(&infoStr, " Y: $%02X", info.Y)
	fmt.Fprintf(&infoStr, " SP: $%02X\n", info.SP)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), 0, int(statusBarOffsetY))
}

func (ui *UI) Layout(_, _ int) (int, int) {
	return gameScreenWidth * gameScreenScale, gameScreenHeight*gameScreenScale + statusBarHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowTitle("nesticle")
	ebiten.SetWindowSize(gameScreenWidth*gameScreenScale, gameScreenHeight*gameScreenScale+statusBarHeight)
	// one bus tick per TPS frame, a ~16 ms cadence
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
