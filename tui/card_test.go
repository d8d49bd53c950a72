package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestCardDrawsNothingAtZeroProgress(t *testing.T) {
	screen := simScreen(t, 40, 10)
	defer screen.Fini()

	card := Card{X: 2, Y: 2, W: 10, H: 4, Border: RGB{255, 255, 255}}
	card.Draw(screen, 0)
	screen.Show()

	ch, _, _, _ := screen.GetContent(2, 2)
	if ch != ' ' {
		t.Errorf("Expected untouched cell at zero progress, got %q", ch)
	}
}

func TestCardSettlesAtFullProgress(t *testing.T) {
	screen := simScreen(t, 40, 10)
	defer screen.Fini()

	card := Card{
		X: 2, Y: 2, W: 10, H: 4,
		Line:   LineRounded,
		Border: RGB{255, 255, 255},
		Fg:     RGB{200, 200, 200},
		Bg:     RGB{30, 30, 30},
	}
	card.Draw(screen, 1)
	screen.Show()

	ch, _, _, _ := screen.GetContent(2, 2)
	if ch != '╭' {
		t.Errorf("Expected top-left corner at final position, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(11, 5)
	if ch != '╯' {
		t.Errorf("Expected bottom-right corner, got %q", ch)
	}
}

func TestCardRisesDuringEntrance(t *testing.T) {
	screen := simScreen(t, 40, 10)
	defer screen.Fini()

	card := Card{X: 2, Y: 2, W: 10, H: 4, Border: RGB{255, 255, 255}}
	card.Draw(screen, 0.5)
	screen.Show()

	// Mid-entrance the card sits one cell below its final position
	ch, _, _, _ := screen.GetContent(2, 3)
	if ch != '┌' {
		t.Errorf("Expected corner one cell low mid-entrance, got %q", ch)
	}
	ch, _, _, _ = screen.GetContent(2, 2)
	if ch != ' ' {
		t.Errorf("Expected final row untouched mid-entrance, got %q", ch)
	}
}

func TestCardClipsToScreen(t *testing.T) {
	screen := simScreen(t, 10, 5)
	defer screen.Fini()

	// Partially off-screen card must not panic
	card := Card{X: 7, Y: 3, W: 10, H: 6, Border: RGB{255, 255, 255}}
	card.Draw(screen, 1)
	screen.Show()
}

func TestRGBBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected dst at alpha 0, got %+v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected src at alpha 1, got %+v", got)
	}
	mid := dst.Blend(src, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Expected half blend {100 50 25}, got %+v", mid)
	}
	// Out-of-range alpha clamps
	if got := dst.Blend(src, -2); got != dst {
		t.Errorf("Expected clamp to dst below 0, got %+v", got)
	}
	if got := dst.Blend(src, 3); got != src {
		t.Errorf("Expected clamp to src above 1, got %+v", got)
	}
}
