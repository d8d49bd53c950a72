package tui

import (
	"github.com/gdamore/tcell/v2"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Card is a bordered box whose entrance is driven by an Animator progress
// value: it fades from the screen background toward its own colors while
// rising one cell into place. Progress 0 draws nothing, progress 1 draws the
// settled card.
type Card struct {
	X, Y, W, H int
	Title      string
	Line       LineType
	Border     RGB
	Fg         RGB
	Bg         RGB
	ScreenBg   RGB
}

// Draw renders the card on screen at the given entrance progress
// Cells outside the screen bounds are clipped
func (c Card) Draw(screen tcell.Screen, progress float64) {
	if progress <= 0 || c.W < 2 || c.H < 2 {
		return
	}
	if progress > 1 {
		progress = 1
	}

	// Entrance: fade in while rising one cell into final position
	y := c.Y
	if progress < 1 {
		y++
	}
	border := c.ScreenBg.Blend(c.Border, progress)
	fg := c.ScreenBg.Blend(c.Fg, progress)
	bg := c.ScreenBg.Blend(c.Bg, progress)

	borderStyle := tcell.StyleDefault.Foreground(border.ToTcell()).Background(bg.ToTcell())
	fillStyle := tcell.StyleDefault.Foreground(fg.ToTcell()).Background(bg.ToTcell())

	chars := boxChars[LineSingle]
	if int(c.Line) < len(boxChars) {
		chars = boxChars[c.Line]
	}

	width, height := screen.Size()
	set := func(px, py int, ch rune, style tcell.Style) {
		if px < 0 || px >= width || py < 0 || py >= height {
			return
		}
		screen.SetContent(px, py, ch, nil, style)
	}

	// Border
	set(c.X, y, chars[boxTL], borderStyle)
	set(c.X+c.W-1, y, chars[boxTR], borderStyle)
	set(c.X, y+c.H-1, chars[boxBL], borderStyle)
	set(c.X+c.W-1, y+c.H-1, chars[boxBR], borderStyle)
	for x := c.X + 1; x < c.X+c.W-1; x++ {
		set(x, y, chars[boxH], borderStyle)
		set(x, y+c.H-1, chars[boxH], borderStyle)
	}
	for py := y + 1; py < y+c.H-1; py++ {
		set(c.X, py, chars[boxV], borderStyle)
		set(c.X+c.W-1, py, chars[boxV], borderStyle)
	}

	// Interior
	for py := y + 1; py < y+c.H-1; py++ {
		for px := c.X + 1; px < c.X+c.W-1; px++ {
			set(px, py, ' ', fillStyle)
		}
	}

	// Title centered on the top border
	if c.Title != "" {
		runes := []rune(c.Title)
		maxLen := c.W - 4
		if maxLen > 0 {
			if len(runes) > maxLen {
				runes = runes[:maxLen]
			}
			start := c.X + (c.W-len(runes))/2
			for i, ch := range runes {
				set(start+i, y, ch, fillStyle)
			}
		}
	}
}
