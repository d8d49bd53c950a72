// Command stagger-demo shows the delay engine driving entrance animations on
// a tcell screen: a grid of cards animates in under the selected ordering
// strategy, new cards join without replaying old entrances, and reduced
// motion snaps everything into place.
//
// Keys: 1-7 strategy, h/l/k/j direction, a append card, r replay,
// m reduced motion, s sound, q quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stagger"
	"github.com/lixenwraith/stagger/audio"
	"github.com/lixenwraith/stagger/ease"
	"github.com/lixenwraith/stagger/geom"
	"github.com/lixenwraith/stagger/tui"
)

// Colors
var (
	bgColor     = tui.RGB{R: 20, G: 20, B: 30}
	fgColor     = tui.RGB{R: 200, G: 200, B: 200}
	borderColor = tui.RGB{R: 80, G: 100, B: 140}
	accentColor = tui.RGB{R: 100, G: 200, B: 220}
	cardBg      = tui.RGB{R: 35, G: 38, B: 52}
	dimColor    = tui.RGB{R: 100, G: 100, B: 100}
)

const (
	cardW = 14
	cardH = 5
	gapX  = 2
	gapY  = 1
)

type strategyChoice uint8

const (
	chPriorityThenPosition strategyChoice = iota
	chPriorityOnly
	chPositionOnly
	chRadial
	chReading
	chBySize
	chDiagonal
)

var strategyNames = [...]string{
	chPriorityThenPosition: "priority+position",
	chPriorityOnly:         "priority only",
	chPositionOnly:         "position only",
	chRadial:               "radial",
	chReading:              "reading pattern",
	chBySize:               "by size",
	chDiagonal:             "diagonal",
}

var directionNames = [...]string{
	stagger.LeftToRight: "left-to-right",
	stagger.RightToLeft: "right-to-left",
	stagger.TopToBottom: "top-to-bottom",
	stagger.BottomToTop: "bottom-to-top",
}

// demo bundles the stagger pipeline with the demo's card set
type demo struct {
	cfg       demoConfig
	container *stagger.Container
	collector *tui.Collector
	animator  *tui.Animator
	sound     *audio.SoundManager
	soundOn   bool

	choice strategyChoice
	dir    stagger.Direction

	cards []tui.Card
	ids   []stagger.ViewID
	ranks map[stagger.ViewID]int
	heard map[stagger.ViewID]bool

	screenW, screenH int
}

func newDemo(cfg demoConfig, clock tui.TimeProvider) *demo {
	d := &demo{
		cfg:       cfg,
		container: stagger.NewContainer(),
		collector: tui.NewCollector(),
		animator:  tui.NewAnimator(clock),
		sound:     audio.NewSoundManager(),
		ranks:     make(map[stagger.ViewID]int),
		heard:     make(map[stagger.ViewID]bool),
	}
	d.animator.Duration = time.Duration(cfg.Entrance * float64(time.Second))
	d.animator.Curve = ease.OutCubic
	d.animator.ReducedMotion = cfg.ReducedMotion

	for i := 0; i < cfg.Rows*cfg.Cols; i++ {
		d.addCard()
	}
	return d
}

// addCard registers one more card in the grid
// The first card gets a higher priority so priority strategies lead with it
func (d *demo) addCard() {
	i := len(d.cards)
	row, col := i/d.cfg.Cols, i%d.cfg.Cols
	x := 2 + col*(cardW+gapX)
	y := 2 + row*(cardH+gapY)

	id := stagger.ViewID(fmt.Sprintf("card-%d", i))
	priority := 0.0
	if i == 0 {
		priority = 1
	}

	d.cards = append(d.cards, tui.Card{
		X: x, Y: y, W: cardW, H: cardH,
		Title:    string(id),
		Line:     tui.LineRounded,
		Border:   borderColor,
		Fg:       fgColor,
		Bg:       cardBg,
		ScreenBg: bgColor,
	})
	d.ids = append(d.ids, id)
	d.collector.Set(id, priority, geom.RectXYWH(float64(x), float64(y), cardW, cardH))
}

// strategy builds the currently selected strategy value
func (d *demo) strategy() stagger.Strategy {
	switch d.choice {
	case chPriorityOnly:
		return stagger.PriorityOnly()
	case chPositionOnly:
		return stagger.PositionOnly(d.dir)
	case chRadial:
		return stagger.Radial(geom.Point{X: float64(d.screenW) / 2, Y: float64(d.screenH) / 2}, false)
	case chReading:
		return stagger.ReadingPattern(false, d.cfg.RowThreshold)
	case chBySize:
		return stagger.BySize(true, false)
	case chDiagonal:
		return stagger.Diagonal(true, false)
	default:
		return stagger.PriorityThenPosition(d.dir)
	}
}

func (d *demo) engineConfig() stagger.Config {
	return stagger.Config{
		BaseDelay: time.Duration(d.cfg.BaseDelay * float64(time.Second)),
		Strategy:  d.strategy(),
		Curve:     d.animator.Curve,
	}
}

// collect runs one metadata-collection event through the container
func (d *demo) collect(now time.Time) {
	cfg := d.engineConfig()
	delays := d.container.Collect(d.collector.Snapshot(), cfg)
	if len(delays) == 0 {
		return
	}

	base := max(cfg.BaseDelay, time.Nanosecond)
	for id, delay := range delays {
		d.ranks[id] = int(delay / base)
	}
	d.animator.Apply(delays, now)
}

// replay clears all entrance state and animates the full set again
func (d *demo) replay(now time.Time) {
	d.container.Deactivate()
	d.container.Activate()
	d.animator.Reset()
	d.ranks = make(map[stagger.ViewID]int)
	d.heard = make(map[stagger.ViewID]bool)
	d.collect(now)
}

func (d *demo) draw(screen tcell.Screen) {
	d.screenW, d.screenH = screen.Size()

	bgStyle := tcell.StyleDefault.Background(bgColor.ToTcell())
	for y := 0; y < d.screenH; y++ {
		for x := 0; x < d.screenW; x++ {
			screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	for i, card := range d.cards {
		id := d.ids[i]
		p := d.animator.Progress(id)
		if p > 0 && !d.heard[id] {
			d.heard[id] = true
			if d.soundOn {
				d.sound.PlayTick(d.ranks[id])
			}
		}
		card.Draw(screen, p)
	}

	d.drawStatus(screen)
}

func (d *demo) drawStatus(screen tcell.Screen) {
	status := fmt.Sprintf(" [1-7] %s  [hjkl] %s  [a]ppend [r]eplay [m]otion:%v [s]ound:%v [q]uit",
		strategyNames[d.choice], directionNames[d.dir], d.animator.ReducedMotion, d.soundOn)

	style := tcell.StyleDefault.Foreground(dimColor.ToTcell()).Background(bgColor.ToTcell())
	accent := tcell.StyleDefault.Foreground(accentColor.ToTcell()).Background(bgColor.ToTcell())
	y := d.screenH - 1
	for x, ch := range status {
		if x >= d.screenW {
			break
		}
		s := style
		if ch == '[' || ch == ']' {
			s = accent
		}
		screen.SetContent(x, y, ch, nil, s)
	}
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := defaultDemoConfig()
	if *configPath != "" {
		loaded, err := loadDemoConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	clock := tui.NewMonotonicTimeProvider()
	d := newDemo(cfg, clock)
	d.screenW, d.screenH = screen.Size()

	if cfg.Sound {
		if err := d.sound.Initialize(); err == nil {
			d.soundOn = true
		}
	}
	defer d.sound.Cleanup()

	// Dedicated input goroutine
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	d.collect(clock.Now())

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		// Handle all pending events
	eventLoop:
		for {
			select {
			case ev := <-eventCh:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
				case *tcell.EventKey:
					if !d.handleKey(ev, clock.Now()) {
						return
					}
				}
			default:
				break eventLoop
			}
		}

		// A dirty collection (appended cards) is a new collection event
		if d.collector.Dirty() {
			d.collect(clock.Now())
		}

		d.draw(screen)
		screen.Show()
		<-ticker.C
	}
}

// handleKey applies one key event, false means quit
func (d *demo) handleKey(ev *tcell.EventKey, now time.Time) bool {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case '1', '2', '3', '4', '5', '6', '7':
		d.choice = strategyChoice(r - '1')
		d.replay(now)
	case 'h':
		d.dir = stagger.LeftToRight
		d.replay(now)
	case 'l':
		d.dir = stagger.RightToLeft
		d.replay(now)
	case 'k':
		d.dir = stagger.TopToBottom
		d.replay(now)
	case 'j':
		d.dir = stagger.BottomToTop
		d.replay(now)
	case 'a':
		d.addCard()
	case 'r':
		d.replay(now)
	case 'm':
		d.animator.ReducedMotion = !d.animator.ReducedMotion
	case 's':
		if d.soundOn {
			d.soundOn = false
			break
		}
		if err := d.sound.Initialize(); err == nil {
			d.soundOn = true
		}
	}
	return true
}
