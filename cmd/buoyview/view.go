package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/buoyancy/internal/scene"
	"github.com/Faultbox/buoyancy/internal/water"
	"github.com/Faultbox/buoyancy/pkg/math"
)

const frameInterval = time.Second / 30

type view struct {
	screen  tcell.Screen
	scene   *scene.Scene
	surface *water.Surface
	paused  bool
	points  []math.Vec3 // world samples, reused per object

	// World window mapped onto the terminal.
	minX, maxX float32
	minY, maxY float32
}

func newView(screen tcell.Screen, s *scene.Scene) *view {
	v := &view{screen: screen, scene: s}
	v.fit()
	return v
}

// fit frames the bodies and the full wave height.
func (v *view) fit() {
	w, _ := v.screen.Size()
	field := v.scene.Field()
	minX, maxX := v.scene.XExtent()
	v.surface = water.BuildSurfaceWithPadding(field, minX, maxX, 0, 0, water.DefaultPadding, max(w-1, 1), 0)
	v.minX, v.maxX = v.surface.X(0), v.surface.X(v.surface.Cols-1)

	amp := field.Params().Amplitude
	if amp < 0 {
		amp = -amp
	}
	v.minY, v.maxY = -amp-4, amp+4
}

func (v *view) run() error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		// PollEvent returns nil once the screen is finalized.
		for ev := v.screen.PollEvent(); ev != nil; ev = v.screen.PollEvent() {
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				if ev.Rune() == ' ' {
					v.paused = !v.paused
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.fit()
			}
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			if !v.paused {
				v.scene.Update(dt)
			}
			v.draw()
		}
	}
}

// toCell maps a world (x, y) to a terminal cell.
func (v *view) toCell(x, y float32) (int, int) {
	w, h := v.screen.Size()
	cx := int((x - v.minX) / (v.maxX - v.minX) * float32(w-1))
	cy := int((v.maxY - y) / (v.maxY - v.minY) * float32(h-2))
	return cx, cy + 1
}

func (v *view) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	waterStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	crestStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	bodyStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	wetStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	forceStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	field := v.scene.Field()
	v.surface.Update(field)
	for c := 0; c < v.surface.Cols && c < w; c++ {
		_, top := v.toCell(v.surface.X(c), v.surface.Height(c, 0))
		v.screen.SetContent(c, top, '~', nil, crestStyle)
		for y := top + 1; y < h; y++ {
			v.screen.SetContent(c, y, '.', nil, waterStyle)
		}
	}

	for _, obj := range v.scene.Objects() {
		v.points = obj.WorldSamples(v.points)
		for _, wp := range v.points {
			style := bodyStyle
			if field.IsUnderwater(wp) {
				style = wetStyle
			}
			cx, cy := v.toCell(wp.X, wp.Y)
			v.screen.SetContent(cx, cy, '#', nil, style)
		}
		if obj.Last.Applied {
			cx, cy := v.toCell(obj.Last.Position.X, obj.Last.Position.Y)
			v.screen.SetContent(cx, cy, '^', nil, forceStyle)
		}
	}

	status := fmt.Sprintf(" t=%6.2fs  phase=%6.2f  bodies=%d  [space] pause  [q] quit ",
		v.scene.Elapsed(), field.Phase(), len(v.scene.Objects()))
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}
