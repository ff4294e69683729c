package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/buoyancy/internal/config"
	"github.com/Faultbox/buoyancy/internal/scene"
	"github.com/Faultbox/buoyancy/internal/water"
)

func newTestView(t *testing.T) (*view, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	s, err := scene.FromConfig(config.Default(), nil)
	require.NoError(t, err)
	return newView(screen, s), screen
}

func countRune(screen tcell.SimulationScreen, r rune) int {
	w, h := screen.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mainc, _, _, _ := screen.GetContent(x, y); mainc == r {
				n++
			}
		}
	}
	return n
}

func TestViewFitsScreen(t *testing.T) {
	v, _ := newTestView(t)
	assert.Equal(t, 80, v.surface.Cols)
	assert.Less(t, v.minX, v.maxX)
	assert.Less(t, v.minY, v.maxY)
}

func TestViewDraw(t *testing.T) {
	v, screen := newTestView(t)
	v.draw()

	assert.Equal(t, 80, countRune(screen, '~'), "one crest cell per column")
	assert.Positive(t, countRune(screen, '#'), "body samples are drawn")

	mainc, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 't', mainc, "status line")
}

func TestToCellCorners(t *testing.T) {
	v, _ := newTestView(t)

	x, y := v.toCell(v.minX, v.maxY)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)

	x, y = v.toCell(v.maxX, v.minY)
	assert.Equal(t, 79, x)
	assert.Equal(t, 23, y)
}

func TestRunPauseAndQuit(t *testing.T) {
	v, screen := newTestView(t)
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	errc := make(chan error, 1)
	go func() { errc <- v.run() }()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after q")
	}
	assert.True(t, v.paused)
}

func TestViewBoundsIncludePadding(t *testing.T) {
	v, _ := newTestView(t)
	minX, maxX := v.scene.XExtent()
	assert.InDelta(t, minX-water.DefaultPadding, v.minX, 1e-4)
	assert.InDelta(t, maxX+water.DefaultPadding, v.maxX, 1e-3)
}
