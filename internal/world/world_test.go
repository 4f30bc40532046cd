package world

import (
	"math"
	"testing"

	"github.com/GauBen/le-pire-cube/internal/worldgen"
)

// testGenerator uses a short power-up interval so the first diagonal
// cell (1, 1) is guaranteed to carry a boost.
func testGenerator() *worldgen.Generator {
	return worldgen.New(0.42, worldgen.Params{
		CorridorWidth: 3,
		WalkZone:      20,
		Velocity:      math.Sqrt2,
		Acceleration:  0.1 * math.Sqrt2,
		Interval:      0.5,
	})
}

func TestMaterializeFirstWindow(t *testing.T) {
	w := New(testGenerator())

	if start, end := w.Window(); end >= start {
		t.Fatalf("Window() = [%d, %d] before any Materialize call", start, end)
	}
	if c := w.Cell(0, 0); c != nil {
		t.Fatal("Cell(0, 0) != nil before any Materialize call")
	}

	w.Materialize(-2, 10)

	if start, end := w.Window(); start != -2 || end != 10 {
		t.Errorf("Window() = [%d, %d], expected [-2, 10]", start, end)
	}
	c := w.Cell(0, 0)
	if c == nil {
		t.Fatal("Cell(0, 0) = nil after materializing [-2, 10]")
	}
	if c.Kind != worldgen.KindWalkable {
		t.Errorf("Cell(0, 0).Kind = %v, expected walkable", c.Kind)
	}
	if c := w.Cell(1, 1); c == nil || c.Kind != worldgen.KindPowerUp {
		t.Errorf("Cell(1, 1) = %+v, expected a power-up cell", c)
	}
	if c := w.Cell(10, 0); c == nil || c.Kind != worldgen.KindEmpty {
		t.Errorf("Cell(10, 0) = %+v, expected an empty cell", c)
	}
}

func TestMaterializeInvertedFirstWindow(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(5, 3)

	if start, end := w.Window(); end >= start {
		t.Errorf("Window() = [%d, %d], expected no window after an inverted request", start, end)
	}
	if c := w.Cell(4, 4); c != nil {
		t.Error("Cell(4, 4) != nil after an inverted first request")
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(0, 10)

	boost := w.Cell(1, 1)
	if boost == nil || boost.Kind != worldgen.KindPowerUp {
		t.Fatalf("Cell(1, 1) = %+v, expected a power-up cell", boost)
	}
	if !boost.Consume(3.5) {
		t.Fatal("Consume(3.5) = false on a fresh power-up")
	}

	kinds := make(map[Coord]worldgen.Kind)
	for y := 0; y <= 10; y++ {
		for x := 0; x <= 10; x++ {
			kinds[C(x, y)] = w.Cell(x, y).Kind
		}
	}

	w.Materialize(0, 10)

	for coord, kind := range kinds {
		c := w.Cell(coord.X, coord.Y)
		if c == nil || c.Kind != kind {
			t.Fatalf("Cell(%d, %d) changed after re-materializing the same window", coord.X, coord.Y)
		}
	}
	again := w.Cell(1, 1)
	if again != boost {
		t.Error("re-materializing replaced an existing cell")
	}
	if !again.Consumed || again.ConsumedAt != 3.5 {
		t.Errorf("consumed state = (%v, %v), expected (true, 3.5)", again.Consumed, again.ConsumedAt)
	}
}

func TestMaterializeEvictsTrailingEdge(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(0, 10)
	w.Materialize(5, 15)

	if start, end := w.Window(); start != 5 || end != 15 {
		t.Errorf("Window() = [%d, %d], expected [5, 15]", start, end)
	}
	for _, c := range []Coord{{0, 0}, {2, 2}, {4, 10}, {10, 4}} {
		if w.Cell(c.X, c.Y) != nil {
			t.Errorf("Cell(%d, %d) survived eviction", c.X, c.Y)
		}
	}
	if w.Cell(5, 5) == nil {
		t.Error("Cell(5, 5) = nil inside the advanced window")
	}
	if w.Cell(15, 15) == nil {
		t.Error("Cell(15, 15) = nil at the leading edge")
	}
}

func TestMaterializeGrowingEndKeepsCells(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(0, 10)

	origin := w.Cell(0, 0)
	w.Materialize(0, 20)

	if start, end := w.Window(); start != 0 || end != 20 {
		t.Errorf("Window() = [%d, %d], expected [0, 20]", start, end)
	}
	if w.Cell(0, 0) != origin {
		t.Error("growing the far edge replaced a trailing cell")
	}
	if w.Cell(20, 20) == nil {
		t.Error("Cell(20, 20) = nil after growing the window")
	}
}

func TestMaterializeClampsBackwardRequests(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(5, 15)
	w.Materialize(0, 20)

	if start, end := w.Window(); start != 5 || end != 20 {
		t.Errorf("Window() = [%d, %d], expected [5, 20]", start, end)
	}
	if w.Cell(2, 2) != nil {
		t.Error("Cell(2, 2) materialized behind the trailing edge")
	}
}

func TestCellConsume(t *testing.T) {
	w := New(testGenerator())
	w.Materialize(0, 10)

	boost := w.Cell(1, 1)
	if boost == nil || boost.Kind != worldgen.KindPowerUp {
		t.Fatalf("Cell(1, 1) = %+v, expected a power-up cell", boost)
	}
	if !boost.Consume(2.0) {
		t.Fatal("Consume(2.0) = false on a fresh power-up")
	}
	if boost.Consume(4.0) {
		t.Error("Consume(4.0) = true on an already consumed power-up")
	}
	if boost.ConsumedAt != 2.0 {
		t.Errorf("ConsumedAt = %v, expected 2.0", boost.ConsumedAt)
	}

	ground := w.Cell(0, 0)
	if ground.Consume(1.0) {
		t.Error("Consume(1.0) = true on a plain walkable cell")
	}
	if ground.Consumed {
		t.Error("plain walkable cell marked consumed")
	}
}

func TestCellWalkable(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"empty", Cell{Kind: worldgen.KindEmpty}, false},
		{"walkable", Cell{Kind: worldgen.KindWalkable}, true},
		{"power-up", Cell{Kind: worldgen.KindPowerUp}, true},
		{"consumed power-up", Cell{Kind: worldgen.KindPowerUp, Consumed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Walkable(); got != tt.expected {
				t.Errorf("Walkable() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
