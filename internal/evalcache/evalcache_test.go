package evalcache

import (
	"testing"
	"time"

	"github.com/cja000/cga/internal/engine"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func TestKey_DistinguishesLimits(t *testing.T) {
	depth := Key(startFEN, engine.Limits{Depth: 12}, 3)
	moveTime := Key(startFEN, engine.Limits{MoveTime: time.Second}, 3)
	if depth == moveTime {
		t.Errorf("depth and movetime keys collide: %q", depth)
	}

	pv1 := Key(startFEN, engine.Limits{Depth: 12}, 1)
	if depth == pv1 {
		t.Errorf("multipv keys collide: %q", depth)
	}
}

func TestCache_GetAdd(t *testing.T) {
	c, err := New(8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	key := Key(startFEN, engine.Limits{Depth: 10}, 3)
	if _, ok := c.Get(key); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	want := &engine.Result{BestMove: "e2e4"}
	c.Add(key, want)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() after Add reported a miss")
	}
	if got.BestMove != "e2e4" {
		t.Errorf("BestMove = %q, want %q", got.BestMove, "e2e4")
	}
}

func TestCache_Evicts(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Add("a", &engine.Result{})
	c.Add("b", &engine.Result{})
	c.Add("c", &engine.Result{})

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry survived eviction")
	}
}
