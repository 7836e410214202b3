package patternmatcher_test

import (
	"testing"

	"github.com/fiskmans/patternmatcher"
)

func TestExactly(t *testing.T) {
	rc := patternmatcher.Exactly(3)
	if rc.Min != 3 || rc.Max != 3 {
		t.Fatalf("got %+v, want Min=Max=3", rc)
	}
}

func TestRange(t *testing.T) {
	rc := patternmatcher.Range(2, 5)
	if rc.Min != 2 || rc.Max != 5 {
		t.Fatalf("got %+v, want Min=2 Max=5", rc)
	}
}

func TestUnboundedIsMaxInt(t *testing.T) {
	rc := patternmatcher.Range(0, patternmatcher.Unbounded)
	if rc.Max != patternmatcher.Unbounded {
		t.Fatalf("got Max=%d, want Unbounded", rc.Max)
	}
}
