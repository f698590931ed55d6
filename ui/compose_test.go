package ui

import (
	"strings"
	"testing"

	"github.com/riordanpawley/canopy/ui/styles"
)

func TestFrame_IncludesTitleAndBody(t *testing.T) {
	st := styles.New()

	framed := Frame(st, "Settings", "content here")
	if !strings.Contains(framed, "Settings") {
		t.Error("Frame should render the title")
	}
	if !strings.Contains(framed, "content here") {
		t.Error("Frame should render the body")
	}
}

func TestFrame_NoTitle(t *testing.T) {
	st := styles.New()

	framed := Frame(st, "", "just body")
	if !strings.Contains(framed, "just body") {
		t.Error("Frame without title should still render the body")
	}
}

func TestCenter_FillsDimensions(t *testing.T) {
	placed := Center(40, 10, "x")

	lines := strings.Split(placed, "\n")
	if len(lines) != 10 {
		t.Errorf("Expected 10 lines, got %d", len(lines))
	}
}

func TestBottomRight_PlacesOnLastLine(t *testing.T) {
	placed := BottomRight(40, 5, "alert")

	lines := strings.Split(placed, "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], "alert") {
		t.Error("Content should sit on the bottom line")
	}
}
