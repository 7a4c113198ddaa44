package advanced

import (
	"embed"
	"io/fs"
	"log"
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
)

// This file parses the svg fixtures into a pair of segments and the expected
// result of intersecting them. Each fixture is an svg with exactly two <line>
// elements, the first being the "self" segment. The expected result lives in
// data- attributes on the root element:
//
//	data-expect   "colinear" or "point"
//	data-point    "x,y" (point only)
//	data-outer    "Left" or "Right" (point only)
//	data-special  "true" or "false" (point only)
//
// Fixtures can be opened in any svg viewer to see what is being tested. If
// anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Self, Other Segment
	Expected    Intersection
}

func LoadFixture(name string) *Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lines := rootEl.FindAll("line")
	if len(lines) != 2 {
		log.Fatalf("Fixture %q must have exactly two lines, found %d", name, len(lines))
	}

	fixture := &Fixture{
		Self:  parseLineElement(name, lines[0]),
		Other: parseLineElement(name, lines[1]),
	}

	switch expect := rootEl.Attributes["data-expect"]; expect {
	case "colinear":
		fixture.Expected = Colinear{}
	case "point":
		fixture.Expected = PointIntersection{
			Point:         parsePointAttribute(name, rootEl.Attributes["data-point"]),
			OuterSide:     parseSideAttribute(name, rootEl.Attributes["data-outer"]),
			IsSpecialCase: rootEl.Attributes["data-special"] == "true",
		}
	default:
		log.Fatalf("Fixture %q has unknown data-expect %q", name, expect)
	}
	return fixture
}

func FixtureNames() []string {
	entries, err := fs.ReadDir(fixtures, "fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	return names
}

func parseLineElement(name string, el *svgparser.Element) Segment {
	coord := func(attr string) int {
		v, err := strconv.Atoi(el.Attributes[attr])
		if err != nil {
			log.Fatalf("Invalid %s value %q in fixture %q: %v", attr, el.Attributes[attr], name, err)
		}
		return v
	}
	return Segment{
		Start: Point{coord("x1"), coord("y1")},
		End:   Point{coord("x2"), coord("y2")},
	}
}

func parsePointAttribute(name, value string) Point {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		log.Fatalf("Invalid point string %q in fixture %q", value, name)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		log.Fatalf("Invalid x value %q in fixture %q: %v", parts[0], name, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		log.Fatalf("Invalid y value %q in fixture %q: %v", parts[1], name, err)
	}
	return Point{x, y}
}

func parseSideAttribute(name, value string) LineSide {
	switch value {
	case "Left":
		return Left
	case "Right":
		return Right
	}
	log.Fatalf("Invalid side %q in fixture %q", value, name)
	return Left
}

func TestFixtures(t *testing.T) {
	names := FixtureNames()
	assert.NotEmpty(t, names)
	for _, name := range names {
		fixture := LoadFixture(name)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, fixture.Expected, fixture.Self.Intersect(fixture.Other))
		})
	}
}
