package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lineintersect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `0 0
10 0
5 -5
5 5

0 0
10 10
0 0
20 20

150,170
170,200
120,130
145,169
`

func TestReadSegmentPairs(t *testing.T) {
	pairs, err := readSegmentPairs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, SegmentPair{
		Self:  lineintersect.Segment{Start: lineintersect.Point{X: 0, Y: 0}, End: lineintersect.Point{X: 10, Y: 0}},
		Other: lineintersect.Segment{Start: lineintersect.Point{X: 5, Y: -5}, End: lineintersect.Point{X: 5, Y: 5}},
	}, pairs[0])
	assert.Equal(t, lineintersect.Point{X: 145, Y: 169}, pairs[2].Other.End)

	// Extra blank lines and no trailing newline are fine
	pairs, err = readSegmentPairs(strings.NewReader("\n\n1 1\n2 2\n3 3\n4 5"))
	require.NoError(t, err)
	assert.Len(t, pairs, 1)

	pairs, err = readSegmentPairs(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestReadSegmentPairsErrors(t *testing.T) {
	_, err := readSegmentPairs(strings.NewReader("0 0\n1 1\n2 2\n\n"))
	assert.EqualError(t, err, "line 4: a segment pair needs 4 points, got 3")

	_, err = readSegmentPairs(strings.NewReader("0 0\nzero 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSolve(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader(input), &out, aurora.NewAurora(false), false)
	require.NoError(t, err)
	assert.Equal(t,
		"pair 1: point (5, 0) outer=Right special=false\n"+
			"pair 2: colinear\n"+
			"pair 3: point (145, 165) outer=Right special=true\n",
		out.String(),
	)
}

func TestSolveReportsOverflow(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader("0 0\n1099511627776 1\n0 0\n1 1099511627776\n"), &out, aurora.NewAurora(false), false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pair 1: integer overflow:")
}

func TestSolveVerbose(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader("0 0\n10 0\n5 -5\n5 5\n"), &out, aurora.NewAurora(false), true)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "(0, 0) -> (10, 0) normal=(0, -10) distance=0")
	assert.Contains(t, lines[1], "(5, -5) -> (5, 5) normal=(10, 0) distance=50")
}
