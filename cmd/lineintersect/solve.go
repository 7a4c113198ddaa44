package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lineintersect"
	"github.com/osuushi/lineintersect/dbg"
	"github.com/osuushi/lineintersect/internal/param"
	"github.com/pkg/errors"
)

type SegmentPair struct {
	Self, Other lineintersect.Segment
}

// Read segment pairs from the input. Each non-empty line is a point "x y" (or
// "x,y"), and every pair is four points: self start, self end, other start,
// other end. Pairs are separated by an empty line.
func readSegmentPairs(in io.Reader) ([]SegmentPair, error) {
	pairs := []SegmentPair{}
	points := []lineintersect.Point{}
	lineNumber := 0

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		if len(points) != 4 {
			return errors.Errorf("line %d: a segment pair needs 4 points, got %d", lineNumber, len(points))
		}
		pairs = append(pairs, SegmentPair{
			Self:  lineintersect.Segment{Start: points[0], End: points[1]},
			Other: lineintersect.Segment{Start: points[2], End: points[3]},
		})
		points = points[:0]
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the pair
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := param.ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading segments")
	}

	// Handle trailing pair if any
	if err := flush(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func describe(result lineintersect.Intersection) string {
	switch result := result.(type) {
	case lineintersect.PointIntersection:
		return fmt.Sprintf("point %s outer=%s special=%t", result.Point, result.OuterSide, result.IsSpecialCase)
	}
	return "colinear"
}

func colorize(au aurora.Aurora, result lineintersect.Intersection, text string) aurora.Value {
	switch result := result.(type) {
	case lineintersect.PointIntersection:
		if result.IsSpecialCase {
			return au.Yellow(text)
		}
		return au.Green(text)
	}
	return au.Red(text)
}

func describeSegment(s lineintersect.Segment) string {
	eq := lineintersect.LinearEquationFromSegment(s)
	return fmt.Sprintf("%s %s normal=%s distance=%d", dbg.Name(s), s, eq.NormalVector, eq.OriginDistance)
}

func solve(in io.Reader, out io.Writer, au aurora.Aurora, verbose bool) error {
	pairs, err := readSegmentPairs(in)
	if err != nil {
		return err
	}

	for i, pair := range pairs {
		if verbose {
			fmt.Fprintf(out, "%s\n", au.Faint(fmt.Sprintf("  self:  %s", describeSegment(pair.Self))))
			fmt.Fprintf(out, "%s\n", au.Faint(fmt.Sprintf("  other: %s", describeSegment(pair.Other))))
		}

		result, err := lineintersect.IntersectChecked(pair.Self, pair.Other)
		if err != nil {
			fmt.Fprintf(out, "pair %d: %s\n", i+1, au.Red(err.Error()))
			continue
		}
		fmt.Fprintf(out, "pair %d: %s\n", i+1, colorize(au, result, describe(result)))
	}
	return nil
}
