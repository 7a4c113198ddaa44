// Package param provides named, live-editable parameters for the debug scenes.
//
// A Parameter doesn't own its value. It is a handle onto a field of the scene
// that created it, so setting a parameter changes what the scene draws on its
// next frame. Values satisfy kingpin.Getter, so a parameter can be bound
// directly to a command line flag.
package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osuushi/lineintersect/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Value = kingpin.Getter

type Parameter struct {
	Name  string
	Value Value
}

func New(name string, value Value) Parameter {
	return Parameter{Name: name, Value: value}
}

// Find a parameter by name and set it from its text form.
func Assign(params []Parameter, name, text string) error {
	for _, p := range params {
		if p.Name == name {
			return errors.Wrapf(p.Value.Set(text), "setting %s", name)
		}
	}
	return errors.Errorf("unknown parameter %q", name)
}

type uint32Value struct{ p *uint32 }

func Uint32(p *uint32) Value {
	return uint32Value{p}
}

func (v uint32Value) Get() interface{} { return *v.p }

func (v uint32Value) String() string { return strconv.FormatUint(uint64(*v.p), 10) }

func (v uint32Value) Set(s string) error {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid unsigned value %q", s)
	}
	*v.p = uint32(n)
	return nil
}

type pointValue struct{ p *advanced.Point }

func Point(p *advanced.Point) Value {
	return pointValue{p}
}

func (v pointValue) Get() interface{} { return *v.p }

func (v pointValue) String() string { return v.p.String() }

// Accepts "x,y", "x y" or the display form "(x, y)".
func (v pointValue) Set(s string) error {
	point, err := ParsePoint(s)
	if err != nil {
		return err
	}
	*v.p = point
	return nil
}

func ParsePoint(s string) (advanced.Point, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return advanced.Point{}, errors.Errorf("invalid point %q: expected two coordinates", s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x coordinate in point %q", s)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y coordinate in point %q", s)
	}
	return advanced.Point{X: x, Y: y}, nil
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s %s", p.Name, p.Value)
}
