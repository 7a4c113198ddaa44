package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lineintersect/internal/harness"
	"github.com/osuushi/lineintersect/internal/param"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. `solve` intersects segment pairs read from stdin,
// four "x y" points per pair, pairs separated by an empty line. `render`
// draws one of the debug scenes to a PNG, with each scene parameter exposed as
// a flag:
//
//	lineintersect render line-intersection --l1_start=150,170 --imgcat
//	lineintersect render --set stroke=4 --set points=3 polyline
var (
	app     = kingpin.New("lineintersect", "Integer-only line segment intersection, and scenes for debugging it.")
	verbose = app.Flag("verbose", "Print segment names and line equations.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	solveCmd = app.Command("solve", "Intersect segment pairs read from stdin.")

	renderCmd    = app.Command("render", "Render a debug scene.")
	renderOut    = renderCmd.Flag("out", "PNG file to write; defaults to <scene>.png.").String()
	renderScale  = renderCmd.Flag("scale", "Integer upscaling factor.").Default("3").Int()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the frame to the terminal (iTerm only).").Bool()
	renderNoMenu = renderCmd.Flag("no-menu", "Don't list the parameters on the frame.").Bool()
	renderSet    = renderCmd.Flag("set", "Set a scene parameter by name, as name=value. Repeatable.").PlaceHolder("NAME=VALUE").StringMap()
)

func main() {
	scenes := map[string]harness.App{}
	for _, name := range harness.SceneNames() {
		scene := harness.Scenes[name]()
		cmd := renderCmd.Command(name, scene.Title())
		for _, p := range scene.Parameters() {
			cmd.Flag(p.Name, fmt.Sprintf("Set %s (default %s).", p.Name, p.Value)).SetValue(p.Value)
		}
		scenes[cmd.FullCommand()] = scene
	}

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	switch {
	case command == solveCmd.FullCommand():
		if err := solve(os.Stdin, os.Stdout, au, *verbose); err != nil {
			app.Fatalf("%v", err)
		}
	case strings.HasPrefix(command, renderCmd.FullCommand()+" "):
		if err := render(scenes[command], au); err != nil {
			app.Fatalf("%v", err)
		}
	}
}

// Assign each name=value pair to the scene parameter of that name, in name
// order so the first bad one reported is stable.
func applySettings(scene harness.App, settings map[string]string) error {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	params := scene.Parameters()
	for _, name := range names {
		if err := param.Assign(params, name, settings[name]); err != nil {
			return errors.Wrapf(err, "scene %s", scene.Name())
		}
	}
	return nil
}

func render(scene harness.App, au aurora.Aurora) error {
	if err := applySettings(scene, *renderSet); err != nil {
		return err
	}

	frame, err := harness.Render(scene, harness.Options{
		Scale:    *renderScale,
		HideMenu: *renderNoMenu,
	})
	if err != nil {
		return err
	}

	out := *renderOut
	if out == "" {
		out = scene.Name() + ".png"
	}
	if *renderImgcat {
		err = harness.ShowInTerminal(frame, out, os.Stdout)
	} else {
		err = harness.WritePNG(frame, out)
	}
	if err != nil {
		return err
	}

	if *verbose {
		for _, p := range scene.Parameters() {
			fmt.Println(au.Faint(p.String()))
		}
	}
	fmt.Printf("Wrote %s\n", au.Bold(filepath.Clean(out)))
	return nil
}
