// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/tvsurface/logger"
	"github.com/jetsetilly/tvsurface/modalflag"
	"github.com/jetsetilly/tvsurface/ntsc"
	"github.com/jetsetilly/tvsurface/palette"
	"github.com/jetsetilly/tvsurface/performance"
	"github.com/jetsetilly/tvsurface/prefs"
	"github.com/jetsetilly/tvsurface/resources"
	"github.com/jetsetilly/tvsurface/scanlines"
	"github.com/jetsetilly/tvsurface/statsview"
	"github.com/jetsetilly/tvsurface/tvsurface"
	"github.com/jetsetilly/tvsurface/version"
)

// the name of the preferences file in the resources directory
const prefsFile = "preferences"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator may return a typed nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RENDER", "PLAY", "PERFORMANCE", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md, os.Stdout)

	case "PLAY":
		err = play(md, sync)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "PREFS":
		err = preferences(md, os.Stdout)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Printf("%s %s", version.ApplicationName, v)
		if r != "" {
			fmt.Printf(" (%s)", r)
		}
		fmt.Println()
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the PLAY and RENDER modes. the values are pushed onto the
// preferences command line stack so that they take precedence over the values
// in the preferences file
type tvFlags struct {
	preset    *string
	mask      *string
	scanlines *int
	phosphor  *bool
	blend     *int
	threads   *bool
	prefs     *string
	log       *bool
}

func addTVFlags(md *modalflag.Modes) tvFlags {
	return tvFlags{
		preset:    md.AddChoice("preset", "", ntsc.PresetNames(), "TV filtering preset"),
		mask:      md.AddChoice("mask", "", scanlines.Settings(), "scanline mask"),
		scanlines: md.AddInt("scanlines", -1, "scanline intensity (0 to 100)"),
		phosphor:  md.AddBool("phosphor", false, "enable phosphor blending"),
		blend:     md.AddInt("blend", -1, "phosphor blend level (0 to 100)"),
		threads:   md.AddBool("threads", false, "use more than one goroutine in the composite decoder"),
		prefs:     md.AddString("prefs", "", "preference values to use in place of preferences file"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// commandLine returns the flags as a preferences command line
func (f tvFlags) commandLine() string {
	var s []string
	if *f.prefs != "" {
		s = append(s, *f.prefs)
	}
	if *f.preset != "" {
		p, _ := ntsc.PresetFromName(*f.preset)
		s = append(s, fmt.Sprintf("tv.filter::%d", int(p)))
	}
	if *f.mask != "" {
		s = append(s, fmt.Sprintf("tv.scanmask::%s", *f.mask))
	}
	if *f.scanlines >= 0 {
		s = append(s, fmt.Sprintf("tv.scanlines::%d", *f.scanlines))
	}
	if *f.phosphor {
		s = append(s, "tv.phosphor::true")
	}
	if *f.blend >= 0 {
		s = append(s, fmt.Sprintf("tv.phosblend::%d", *f.blend))
	}
	if *f.threads {
		s = append(s, "threads::true")
	}
	return strings.Join(s, "; ")
}

func (f tvFlags) apply() {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}
	prefs.PushCommandLineStack(f.commandLine())
}

// report any preference values on the command line that were not used
func (f tvFlags) unused() {
	if s := prefs.PopCommandLineStack(); s != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line values: %s", s)
	}
}

func preferencesPath() (string, error) {
	return resources.JoinPath(prefsFile)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	preset := md.AddChoice("preset", "composite", ntsc.PresetNames(), "TV filtering preset")
	phosphor := md.AddBool("phosphor", false, "enable phosphor blending")
	uncapped := md.AddBool("uncapped", true, "run without a frame rate limit")
	threads := md.AddBool("threads", false, "use more than one goroutine in the composite decoder")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(output), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	pr, _ := ntsc.PresetFromName(*preset)
	opts := performance.Options{
		Preset:   pr,
		Phosphor: *phosphor,
		Uncapped: *uncapped,
		Threads:  *threads,
	}

	return performance.Check(output, prf, opts, *duration)
}

func preferences(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	reset := md.AddBool("reset", false, "reset all TV preferences to their default values")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	path, err := preferencesPath()
	if err != nil {
		return err
	}

	tvp, err := tvsurface.NewPreferences(path)
	if err != nil {
		return err
	}
	err = tvp.Register(ntsc.NewDecoder())
	if err != nil {
		return err
	}
	err = tvp.Register(palette.NewGenerator())
	if err != nil {
		return err
	}

	// changes are made by key=value arguments
	changes := md.RemainingArgs()
	if *reset || len(changes) > 0 {
		err = tvp.Load(false)
		if err != nil {
			return err
		}
		if *reset {
			tvp.SetDefaults()
		}
		for _, c := range changes {
			k, v, ok := strings.Cut(c, "=")
			if !ok {
				return fmt.Errorf("preference change must be of the form key=value (%s)", c)
			}
			err = tvp.Set(strings.TrimSpace(k), strings.TrimSpace(v))
			if err != nil {
				return err
			}
		}
		err = tvp.Save()
		if err != nil {
			return err
		}
	} else {
		err = tvp.Load(false)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(output, tvp)

	return nil
}
