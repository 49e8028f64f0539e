//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/timburks/lined/pkg/commander"
	"github.com/timburks/lined/pkg/config"
	"github.com/timburks/lined/pkg/editor"
	"github.com/timburks/lined/pkg/screen"
)

const defaultFileName = "test.txt"

func main() {

	filename := defaultFileName
	configPath := config.DefaultPath()
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a script instead of the interactive editor
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				die(nil, errors.New("no file specified for --eval option"))
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				die(nil, errors.New("no file specified for --config option"))
			}
		default:
			filename = argi
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		die(nil, err)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.SetOptions(editor.Options{
		Filler:       cfg.Filler,
		InfoBar:      cfg.InfoBar,
		SplitOnEnter: cfg.SplitOnEnter,
	})
	if err := e.ReadFile(filename); err != nil {
		die(nil, err)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a script and exit.
		if err := c.ParseEvalFile(script); err != nil {
			die(nil, err)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		die(nil, errors.New("standard input is not a terminal"))
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		die(nil, err)
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		die(nil, err)
	}
	defer func() {
		if r := recover(); r != nil {
			s.Close()
			panic(r)
		}
	}()
	log.Printf("editing %s", filename)

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e.Render); err != nil {
			die(s, err)
		}
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			die(s, err)
		}
	}
	s.Close()
}

// die restores the terminal, reports err and exits.
func die(s *screen.Screen, err error) {
	s.Close()
	log.Printf("fatal: %v", err)
	if log.Writer() != os.Stderr {
		fmt.Fprintf(os.Stderr, "lined: %v\n", err)
	}
	os.Exit(1)
}
