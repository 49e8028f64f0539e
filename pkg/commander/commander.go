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

package commander

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/lined/pkg/editor"
	lined "github.com/timburks/lined/pkg/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor  *editor.Editor
	output  io.Writer // destination of (print-buffer)
	message string    // result of the last failed evaluation
}

// NewCommander creates a commander for e. The lisp primitives act on the
// most recently created commander.
func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e, output: os.Stdout}
	current = c
	return c
}

func (c *Commander) SetOutput(w io.Writer) {
	c.output = w
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

// ProcessEvent handles one input event. Only input errors are returned.
func (c *Commander) ProcessEvent(event *lined.Event) error {
	switch event.Type {
	case lined.EventKey:
		c.processKey(event)
		return nil
	case lined.EventError:
		return fmt.Errorf("input: %w", event.Err)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *lined.Event) {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case lined.KeyCtrlC, lined.KeyCtrlQ:
			c.parseEval("(quit)")
		case lined.KeyArrowUp:
			c.parseEval("(up)")
		case lined.KeyArrowDown:
			c.parseEval("(down)")
		case lined.KeyArrowLeft:
			c.parseEval("(left)")
		case lined.KeyArrowRight:
			c.parseEval("(right)")
		case lined.KeyHome:
			c.parseEval("(home)")
		case lined.KeyEnd:
			c.parseEval("(end)")
		case lined.KeyPgup:
			c.parseEval("(page-up)")
		case lined.KeyPgdn:
			c.parseEval("(page-down)")
		case lined.KeyEnter:
			c.parseEval("(newline)")
		case lined.KeyBackspace:
			c.parseEval("(backspace)")
		case lined.KeyDelete:
			c.parseEval("(delete)")
		case lined.KeySpace:
			c.insert(' ')
		case lined.KeyTab:
			c.insert('\t')
		}
		return
	}
	if ch != 0 {
		c.insert(ch)
	}
}

func (c *Commander) insert(ch rune) {
	c.parseEval(fmt.Sprintf("(insert %d)", ch))
}

// Eval evaluates a sequence of lisp expressions and returns the printed
// value of the last one.
func (c *Commander) Eval(script string) (string, error) {
	value, err := golisp.ParseAndEval("(begin " + script + "\n)")
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

// ParseEvalFile runs the script in the named file.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if _, err := c.Eval(string(b)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Commander) parseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %s: %+v", command, err)
		c.message = err.Error()
		return c.message
	}
	c.message = ""
	return golisp.String(value)
}
