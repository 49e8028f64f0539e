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

// Package screen draws lined in a terminal using termbox.
package screen

import (
	"fmt"

	"github.com/nsf/termbox-go"

	lined "github.com/timburks/lined/pkg/types"
)

// A Screen owns the terminal while lined is running. NewScreen puts the
// terminal in raw mode; Close restores it and is safe to call more than once.
type Screen struct {
	open bool
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Screen{open: true}, nil
}

func (s *Screen) Close() {
	if s == nil || !s.open {
		return
	}
	s.open = false
	termbox.Close()
}

func (s *Screen) Size() lined.Size {
	var size lined.Size
	size.Cols, size.Rows = termbox.Size()
	return size
}

// Render clears the screen, lets draw fill it and flushes it to the terminal.
func (s *Screen) Render(draw func(d lined.Display, size lined.Size)) error {
	if err := termbox.Clear(termbox.ColorWhite, termbox.ColorBlack); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	draw(s, s.Size())
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flush screen: %w", err)
	}
	return nil
}

func (s *Screen) SetCell(col int, row int, c rune, fg lined.Color, bg lined.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(col int, row int) {
	termbox.SetCursor(col, row)
}

// GetNextEvent blocks until the terminal delivers an event.
func (s *Screen) GetNextEvent() *lined.Event {
	return convert(termbox.PollEvent())
}

func convert(event termbox.Event) *lined.Event {
	switch event.Type {
	case termbox.EventKey:
		return &lined.Event{
			Type: lined.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	case termbox.EventResize:
		return &lined.Event{Type: lined.EventResize}
	case termbox.EventError:
		return &lined.Event{Type: lined.EventError, Err: event.Err}
	default:
		return &lined.Event{Type: lined.EventOther}
	}
}

// key returns 0 for character events, which termbox reports with a zero key.
func key(k termbox.Key) lined.Key {
	switch k {
	case 0:
		return 0
	case termbox.KeyArrowDown:
		return lined.KeyArrowDown
	case termbox.KeyArrowLeft:
		return lined.KeyArrowLeft
	case termbox.KeyArrowRight:
		return lined.KeyArrowRight
	case termbox.KeyArrowUp:
		return lined.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return lined.KeyBackspace
	case termbox.KeyDelete:
		return lined.KeyDelete
	case termbox.KeyCtrlC:
		return lined.KeyCtrlC
	case termbox.KeyCtrlQ:
		return lined.KeyCtrlQ
	case termbox.KeyEnd:
		return lined.KeyEnd
	case termbox.KeyEnter:
		return lined.KeyEnter
	case termbox.KeyEsc:
		return lined.KeyEsc
	case termbox.KeyHome:
		return lined.KeyHome
	case termbox.KeyPgdn:
		return lined.KeyPgdn
	case termbox.KeyPgup:
		return lined.KeyPgup
	case termbox.KeySpace:
		return lined.KeySpace
	case termbox.KeyTab:
		return lined.KeyTab
	default:
		return lined.KeyUnsupported
	}
}
