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

package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
	EventOther  = 3
)

// A Key identifies a non-character key. Character keys arrive with Key == 0
// and the character in Event.Ch.
type Key int

const (
	KeyUnsupported Key = iota + 1
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyEsc
	KeyCtrlC
	KeyCtrlQ
)

// An Event is a single input event delivered by a Screen.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Err  error
}

// An Intent is what the editor is asked to do in response to one event.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentHome
	IntentEnd
	IntentPageUp
	IntentPageDown
	IntentCharacter
	IntentNewline
	IntentBackspace
	IntentDelete
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentNone:      "none",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentUp:        "up",
	IntentDown:      "down",
	IntentHome:      "home",
	IntentEnd:       "end",
	IntentPageUp:    "page-up",
	IntentPageDown:  "page-down",
	IntentCharacter: "insert",
	IntentNewline:   "newline",
	IntentBackspace: "backspace",
	IntentDelete:    "delete",
	IntentQuit:      "quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Color int

const (
	ColorWhite Color = 0x08
	ColorBlack Color = 0x01
)

// A Display receives the cells of a rendered editor.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	SetCursor(col int, row int)
}
