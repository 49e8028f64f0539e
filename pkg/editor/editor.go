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

package editor

import (
	lined "github.com/timburks/lined/pkg/types"
)

// Options control behavior that differs between editing styles.
type Options struct {
	Filler       string // drawn on screen lines past the end of the document
	InfoBar      bool   // reserve the last screen line for file name and position
	SplitOnEnter bool   // Enter splits the row at the cursor instead of opening a blank row
}

func DefaultOptions() Options {
	return Options{Filler: "~", InfoBar: true}
}

// The Editor owns a document and the cursor that edits it.
// Events are applied one at a time by Perform; after each one the cursor
// is inside the document again.
type Editor struct {
	document *Document
	fileName string
	cursor   lined.Point // next insertion point
	offset   lined.Size  // display offset
	size     lined.Size  // size of the editing area
	options  Options
	quit     bool
}

func NewEditor() *Editor {
	return &Editor{
		document: NewDocument(nil),
		options:  DefaultOptions(),
	}
}

func (e *Editor) SetOptions(o Options) {
	e.options = o
}

// ReadFile replaces the document with the contents of path.
func (e *Editor) ReadFile(path string) error {
	d, err := ReadDocument(path)
	if err != nil {
		return err
	}
	e.fileName = path
	e.SetDocument(d)
	return nil
}

func (e *Editor) SetDocument(d *Document) {
	e.document = d
	e.cursor = lined.Point{}
	e.offset = lined.Size{}
}

func (e *Editor) GetDocument() *Document {
	return e.document
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) GetCursor() lined.Point {
	return e.cursor
}

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(p lined.Point) {
	e.cursor = Clamp(p, e.document)
}

func (e *Editor) IsRunning() bool {
	return !e.quit
}

// Perform applies one intent. c is the character for IntentCharacter and
// is ignored otherwise.
func (e *Editor) Perform(intent lined.Intent, c rune) {
	d := e.document
	x, y := e.cursor.Col, e.cursor.Row
	switch intent {
	case lined.IntentCharacter:
		d.InsertIntoRow(y, x, c)
		e.move(lined.IntentRight)
	case lined.IntentNewline:
		if e.options.SplitOnEnter {
			d.SplitRow(y, x)
			e.cursor = lined.Point{Row: y + 1, Col: 0}
		} else {
			d.AddRow(y)
			e.move(lined.IntentRight)
		}
	case lined.IntentBackspace:
		if x == 0 {
			// the cursor lands where the two rows meet
			join := d.RowLen(y - 1)
			if d.RowLen(y) != 0 {
				d.RemoveAndAppendToPreviousRow(y)
			} else {
				d.RemoveRow(y)
			}
			if y > 0 {
				e.cursor = lined.Point{Row: y - 1, Col: join}
			}
		} else {
			d.RemoveFromRow(y, x)
			e.move(lined.IntentLeft)
		}
	case lined.IntentDelete:
		if x < d.RowLen(y) {
			d.RemoveFromRow(y, x+1)
		} else {
			d.RemoveAndAppendToPreviousRow(y + 1)
		}
	case lined.IntentQuit:
		e.quit = true
		return
	default:
		e.move(intent)
	}
	e.cursor = Clamp(e.cursor, d)
}

func (e *Editor) move(intent lined.Intent) {
	e.cursor = Move(e.cursor, intent, e.document)
}
