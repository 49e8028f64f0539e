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
	"fmt"

	"github.com/mattn/go-runewidth"

	lined "github.com/timburks/lined/pkg/types"
)

// A Line is one screen line of the text area.
type Line struct {
	Text   string
	Filler bool // true when the line is past the end of the document
}

// SetSize sets the size of the whole editing area, including the info bar.
func (e *Editor) SetSize(size lined.Size) {
	e.size = size
}

func (e *Editor) GetOffset() lined.Size {
	return e.offset
}

func (e *Editor) textRows() int {
	rows := e.size.Rows
	if e.options.InfoBar {
		rows--
	}
	return max(rows, 0)
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (e *Editor) Scroll() {
	if e.cursor.Row < e.offset.Rows {
		// scroll up
		e.offset.Rows = e.cursor.Row
	}
	if rows := e.textRows(); rows > 0 && e.cursor.Row-e.offset.Rows >= rows {
		// scroll down
		e.offset.Rows = e.cursor.Row - rows + 1
	}
	if e.cursor.Col < e.offset.Cols {
		// scroll left
		e.offset.Cols = e.cursor.Col
	}
	if cols := e.size.Cols; cols > 0 {
		// scroll right until the cells before the cursor fit on screen
		row := e.document.Row(e.cursor.Row)
		if row == nil {
			return
		}
		e.offset.Cols = max(e.offset.Cols, e.cursor.Col-cols+1)
		for e.offset.Cols < e.cursor.Col && cells(row.Render(e.offset.Cols, e.cursor.Col)) >= cols {
			e.offset.Cols++
		}
	}
}

// Lines returns the visible part of the document, one entry per text row
// of the editing area.
func (e *Editor) Lines() []Line {
	rows := e.textRows()
	lines := make([]Line, rows)
	for i := 0; i < rows; i++ {
		row := e.document.Row(i + e.offset.Rows)
		if row == nil {
			lines[i] = Line{Text: e.options.Filler, Filler: true}
			continue
		}
		lines[i] = Line{Text: row.Render(e.offset.Cols, e.offset.Cols+e.size.Cols)}
	}
	return lines
}

// cellWidth is the number of screen cells used to draw c.
func cellWidth(c rune) int {
	if w := runewidth.RuneWidth(c); w > 1 {
		return w
	}
	return 1
}

// cells is the number of screen cells used to draw s.
func cells(s string) int {
	n := 0
	for _, c := range s {
		n += cellWidth(c)
	}
	return n
}

// CursorCell returns the screen cell of the cursor.
func (e *Editor) CursorCell() lined.Point {
	var cell lined.Point
	cell.Row = e.cursor.Row - e.offset.Rows
	if row := e.document.Row(e.cursor.Row); row != nil {
		cell.Col = cells(row.Render(e.offset.Cols, e.cursor.Col))
	}
	return cell
}

// Render draws the editing area and places the cursor.
func (e *Editor) Render(display lined.Display, size lined.Size) {
	e.SetSize(size)
	e.Scroll()
	for i, line := range e.Lines() {
		col := 0
		for _, c := range line.Text {
			w := cellWidth(c)
			if col+w > size.Cols {
				break
			}
			if c == '\t' {
				c = ' '
			}
			display.SetCell(col, i, c, lined.ColorWhite, lined.ColorBlack)
			col += w
		}
	}
	if e.options.InfoBar && size.Rows > 0 {
		col := 0
		for _, c := range e.infoBarText(size.Cols) {
			display.SetCell(col, size.Rows-1, c, lined.ColorBlack, lined.ColorWhite)
			col += cellWidth(c)
		}
	}
	cell := e.CursorCell()
	display.SetCursor(cell.Col, cell.Row)
}

// Compute the text to display on the info bar.
func (e *Editor) infoBarText(length int) string {
	length = max(length, 0)
	finalText := fmt.Sprintf(" %d/%d ", e.cursor.Row+1, e.document.LineCount())
	name := e.fileName
	if name == "" {
		name = "[no name]"
	}
	width := max(length-runewidth.StringWidth(finalText), 0)
	text := runewidth.FillRight(runewidth.Truncate(" "+name+" ", width, ""), width)
	return runewidth.Truncate(text+finalText, length, "")
}
