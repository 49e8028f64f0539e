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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// A Document is the ordered list of rows being edited.
// Row indices are the row numbers used by the cursor.
// Operations that take coordinates clamp or ignore bad input;
// a Document always holds at least one row.
type Document struct {
	rows []*Row
}

// NewDocument creates a document with one row per line.
func NewDocument(lines []string) *Document {
	d := &Document{}
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.rows = append(d.rows, NewRow(line))
	}
	if len(d.rows) == 0 {
		d.rows = append(d.rows, NewRow(""))
	}
	return d
}

// LoadBytes splits file contents into rows. A final newline does not start
// a new row and a carriage return before a newline is dropped.
func LoadBytes(b []byte) *Document {
	s := string(b)
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return NewDocument(nil)
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return NewDocument(lines)
}

// ReadDocument reads the file at path, creating it if it doesn't exist.
func ReadDocument(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// try to create a file that doesn't exist
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		f.Close()
		return NewDocument(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadBytes(b), nil
}

// Row returns the row at index i or nil if there is none.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) LineCount() int {
	return len(d.rows)
}

// RowLen returns the length of row i, or 0 if there is no such row.
func (d *Document) RowLen(i int) int {
	if r := d.Row(i); r != nil {
		return r.Length()
	}
	return 0
}

// InsertIntoRow inserts c before col in row. Invalid coordinates are ignored.
func (d *Document) InsertIntoRow(row, col int, c rune) {
	r := d.Row(row)
	if r == nil || col < 0 || col > r.Length() {
		return
	}
	r.InsertChar(col, c)
}

// RemoveFromRow deletes the character at col in row. If col is at or past
// the end of the row, the last character is deleted instead.
func (d *Document) RemoveFromRow(row, col int) {
	r := d.Row(row)
	if r == nil || r.Length() == 0 || col < 0 {
		return
	}
	if col >= r.Length() {
		col = r.Length() - 1
	}
	r.RemoveChar(col)
}

// RemoveAndAppendToPreviousRow joins row onto the end of row-1.
func (d *Document) RemoveAndAppendToPreviousRow(row int) {
	if row <= 0 || row >= len(d.rows) {
		return
	}
	d.rows[row-1].Concatenate(d.rows[row])
	d.rows = append(d.rows[:row], d.rows[row+1:]...)
}

// RemoveRow deletes a row. The only remaining row is never removed.
func (d *Document) RemoveRow(row int) {
	if row < 0 || row >= len(d.rows) || len(d.rows) == 1 {
		return
	}
	d.rows = append(d.rows[:row], d.rows[row+1:]...)
}

// AddRow inserts an empty row at index row, which is clamped to the last row.
func (d *Document) AddRow(row int) {
	row = max(0, min(row, len(d.rows)-1))
	d.rows = append(d.rows, nil)
	copy(d.rows[row+1:], d.rows[row:])
	d.rows[row] = NewRow("")
}

// SplitRow moves the text after col into a new row below row.
func (d *Document) SplitRow(row, col int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	after := r.Split(col)
	d.rows = append(d.rows, nil)
	copy(d.rows[row+2:], d.rows[row+1:])
	d.rows[row+1] = after
}

func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return lines
}

func (d *Document) Bytes() []byte {
	return []byte(strings.Join(d.Lines(), "\n") + "\n")
}
