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

import "fmt"

// A Row is a single line of text. Positions in a row are rune indices.
type Row struct {
	text []rune
}

// NewRow keeps text exactly as given; the caller strips line terminators.
func NewRow(text string) *Row {
	return &Row{text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.text)
}

// Length returns the number of characters in the row.
func (r *Row) Length() int {
	return len(r.text)
}

// Render returns the characters in [begin,end), clamped to the row.
func (r *Row) Render(begin, end int) string {
	if end > len(r.text) {
		end = len(r.text)
	}
	if begin > end {
		begin = end
	}
	if begin < 0 || end < 0 {
		return ""
	}
	return string(r.text[begin:end])
}

// InsertChar inserts c before col. col must be in [0, Length()].
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 || col > len(r.text) {
		panic(fmt.Sprintf("row: insert at column %d of row with length %d", col, len(r.text)))
	}
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.text = line
}

// RemoveChar deletes the character at col. col must be in [0, Length()).
func (r *Row) RemoveChar(col int) {
	if col < 0 || col >= len(r.text) {
		panic(fmt.Sprintf("row: remove at column %d of row with length %d", col, len(r.text)))
	}
	r.text = append(r.text[:col], r.text[col+1:]...)
}

// Concatenate appends the text of other to r and leaves other empty.
func (r *Row) Concatenate(other *Row) {
	r.text = append(r.text, other.text...)
	other.text = nil
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < 0 {
		col = 0
	}
	if col >= len(r.text) {
		return NewRow("")
	}
	after := string(r.text[col:])
	r.text = r.text[:col]
	return NewRow(after)
}
