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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{"empty", "", []string{""}},
		{"newline only", "\n", []string{""}},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"blank last line", "one\n\n", []string{"one", ""}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"spaces kept", "  one \n\ttwo", []string{"  one ", "\ttwo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := LoadBytes([]byte(tt.input))
			assert.Equal(t, tt.lines, d.Lines())
		})
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte("roses\nviolets\n"), 0644))

	d, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"roses", "violets"}, d.Lines())
}

func TestReadDocumentCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	d, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, 1, d.LineCount())
	assert.Equal(t, 0, d.RowLen(0))
	assert.FileExists(t, path)
}

func TestReadDocumentFails(t *testing.T) {
	_, err := ReadDocument(t.TempDir())
	assert.Error(t, err)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing", "file.txt"))
	assert.Error(t, err)
}

func TestDocumentGeometry(t *testing.T) {
	d := NewDocument([]string{"hello", "", "world!"})
	assert.Equal(t, 3, d.LineCount())
	assert.Equal(t, 5, d.RowLen(0))
	assert.Equal(t, 0, d.RowLen(1))
	assert.Equal(t, 6, d.RowLen(2))
	assert.Equal(t, 0, d.RowLen(3))
	assert.Equal(t, 0, d.RowLen(-1))
	assert.NotNil(t, d.Row(2))
	assert.Nil(t, d.Row(3))
	assert.Nil(t, d.Row(-1))
}

func TestInsertIntoRow(t *testing.T) {
	d := NewDocument([]string{"ac"})
	d.InsertIntoRow(0, 1, 'b')
	d.InsertIntoRow(0, 3, 'd')
	assert.Equal(t, []string{"abcd"}, d.Lines())

	// out of range coordinates are ignored
	d.InsertIntoRow(0, 5, 'x')
	d.InsertIntoRow(0, -1, 'x')
	d.InsertIntoRow(1, 0, 'x')
	d.InsertIntoRow(-1, 0, 'x')
	assert.Equal(t, []string{"abcd"}, d.Lines())
}

func TestRemoveFromRow(t *testing.T) {
	d := NewDocument([]string{"abcd", ""})
	d.RemoveFromRow(0, 1)
	assert.Equal(t, "acd", d.Row(0).String())

	// past the end removes the last character
	d.RemoveFromRow(0, 3)
	assert.Equal(t, "ac", d.Row(0).String())
	d.RemoveFromRow(0, 99)
	assert.Equal(t, "a", d.Row(0).String())

	d.RemoveFromRow(1, 0)
	d.RemoveFromRow(2, 0)
	d.RemoveFromRow(0, -1)
	assert.Equal(t, []string{"a", ""}, d.Lines())
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	for _, text := range []string{"", "x", "hello", "héllo wörld"} {
		n := len([]rune(text))
		for col := 0; col <= n; col++ {
			for _, c := range "a Ω世" {
				d := NewDocument([]string{"before", text, "after"})
				d.InsertIntoRow(1, col, c)
				d.RemoveFromRow(1, col)
				assert.Equal(t, []string{"before", text, "after"}, d.Lines(), "col %d char %q", col, c)
			}
		}
	}
}

func TestRemoveAndAppendToPreviousRow(t *testing.T) {
	d := NewDocument([]string{"hello", "world", "!"})
	d.RemoveAndAppendToPreviousRow(1)
	assert.Equal(t, []string{"helloworld", "!"}, d.Lines())

	d.RemoveAndAppendToPreviousRow(0)
	d.RemoveAndAppendToPreviousRow(2)
	assert.Equal(t, []string{"helloworld", "!"}, d.Lines())

	d.RemoveAndAppendToPreviousRow(1)
	assert.Equal(t, []string{"helloworld!"}, d.Lines())
}

func TestRemoveRow(t *testing.T) {
	d := NewDocument([]string{"a", "", "c"})
	d.RemoveRow(1)
	assert.Equal(t, []string{"a", "c"}, d.Lines())
	d.RemoveRow(5)
	d.RemoveRow(-1)
	assert.Equal(t, []string{"a", "c"}, d.Lines())
	d.RemoveRow(0)
	d.RemoveRow(0)
	assert.Equal(t, []string{"c"}, d.Lines())
	assert.Equal(t, 1, d.LineCount())
}

func TestAddRow(t *testing.T) {
	d := NewDocument([]string{"one", "two", "three"})
	d.AddRow(1)
	assert.Equal(t, []string{"one", "", "two", "three"}, d.Lines())

	// indices past the end insert before the last row
	d.AddRow(10)
	assert.Equal(t, []string{"one", "", "two", "", "three"}, d.Lines())

	d.AddRow(0)
	assert.Equal(t, []string{"", "one", "", "two", "", "three"}, d.Lines())
}

func TestAddRowKeepsText(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}
	for row := 0; row < len(lines); row++ {
		d := NewDocument(lines)
		d.AddRow(row)
		assert.Equal(t, len(lines)+1, d.LineCount())
		var texts []string
		for _, line := range d.Lines() {
			if line != "" {
				texts = append(texts, line)
			}
		}
		assert.Equal(t, lines, texts)
	}
}

func TestSplitRow(t *testing.T) {
	d := NewDocument([]string{"helloworld", "next"})
	d.SplitRow(0, 5)
	assert.Equal(t, []string{"hello", "world", "next"}, d.Lines())
	d.SplitRow(2, 4)
	assert.Equal(t, []string{"hello", "world", "next", ""}, d.Lines())
	d.SplitRow(9, 0)
	assert.Equal(t, 4, d.LineCount())
}

func TestDocumentBytes(t *testing.T) {
	d := NewDocument([]string{"one", "two"})
	assert.Equal(t, "one\ntwo\n", string(d.Bytes()))
}
