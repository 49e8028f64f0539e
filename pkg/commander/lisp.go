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
	"errors"
	"fmt"

	"github.com/steelseries/golisp"

	lined "github.com/timburks/lined/pkg/types"
)

var current *Commander

var errNoEditor = errors.New("no editor is attached")

// intents that are bound directly to zero-argument primitives
var intentPrimitives = []lined.Intent{
	lined.IntentLeft,
	lined.IntentRight,
	lined.IntentUp,
	lined.IntentDown,
	lined.IntentHome,
	lined.IntentEnd,
	lined.IntentPageUp,
	lined.IntentPageDown,
	lined.IntentNewline,
	lined.IntentBackspace,
	lined.IntentDelete,
	lined.IntentQuit,
}

func init() {
	for _, intent := range intentPrimitives {
		golisp.MakePrimitiveFunction(intent.String(), "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if current == nil {
				return nil, errNoEditor
			}
			current.editor.Perform(intent, 0)
			return cursorData(current.editor.GetCursor()), nil
		})
	}
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("goto", "2", GotoImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("row-length", "1", RowLengthImpl)
	golisp.MakePrimitiveFunction("row-text", "1", RowTextImpl)
	golisp.MakePrimitiveFunction("print-buffer", "0", PrintBufferImpl)
}

// cursorData returns the cursor as the list (row col).
func cursorData(p lined.Point) *golisp.Data {
	return golisp.Cons(golisp.IntegerWithValue(int64(p.Row)),
		golisp.Cons(golisp.IntegerWithValue(int64(p.Col)), nil))
}

func intArg(name string, val *golisp.Data) (int, error) {
	if !golisp.IntegerP(val) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(val)), nil
}

// InsertImpl inserts a string or a single character code at the cursor.
func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	e := current.editor
	val := golisp.Car(args)
	switch {
	case golisp.StringP(val):
		for _, c := range golisp.StringValue(val) {
			if c == '\n' {
				e.Perform(lined.IntentNewline, 0)
			} else {
				e.Perform(lined.IntentCharacter, c)
			}
		}
	case golisp.IntegerP(val):
		e.Perform(lined.IntentCharacter, rune(golisp.IntegerValue(val)))
	default:
		return nil, errors.New("insert requires a string or character code")
	}
	return cursorData(e.GetCursor()), nil
}

// GotoImpl moves the cursor to (row col), clamped to the document.
func GotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	row, err := intArg("goto", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	col, err := intArg("goto", golisp.Car(golisp.Cdr(args)))
	if err != nil {
		return nil, err
	}
	current.editor.SetCursor(lined.Point{Row: row, Col: col})
	return cursorData(current.editor.GetCursor()), nil
}

func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return cursorData(current.editor.GetCursor()), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return golisp.IntegerWithValue(int64(current.editor.GetDocument().LineCount())), nil
}

func RowLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	row, err := intArg("row-length", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(current.editor.GetDocument().RowLen(row))), nil
}

// RowTextImpl returns the text of a row, or "" past the end of the document.
func RowTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	row, err := intArg("row-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	var text string
	if r := current.editor.GetDocument().Row(row); r != nil {
		text = r.String()
	}
	return golisp.StringWithValue(text), nil
}

// PrintBufferImpl writes the document to the commander's output.
func PrintBufferImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if current == nil {
		return nil, errNoEditor
	}
	if _, err := current.output.Write(current.editor.GetDocument().Bytes()); err != nil {
		return nil, err
	}
	return nil, nil
}
