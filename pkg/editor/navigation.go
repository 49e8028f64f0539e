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

// Geometry is the read-only view of a document that cursor movement needs.
type Geometry interface {
	LineCount() int
	RowLen(i int) int
}

// Move returns the position reached from p by a navigation intent.
// Intents that are not navigation leave p unchanged.
func Move(p lined.Point, intent lined.Intent, g Geometry) lined.Point {
	x, y := p.Col, p.Row
	last := g.LineCount() - 1
	switch intent {
	case lined.IntentLeft:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = g.RowLen(y)
		}
	case lined.IntentRight:
		if x < g.RowLen(y) {
			x++
		} else if y < last {
			y++
			x = 0
		}
	case lined.IntentUp:
		y = max(y-1, 0)
		x = min(x, g.RowLen(y))
	case lined.IntentDown:
		y = min(y+1, last)
		x = min(x, g.RowLen(y))
	case lined.IntentPageUp:
		x, y = 0, 0
	case lined.IntentPageDown:
		y = last
		x = g.RowLen(y)
	case lined.IntentHome:
		x = 0
	case lined.IntentEnd:
		x = g.RowLen(y)
	}
	return lined.Point{Row: y, Col: x}
}

// Clamp pulls p back inside the document: onto an existing row and no
// further right than one past that row's last character.
func Clamp(p lined.Point, g Geometry) lined.Point {
	p.Row = max(0, min(p.Row, g.LineCount()-1))
	p.Col = max(0, min(p.Col, g.RowLen(p.Row)))
	return p
}
