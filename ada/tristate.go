// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ada

// TriState is a three-valued logic value, used both for the Bool sort's
// abstract values and for integrality tracking on RAV.
type TriState int

const (
	// Unknown means neither True nor False can be established.
	Unknown TriState = iota
	// True means the value is known to be true.
	True
	// False means the value is known to be false.
	False
)

// String renders the tri-state value.
func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// TriFromBool lifts a concrete bool into TriState.
func TriFromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// And implements tri-state conjunction: short-circuits on False,
// passes through on True, else Unknown.
func (t TriState) And(o TriState) TriState {
	if t == False || o == False {
		return False
	}
	if t == True && o == True {
		return True
	}
	return Unknown
}

// Or implements tri-state disjunction, symmetric to And.
func (t TriState) Or(o TriState) TriState {
	if t == True || o == True {
		return True
	}
	if t == False && o == False {
		return False
	}
	return Unknown
}

// Not negates a tri-state value; Unknown stays Unknown.
func (t TriState) Not() TriState {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// joinTri returns x if x == y, else Unknown. Used by RavJoin for
// integrality and by the Bool sort's Join.
func joinTri(x, y TriState) TriState {
	if x == y {
		return x
	}
	return Unknown
}
