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

package ltl

// CompatMemTypes reports bit-level compatibility between a and b:
// structural equality by shape, with pointers mutually compatible
// regardless of pointee (spec.md §4.5). Aliases are not expanded here
// — callers are expected to have already resolved through AsMemType.
func CompatMemTypes(a, b MemType) bool {
	switch x := a.(type) {
	case IntType:
		y, ok := b.(IntType)
		return ok && x.Width == y.Width
	case FloatType:
		_, ok := b.(FloatType)
		return ok
	case DoubleType:
		_, ok := b.(DoubleType)
		return ok
	case MetadataType:
		_, ok := b.(MetadataType)
		return ok
	case PtrType:
		_, ok := b.(PtrType)
		return ok
	case ArrayType:
		y, ok := b.(ArrayType)
		return ok && x.N == y.N && CompatMemTypes(x.Elem, y.Elem)
	case VecType:
		y, ok := b.(VecType)
		return ok && x.N == y.N && CompatMemTypes(x.Elem, y.Elem)
	case StructType:
		y, ok := b.(StructType)
		if !ok || x.Info.Packed != y.Info.Packed || len(x.Info.Fields) != len(y.Info.Fields) {
			return false
		}
		for i := range x.Info.Fields {
			if !CompatMemTypes(x.Info.Fields[i], y.Info.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CompatRetTypes equates void-to-void and otherwise defers to
// CompatMemTypes.
func CompatRetTypes(a, b RetType) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return CompatMemTypes(a, b)
}
