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

import (
	"fmt"
	"io"

	"github.com/llvm-symex/typecore/diag"
)

// FormatErrors writes a mkContext error report in human-readable text
// form, one diagnostic per line, in the deterministic order
// diag.Report.Errors already sorts to (spec.md §4.4 step 3,
// "formattedErrors(state)").
func FormatErrors(w io.Writer, report *diag.Report) {
	for _, e := range report.Errors() {
		fmt.Fprintf(w, "%s\n", e.Format())
	}
}
