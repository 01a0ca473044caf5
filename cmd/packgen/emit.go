// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// emit renders the grid as Go source and formats it with goimports, which
// also settles the import block.
func emit(filename, pkgName string, g grid) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by packgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import \"math\"\n\n")

	fmt.Fprintf(&buf, "// Vector aliases, one per lane type.\n")
	fmt.Fprintf(&buf, "type (\n")
	for _, s := range g.Scalars {
		fmt.Fprintf(&buf, "\t%s = Vec[%s]\n", s.Alias(), s.Go)
	}
	fmt.Fprintf(&buf, ")\n")

	for _, p := range g.Promotions {
		fmt.Fprintf(&buf, "\n// Promote%sTo%s widens every lane of v from %s to %s.\n", p.From.Short, p.To.Short, p.From.Go, p.To.Go)
		fmt.Fprintf(&buf, "// lo holds lanes [0, W/2) of v and hi holds lanes [W/2, W).\n")
		fmt.Fprintf(&buf, "func Promote%sTo%s(v %s) (lo, hi %s) {\n", p.From.Short, p.To.Short, p.From.Alias(), p.To.Alias())
		fmt.Fprintf(&buf, "\treturn promote[%s](v)\n}\n", p.To.Go)
	}

	for _, p := range g.Demotions {
		fmt.Fprintf(&buf, "\n// DemoteTwo%sTo%s narrows the lanes of a followed by the lanes of b\n", p.From.Short, p.To.Short)
		fmt.Fprintf(&buf, "// from %s to %s, saturating to [%s, %s].\n", p.From.Go, p.To.Go, p.To.Min(), p.To.Max())
		fmt.Fprintf(&buf, "func DemoteTwo%sTo%s(a, b %s) %s {\n", p.From.Short, p.To.Short, p.From.Alias(), p.To.Alias())
		fmt.Fprintf(&buf, "\treturn demoteTwo[%s](a, b, %s, %s)\n}\n", p.To.Go, p.To.Min(), p.To.Max())
	}

	for _, p := range g.Casts {
		fn := "TransmuteUnchecked"
		if p.Checked() {
			fn = "Transmute"
		}
		fmt.Fprintf(&buf, "\n// As%sFrom%s reinterprets the bits of v as %s lanes.\n", p.To.Short, p.From.Short, p.To.Go)
		fmt.Fprintf(&buf, "func As%sFrom%s(v %s) %s {\n", p.To.Short, p.From.Short, p.From.Alias(), p.To.Alias())
		fmt.Fprintf(&buf, "\treturn %s[%s](v)\n}\n", fn, p.To.Go)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
