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
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type kind int

const (
	unsigned kind = iota
	signed
	float
)

// scalar describes one lane type of the grid.
type scalar struct {
	Go    string // Go type name, e.g. "int16".
	Short string // Short tag used in function names, e.g. "I16".
	Size  int
	Kind  kind
}

var scalars = []scalar{
	{"uint8", "U8", 1, unsigned},
	{"uint16", "U16", 2, unsigned},
	{"uint32", "U32", 4, unsigned},
	{"uint64", "U64", 8, unsigned},
	{"int8", "I8", 1, signed},
	{"int16", "I16", 2, signed},
	{"int32", "I32", 4, signed},
	{"int64", "I64", 8, signed},
	{"float32", "F32", 4, float},
	{"float64", "F64", 8, float},
}

var titler = cases.Title(language.Und)

// Alias is the exported vector alias name, e.g. "Int16s".
func (s scalar) Alias() string {
	return titler.String(s.Go) + "s"
}

// Min is the Go expression for the smallest value of s.
func (s scalar) Min() string {
	switch s.Kind {
	case unsigned:
		return "0"
	case signed:
		return fmt.Sprintf("math.Min%s", titler.String(s.Go))
	default:
		return "math.Inf(-1)"
	}
}

// Max is the Go expression for the largest value of s.
func (s scalar) Max() string {
	switch s.Kind {
	case unsigned, signed:
		return fmt.Sprintf("math.Max%s", titler.String(s.Go))
	default:
		return "math.Inf(1)"
	}
}

type pair struct {
	From, To scalar
}

// Checked reports whether the reinterpretation can use Transmute, which only
// targets integers.
func (p pair) Checked() bool {
	return p.To.Kind != float
}

type grid struct {
	Scalars    []scalar
	Promotions []pair
	Demotions  []pair
	Casts      []pair
}

func buildGrid() grid {
	var g grid
	g.Scalars = scalars

	// Widening keeps the kind and doubles the size.
	g.Promotions = lo.FilterMap(scalars, func(from scalar, _ int) (pair, bool) {
		to, ok := lo.Find(scalars, func(to scalar) bool {
			return to.Kind == from.Kind && to.Size == 2*from.Size
		})
		return pair{from, to}, ok
	})

	// Narrowing is the reverse of widening, plus signed to unsigned of half
	// the size.
	g.Demotions = lo.Map(g.Promotions, func(p pair, _ int) pair {
		return pair{From: p.To, To: p.From}
	})
	g.Demotions = append(g.Demotions, lo.FilterMap(scalars, func(from scalar, _ int) (pair, bool) {
		if from.Kind != signed {
			return pair{}, false
		}
		to, ok := lo.Find(scalars, func(to scalar) bool {
			return to.Kind == unsigned && 2*to.Size == from.Size
		})
		return pair{from, to}, ok
	})...)

	g.Casts = lo.FlatMap(scalars, func(to scalar, _ int) []pair {
		froms := lo.Filter(scalars, func(from scalar, _ int) bool {
			return from.Size == to.Size && from.Go != to.Go
		})
		return lo.Map(froms, func(from scalar, _ int) pair {
			return pair{from, to}
		})
	})
	return g
}
