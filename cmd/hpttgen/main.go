// Copyright 2025 go-hptt Authors
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

// Command hpttgen generates the non-generic, per-element-type entry points of
// package hptt (TransposeFloat32, TransposeComplex128Into, ...).
//
// Usage, via go:generate from the hptt package directory:
//
//	//go:generate go run ../cmd/hpttgen -output zz_transpose_typed.go
//
// The generated source is formatted and its imports are resolved with
// golang.org/x/tools/imports.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "zz_transpose_typed.go", "Output Go file")
	packageOut = flag.String("pkg", "hptt", "Output package name")
	typesFlag  = flag.String("types", "float32,float64,complex64,complex128", "Comma-separated element types")
)

func main() {
	flag.Parse()

	types, err := parseTypes(*typesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := Generate(*packageOut, types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseTypes splits and checks the -types flag.
func parseTypes(s string) ([]ElemType, error) {
	var types []ElemType
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t, ok := knownTypes[name]
		if !ok {
			return nil, fmt.Errorf("unsupported element type %q", name)
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no element types given")
	}
	return types, nil
}
