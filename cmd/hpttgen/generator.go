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

package main

import (
	"bytes"
	"text/template"

	"golang.org/x/tools/imports"
)

// ElemType describes one instantiation of the generic entry points.
type ElemType struct {
	GoType string // float32
	Suffix string // Float32
	Letter string // s, d, c, z (BLAS naming)
}

var knownTypes = map[string]ElemType{
	"float32":    {GoType: "float32", Suffix: "Float32", Letter: "s"},
	"float64":    {GoType: "float64", Suffix: "Float64", Letter: "d"},
	"complex64":  {GoType: "complex64", Suffix: "Complex64", Letter: "c"},
	"complex128": {GoType: "complex128", Suffix: "Complex128", Letter: "z"},
}

var fileTemplate = template.Must(template.New("typed").Parse(`// Code generated by hpttgen. DO NOT EDIT.

package {{.Package}}
{{range .Types}}
// Transpose{{.Suffix}} is the {{.GoType}} ({{.Letter}}) instantiation of Transpose.
func Transpose{{.Suffix}}(perm []int, alpha {{.GoType}}, a []{{.GoType}}, sizeA []int, opts Options) ([]{{.GoType}}, error) {
	return Transpose(perm, alpha, a, sizeA, opts)
}

// Transpose{{.Suffix}}Into is the {{.GoType}} ({{.Letter}}) instantiation of TransposeInto.
func Transpose{{.Suffix}}Into(perm []int, alpha {{.GoType}}, a []{{.GoType}}, sizeA []int, beta {{.GoType}}, b []{{.GoType}}, opts Options) ([]{{.GoType}}, error) {
	return TransposeInto(perm, alpha, a, sizeA, beta, b, opts)
}

// NewPlan{{.Suffix}} is the {{.GoType}} ({{.Letter}}) instantiation of NewPlan.
func NewPlan{{.Suffix}}(perm []int, sizeA []int, opts Options) (*Plan[{{.GoType}}], error) {
	return NewPlan[{{.GoType}}](perm, sizeA, opts)
}
{{end}}`))

// Generate renders the typed entry points for types into a formatted Go
// source file of package pkg.
func Generate(pkg string, types []ElemType) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package string
		Types   []ElemType
	}{pkg, types})
	if err != nil {
		return nil, err
	}
	return imports.Process("zz_transpose_typed.go", buf.Bytes(), nil)
}
