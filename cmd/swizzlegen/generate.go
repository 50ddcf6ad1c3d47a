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
	"errors"
	"fmt"
	"path"
	"slices"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Config describes one generated file.
type Config struct {
	Package    string
	Type       string
	Components int
	// VecImport is the import path of the package declaring Vec2 and Vec3.
	// Empty means the generated file lives in that package.
	VecImport string
	// Skip lists lower-case swizzle names that must not be generated.
	Skip []string
}

// Method is a single swizzle accessor.
type Method struct {
	Name   string
	Result string
	Fields []Field
}

// Field assigns a source component to a result component.
type Field struct {
	Dst, Src string
}

var componentNames = []string{"x", "y", "z", "w"}

var upper = cases.Upper(language.Und)

var fileTemplate = template.Must(template.New("swizzle").Parse(`// Code generated by swizzlegen. DO NOT EDIT.

package {{.Package}}
{{if .Import}}
import "{{.Import}}"
{{end}}
{{- range .Methods}}
func (v {{$.Type}}) {{.Name}}() {{.Result}} {
	return {{.Result}}{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Dst}}: v.{{$f.Src}}{{end -}} }
}
{{end}}`))

// Generate renders the swizzle file for cfg and runs it through goimports.
func Generate(cfg Config) ([]byte, error) {
	if cfg.Type == "" {
		return nil, errors.New("-type is required")
	}
	if cfg.Package == "" {
		return nil, errors.New("package name unknown: set -pkg or run via go generate")
	}
	if cfg.Components < 2 || cfg.Components > 4 {
		return nil, fmt.Errorf("components must be 2, 3 or 4, got %d", cfg.Components)
	}

	methods := Methods(cfg)

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Config
		Import  string
		Methods []Method
	}{cfg, cfg.VecImport, methods})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := imports.Process(cfg.Package+"_swizzle_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

// Methods lists the swizzles of cfg in lexicographic component order.
func Methods(cfg Config) []Method {
	names := componentNames[:cfg.Components]
	// 4-component results only exist for Vec4 receivers.
	maxLen := 3
	if cfg.Components == 4 {
		maxLen = 4
	}

	var methods []Method
	for n := 2; n <= maxLen; n++ {
		for _, combo := range combinations(names, n) {
			name := ""
			for _, c := range combo {
				name += c
			}
			if slices.Contains(cfg.Skip, name) {
				continue
			}
			m := Method{Name: upper.String(name), Result: resultType(cfg, n)}
			for i, c := range combo {
				m.Fields = append(m.Fields, Field{Dst: upper.String(componentNames[i]), Src: upper.String(c)})
			}
			methods = append(methods, m)
		}
	}
	return methods
}

func resultType(cfg Config, n int) string {
	if n == 4 {
		return cfg.Type
	}
	name := fmt.Sprintf("Vec%d", n)
	if cfg.VecImport != "" {
		return path.Base(cfg.VecImport) + "." + name
	}
	return name
}

// combinations returns names^n in lexicographic order.
func combinations(names []string, n int) [][]string {
	if n == 0 {
		return [][]string{nil}
	}
	var out [][]string
	for _, head := range names {
		for _, tail := range combinations(names, n-1) {
			out = append(out, append([]string{head}, tail...))
		}
	}
	return out
}
