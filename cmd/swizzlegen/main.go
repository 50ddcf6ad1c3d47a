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

// Command swizzlegen writes swizzle accessors for the vector types.
//
// A swizzle reads an arbitrary selection of components into a new vector,
// e.g. v.ZYX() or v.WW(). For a source type with n components the tool
// emits every 2-, 3- and (for n == 4) 4-component combination.
//
// Usage via go:generate:
//
//	//go:generate go run ../cmd/swizzlegen -type Vec4 -components 4 -vec github.com/ajroetker/go-ml/vec -skip xy,xyz -output swizzle_gen.go
package main

import (
	"flag"
	"log"
	"os"
	"strings"
)

var (
	typeName   = flag.String("type", "", "Receiver type name (required)")
	components = flag.Int("components", 0, "Number of components of the receiver: 2, 3 or 4 (required)")
	pkgName    = flag.String("pkg", "", "Package name (default: $GOPACKAGE)")
	vecImport  = flag.String("vec", "", "Import path of the package holding Vec2/Vec3; empty when generating into that package")
	skip       = flag.String("skip", "", "Comma-separated swizzles that are written by hand")
	output     = flag.String("output", "swizzle_gen.go", "Output file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("swizzlegen: ")
	flag.Parse()

	pkg := *pkgName
	if pkg == "" {
		pkg = os.Getenv("GOPACKAGE")
	}

	cfg := Config{
		Package:    pkg,
		Type:       *typeName,
		Components: *components,
		VecImport:  *vecImport,
		Skip:       splitList(*skip),
	}

	src, err := Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *output, err)
	}
	log.Printf("wrote %s", *output)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
