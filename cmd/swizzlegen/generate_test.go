package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsCount(t *testing.T) {
	tests := []struct {
		components int
		skip       []string
		want       int
	}{
		{2, nil, 4 + 8},
		{3, []string{"xy"}, 9 + 27 - 1},
		{4, []string{"xy", "xyz"}, 16 + 64 + 256 - 2},
	}
	for _, tt := range tests {
		got := Methods(Config{Type: "V", Components: tt.components, Skip: tt.skip})
		assert.Len(t, got, tt.want, "components=%d", tt.components)
	}
}

func TestMethodsFields(t *testing.T) {
	methods := Methods(Config{Type: "Vec4", Components: 4, VecImport: "github.com/ajroetker/go-ml/vec"})
	byName := map[string]Method{}
	for _, m := range methods {
		byName[m.Name] = m
	}

	zyx, ok := byName["ZYX"]
	require.True(t, ok)
	assert.Equal(t, "vec.Vec3", zyx.Result)
	assert.Equal(t, []Field{{"X", "Z"}, {"Y", "Y"}, {"Z", "X"}}, zyx.Fields)

	wzyx, ok := byName["WZYX"]
	require.True(t, ok)
	assert.Equal(t, "Vec4", wzyx.Result)
	assert.Equal(t, Field{"W", "X"}, wzyx.Fields[3])
}

func TestGenerate(t *testing.T) {
	src, err := Generate(Config{Package: "vec", Type: "Vec2", Components: 2})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by swizzlegen. DO NOT EDIT."))
	assert.Contains(t, out, "func (v Vec2) YX() Vec2 {\n\treturn Vec2{X: v.Y, Y: v.X}\n}")
	assert.Contains(t, out, "func (v Vec2) YYX() Vec3 {")
	assert.NotContains(t, out, "import")
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(Config{Package: "vec", Components: 2})
	assert.Error(t, err)
	_, err = Generate(Config{Package: "vec", Type: "Vec5", Components: 5})
	assert.Error(t, err)
	_, err = Generate(Config{Type: "Vec2", Components: 2})
	assert.Error(t, err)
}

// The Vec4 packages are generated with
// -type Vec4 -components 4 -vec github.com/ajroetker/go-ml/vec -skip xy,xyz.
func TestVec4FilesUpToDate(t *testing.T) {
	cfg := Config{
		Type:       "Vec4",
		Components: 4,
		VecImport:  "github.com/ajroetker/go-ml/vec",
		Skip:       []string{"xy", "xyz"},
	}
	var want []string
	for _, m := range Methods(cfg) {
		want = append(want, m.Name)
	}
	slices.Sort(want)

	for _, pkg := range []string{"scalar", "simd"} {
		t.Run(pkg, func(t *testing.T) {
			path := filepath.Join("..", "..", pkg, "swizzle_gen.go")
			f, err := parser.ParseFile(token.NewFileSet(), path, nil, 0)
			require.NoError(t, err)
			assert.Equal(t, pkg, f.Name.Name)

			var got []string
			for _, decl := range f.Decls {
				if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv != nil {
					got = append(got, fn.Name.Name)
				}
			}
			slices.Sort(got)
			assert.Equal(t, want, got)
		})
	}
}
