package sheetgen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssbuild"
)

func TestToGoName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "btn", want: "Btn"},
		{name: "btn--primary", want: "BtnPrimary"},
		{name: "card__header", want: "CardHeader"},
		{name: ".nav-item", want: "NavItem"},
		{name: "primary_color", want: "PrimaryColor"},
		{name: "fadeIn", want: "FadeIn"},
		{name: "2col", want: "X2col"},
		{name: "w-1/2", want: "W12"},
		{name: "---", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toGoName(tt.name))
		})
	}
}

func TestUniqueGoName(t *testing.T) {
	used := make(map[string]int)
	assert.Equal(t, "Btn", uniqueGoName(used, "Btn"))
	assert.Equal(t, "Btn2", uniqueGoName(used, "Btn"))
	assert.Equal(t, "Btn3", uniqueGoName(used, "Btn"))
}

// parseConstants returns name -> literal value of every const in src.
func parseConstants(t *testing.T, src []byte) (string, map[string]string) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "styles_gen.go", src, 0)
	require.NoError(t, err)

	constants := make(map[string]string)
	ast.Inspect(file, func(n ast.Node) bool {
		decl, ok := n.(*ast.GenDecl)
		if !ok || decl.Tok != token.CONST {
			return true
		}
		for _, spec := range decl.Specs {
			vspec := spec.(*ast.ValueSpec)
			if lit, ok := vspec.Values[0].(*ast.BasicLit); ok {
				constants[vspec.Names[0].Name] = strings.Trim(lit.Value, `"`)
			}
		}
		return true
	})
	return file.Name.Name, constants
}

func TestRenderGoFile(t *testing.T) {
	src, err := renderGoFile("ui", goIdentifiers{
		Classes:    []cssbuild.Class{"btn", "btn--primary", "btn", "_internal", "btn-primary"},
		Variables:  []cssbuild.Var{"primary_color"},
		Animations: []string{"fadeIn"},
	})
	require.NoError(t, err)

	pkg, constants := parseConstants(t, src)
	assert.Equal(t, "ui", pkg)
	assert.Equal(t, map[string]string{
		"Btn":             "btn",
		"BtnPrimary":      "btn--primary",
		"BtnPrimary2":     "btn-primary",
		"VarPrimaryColor": "primary_color",
		"AnimFadeIn":      "fadeIn",
	}, constants)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by cssbuild. DO NOT EDIT."))
	assert.Contains(t, text, `import "github.com/yacobolo/cssbuild"`)
	assert.Contains(t, text, "var AllClasses = []cssbuild.Class{")
	assert.NotContains(t, text, "_internal")
}

func TestRenderGoFileAnimationsOnly(t *testing.T) {
	src, err := renderGoFile("theme", goIdentifiers{Animations: []string{"spin"}})
	require.NoError(t, err)

	assert.NotContains(t, string(src), "import")
	_, constants := parseConstants(t, src)
	assert.Equal(t, map[string]string{"AnimSpin": "spin"}, constants)
}
