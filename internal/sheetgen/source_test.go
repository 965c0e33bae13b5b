package sheetgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/yacobolo/cssbuild"
)

func TestLoadSource(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.css.yaml", themeSource)

	src, err := LoadSource(path)
	require.NoError(t, err)

	assert.Equal(t, path, src.Path)
	require.Len(t, src.Variables, 2)
	assert.Equal(t, "primary_color", src.Variables[0].Name)
	assert.Equal(t, []string{"hidden"}, src.Classes)
	require.Len(t, src.Keyframes, 1)
	require.Len(t, src.Keyframes[0].Steps, 2)
	require.Len(t, src.Rules, 2)
	assert.Equal(t, "card", src.Rules[1].Class)
	assert.Equal(t, []string{"hover"}, src.Rules[1].Pseudo)
}

func TestLoadSourceMissingFile(t *testing.T) {
	_, err := LoadSource("does/not/exist.css.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does/not/exist.css.yaml")
}

func TestBuild(t *testing.T) {
	path := writeFile(t, t.TempDir(), "theme.css.yaml", themeSource)
	src, err := LoadSource(path)
	require.NoError(t, err)

	sheet, err := Build(src)
	require.NoError(t, err)

	assert.Equal(t, themeCSS, sheet.Style.String())
	assert.Equal(t, []cssbuild.Class{"hidden", "card"}, sheet.Classes)
	assert.Equal(t, []cssbuild.Var{"primary_color", "gap"}, sheet.Variables)
	assert.Equal(t, []string{"fadeIn"}, sheet.Animations)
	assert.Len(t, sheet.Declarations, 8)
}

func TestBuildSelectors(t *testing.T) {
	tests := []struct {
		name string
		rule RuleSpec
		want string
	}{
		{name: "raw selector", rule: RuleSpec{Selector: "nav > a"}, want: "nav > a"},
		{name: "class gets one dot", rule: RuleSpec{Class: ".btn"}, want: ".btn"},
		{name: "pseudo chain", rule: RuleSpec{Class: "btn", Pseudo: []string{"hover", "::before"}}, want: ".btn:hover::before"},
		{name: "pseudo on raw selector", rule: RuleSpec{Selector: "input", Pseudo: []string{"focus"}}, want: "input:focus"},
		{name: "nth child", rule: RuleSpec{Selector: "li", Pseudo: []string{"nth-child(2n+1)"}}, want: "li:nth-child(2n+1)"},
		{name: "not", rule: RuleSpec{Class: "btn", Pseudo: []string{"not(.disabled)"}}, want: ".btn:not(.disabled)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildSelector(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestBuildSelectorErrors(t *testing.T) {
	tests := []struct {
		name    string
		rule    RuleSpec
		wantErr string
	}{
		{name: "missing", rule: RuleSpec{}, wantErr: "missing selector or class"},
		{name: "both", rule: RuleSpec{Selector: "a", Class: "b"}, wantErr: "mutually exclusive"},
		{name: "unknown pseudo", rule: RuleSpec{Selector: "a", Pseudo: []string{"hovered"}}, wantErr: `unknown pseudo "hovered"`},
		{name: "unknown pseudo function", rule: RuleSpec{Selector: "a", Pseudo: []string{"has(b)"}}, wantErr: `unknown pseudo "has(b)"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildSelector(tt.rule)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDeclaration(t *testing.T) {
	tests := []struct {
		name string
		item any
		want string
	}{
		{name: "map with string", item: map[string]any{"color": "red"}, want: "color: red;"},
		{name: "map with int", item: map[string]any{"z-index": 10}, want: "z-index: 10;"},
		{name: "map with float", item: map[string]any{"opacity": 0.5}, want: "opacity: 0.5;"},
		{name: "string", item: "margin: 0 auto", want: "margin: 0 auto;"},
		{name: "string with semicolon", item: "margin: 0 auto;", want: "margin: 0 auto;"},
		{name: "value containing colon", item: "background: url(https://example.com/a.png)", want: "background: url(https://example.com/a.png);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseDeclaration(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestParseDeclarationErrors(t *testing.T) {
	_, err := parseDeclaration(map[string]any{"": "red"})
	var invalid *cssbuild.InvalidPropertyError
	require.True(t, errors.As(err, &invalid))

	_, err = parseDeclaration(": red")
	require.True(t, errors.As(err, &invalid))

	_, err = parseDeclaration("no colon here")
	assert.ErrorContains(t, err, "expected \"name: value\"")

	_, err = parseDeclaration(map[string]any{"a": 1, "b": 2})
	assert.ErrorContains(t, err, "single property")

	_, err = parseDeclaration(42)
	assert.ErrorContains(t, err, "unsupported declaration")
}

func TestBuildCollectsAllErrors(t *testing.T) {
	src := &SheetSource{
		Variables: []VariableSpec{{Name: " ", Value: "x"}},
		Keyframes: []KeyframesSpec{{Name: ""}},
		Rules: []RuleSpec{
			{Selector: "a", Pseudo: []string{"bogus"}},
			{Selector: "b", Declarations: []any{"no colon", map[string]any{" ": "x"}}},
		},
	}

	sheet, err := Build(src)
	require.Error(t, err)
	assert.Nil(t, sheet)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	assert.Contains(t, err.Error(), "variables[0]: missing name")
	assert.Contains(t, err.Error(), "keyframes[0]: missing name")
	assert.Contains(t, err.Error(), `unknown pseudo "bogus"`)
	assert.Contains(t, err.Error(), "declarations[1]")
}
