package cssbuild

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fadeIn() Keyframes {
	return NewKeyframes("fadeIn",
		From(MustDeclaration("opacity", 0)),
		To(MustDeclaration("opacity", 1)),
	)
}

func TestKeyframesString(t *testing.T) {
	k := fadeIn()
	assert.Equal(t, "fadeIn", k.Name())
	assert.Equal(t, "@keyframes fadeIn {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}", k.String())
}

func TestKeyframeStep(t *testing.T) {
	step := Frame("50%",
		MustDeclaration("opacity", 0.5),
		MustDeclaration("transform", Scale(1.1)),
	)
	assert.Equal(t, "50%", step.Label())
	assert.Equal(t, "50% { opacity: 0.5; transform: scale(1.1); }", step.String())
	assert.Equal(t, "to {  }", To().String())
}

func TestStyle(t *testing.T) {
	r1 := NewRule("body", MustDeclaration("margin", Zero))
	r2 := NewRule(btn, MustDeclaration("animation", "fadeIn 1s"))
	k1 := fadeIn()
	k2 := NewKeyframes("pulse", Frame("50%", MustDeclaration("opacity", 0.5)))

	tests := []struct {
		name  string
		sheet Stylesheet
		want  string
	}{
		{
			name:  "rules only",
			sheet: Style(r1, r2),
			want:  r1.String() + "\n\n" + r2.String(),
		},
		{
			name:  "one keyframes one rule",
			sheet: Style(k1, r1),
			want:  k1.String() + "\n\n" + r1.String(),
		},
		{
			name:  "keyframes hoisted before rules",
			sheet: Style(r1, k1, r2, k2),
			want:  k1.String() + "\n\n" + k2.String() + "\n\n" + r1.String() + "\n\n" + r2.String(),
		},
		{
			name:  "rules constructor",
			sheet: Rules(r2, r1),
			want:  r2.String() + "\n\n" + r1.String(),
		},
		{
			name:  "empty",
			sheet: Style(),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sheet.String())
		})
	}
}

func TestStylesheetAccessors(t *testing.T) {
	sheet := Style(NewRule("a"), fadeIn(), NewRule("b"))
	require.Len(t, sheet.Rules(), 2)
	require.Len(t, sheet.Keyframes(), 1)
	assert.Equal(t, "a", sheet.Rules()[0].Selector())
	assert.Equal(t, "fadeIn", sheet.Keyframes()[0].Name())
}

func TestStylesheetWriteTo(t *testing.T) {
	sheet := Rules(NewRule("body", MustDeclaration("margin", Zero)))

	var buf bytes.Buffer
	n, err := sheet.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, sheet.String(), buf.String())
}

func TestStyleAcceptsPointers(t *testing.T) {
	r := NewRule("a", MustDeclaration("color", "red"))
	k := fadeIn()
	var nilRule *Rule
	var nilKeyframes *Keyframes

	sheet := Style(&r, &k, nilRule, nilKeyframes)

	require.Len(t, sheet.Rules(), 1)
	require.Len(t, sheet.Keyframes(), 1)
	assert.Equal(t, k.String()+"\n\n"+r.String(), sheet.String())
}

func TestStyleMixesValuesAndPointers(t *testing.T) {
	r1 := NewRule("a", MustDeclaration("color", "red"))
	r2 := NewRule("b", MustDeclaration("color", "blue"))

	sheet := Style(r1, &r2)
	assert.Equal(t, r1.String()+"\n\n"+r2.String(), sheet.String())
}
