package sheetgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yacobolo/cssbuild"
	"github.com/yacobolo/cssbuild/prop"
)

func TestCategorizeProperty(t *testing.T) {
	tests := []struct {
		name string
		want PropertyCategory
	}{
		{name: "--primary-color", want: CategoryTokens},
		{name: "color", want: CategoryVisual},
		{name: "border-top-left-radius", want: CategoryVisual},
		{name: "display", want: CategoryLayout},
		{name: "flex-grow", want: CategoryLayout},
		{name: "margin-inline-start", want: CategoryLayout},
		{name: "font-family", want: CategoryTypography},
		{name: "text-indent", want: CategoryTypography},
		{name: "animation-fill-mode", want: CategoryEffects},
		{name: "transform", want: CategoryEffects},
		{name: "-webkit-appearance", want: CategoryInternal},
		{name: "unknown-property", want: CategoryLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizeProperty(tt.name))
		})
	}
}

func TestCollectStats(t *testing.T) {
	stats := collectStats([]cssbuild.Declaration{
		cssbuild.Var("gap").Definition(cssbuild.Px(8)),
		prop.Color(cssbuild.Var("primary").Reference()),
		prop.Width(cssbuild.Minus(cssbuild.Percent(100), cssbuild.Var("gap").Reference())),
		prop.Display(cssbuild.DisplayFlex),
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.VarReferences)
	assert.Equal(t, 1, stats.CalcExpression)
	assert.Equal(t, map[PropertyCategory]int{
		CategoryTokens: 1,
		CategoryVisual: 1,
		CategoryLayout: 2,
	}, stats.ByCategory)

	var total DeclarationStats
	total.merge(stats)
	total.merge(stats)
	assert.Equal(t, 8, total.Total)
	assert.Equal(t, 4, total.ByCategory[CategoryLayout])
}
