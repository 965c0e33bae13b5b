package sheetgen

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"

	"github.com/yacobolo/cssbuild"
)

// goConst is one generated constant.
type goConst struct {
	GoName string
	Type   string // "cssbuild.Class", "cssbuild.Var" or "" for untyped
	Value  string
}

// goIdentifiers is everything declared by the rendered sources.
type goIdentifiers struct {
	Classes    []cssbuild.Class
	Variables  []cssbuild.Var
	Animations []string
}

func (ids *goIdentifiers) add(sheet *Sheet) {
	ids.Classes = append(ids.Classes, sheet.Classes...)
	ids.Variables = append(ids.Variables, sheet.Variables...)
	ids.Animations = append(ids.Animations, sheet.Animations...)
}

// renderGoFile renders the constants file. Classes keep their 1:1 name
// (.btn--primary -> BtnPrimary), custom properties get a Var prefix and
// animations an Anim prefix. Internal classes (leading "_") are skipped.
func renderGoFile(pkg string, ids goIdentifiers) ([]byte, error) {
	used := make(map[string]int)
	seen := make(map[string]bool)

	var classes, vars, anims []goConst
	for _, c := range ids.Classes {
		name := c.Name()
		if strings.HasPrefix(name, "_") || seen["c:"+name] {
			continue
		}
		seen["c:"+name] = true
		classes = append(classes, goConst{GoName: uniqueGoName(used, toGoName(name)), Type: "cssbuild.Class", Value: name})
	}
	for _, v := range ids.Variables {
		name := string(v)
		if seen["v:"+name] {
			continue
		}
		seen["v:"+name] = true
		vars = append(vars, goConst{GoName: uniqueGoName(used, "Var"+toGoName(name)), Type: "cssbuild.Var", Value: name})
	}
	for _, a := range ids.Animations {
		if seen["a:"+a] {
			continue
		}
		seen["a:"+a] = true
		anims = append(anims, goConst{GoName: uniqueGoName(used, "Anim"+toGoName(a)), Value: a})
	}

	var b strings.Builder
	b.WriteString("// Code generated by cssbuild. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if len(classes) > 0 || len(vars) > 0 {
		b.WriteString("import \"github.com/yacobolo/cssbuild\"\n\n")
	}

	writeConstBlock(&b, "CSS classes", classes)
	writeConstBlock(&b, "Custom properties", vars)
	writeConstBlock(&b, "Keyframe animations", anims)

	if len(classes) > 0 {
		b.WriteString("// AllClasses lists every generated class constant.\n")
		b.WriteString("var AllClasses = []cssbuild.Class{\n")
		for _, c := range classes {
			fmt.Fprintf(&b, "\t%s,\n", c.GoName)
		}
		b.WriteString("}\n")
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

func writeConstBlock(b *strings.Builder, title string, consts []goConst) {
	if len(consts) == 0 {
		return
	}
	fmt.Fprintf(b, "// %s\nconst (\n", title)
	for _, c := range consts {
		if c.Type == "" {
			fmt.Fprintf(b, "\t%s = %s\n", c.GoName, strconv.Quote(c.Value))
		} else {
			fmt.Fprintf(b, "\t%s %s = %s\n", c.GoName, c.Type, strconv.Quote(c.Value))
		}
	}
	b.WriteString(")\n\n")
}

// uniqueGoName resolves collisions with numeric suffixes; the first name
// keeps the original form.
func uniqueGoName(used map[string]int, name string) string {
	used[name]++
	if n := used[name]; n > 1 {
		return uniqueGoName(used, fmt.Sprintf("%s%d", name, n))
	}
	return name
}

// toGoName converts kebab-case or snake_case to PascalCase
func toGoName(name string) string {
	name = strings.TrimPrefix(name, ".")

	// Split on - and _
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	result := strings.Join(parts, "")
	if result == "" {
		return "X"
	}
	if r := []rune(result)[0]; !unicode.IsLetter(r) {
		result = "X" + result
	}
	return result
}
