// Package codegen renders icon trees as React function components.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/ruminaider/ric/internal/icons"
)

// Header opens a newly created destination file.
const Header = "\nimport * as React from 'react';\n\ntype Svg = React.ComponentProps<\"svg\">\n\n"

const indent = "  "

var componentTmpl = template.Must(template.New("component").Parse(`
export const {{.Name}}: React.FC<Svg> = (props) => {
  return (
{{.Body}}
  );
};
`))

// SVG renders tree as JSX. The root element spreads the component props.
func SVG(tree icons.IconTree) string {
	var b strings.Builder
	writeElement(&b, tree, 0, true)
	return strings.TrimSuffix(b.String(), "\n")
}

// Component wraps svg in an exported component named name.
func Component(name, svg string) (string, error) {
	var body strings.Builder
	for i, line := range strings.Split(svg, "\n") {
		if i > 0 {
			body.WriteByte('\n')
		}
		if line != "" {
			body.WriteString(indent + indent + line)
		}
	}

	var b strings.Builder
	err := componentTmpl.Execute(&b, struct{ Name, Body string }{name, body.String()})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return b.String(), nil
}

func writeElement(b *strings.Builder, t icons.IconTree, depth int, root bool) {
	pad := strings.Repeat(indent, depth)
	b.WriteString(pad + "<" + t.Tag)
	if t.Attr != nil {
		for pair := t.Attr.Oldest(); pair != nil; pair = pair.Next() {
			b.WriteString(" " + attribute(pair.Key, pair.Value))
		}
	}
	if root {
		b.WriteString(" {...props}")
	}
	if len(t.Child) == 0 {
		b.WriteString(" />\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range t.Child {
		writeElement(b, c, depth+1, false)
	}
	b.WriteString(pad + "</" + t.Tag + ">\n")
}

// attribute renders key="value", falling back to an expression container
// when the value cannot sit inside a plain JSX string.
func attribute(key string, value any) string {
	s := fmt.Sprint(value)
	if strings.ContainsAny(s, "\"\n") {
		return key + "={" + strconv.Quote(s) + "}"
	}
	return key + `="` + s + `"`
}
