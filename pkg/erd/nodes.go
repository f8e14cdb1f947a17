package erd

import (
	"fmt"
	"strings"
)

const nodeTemplate = `%s [label=<
        <table border="0" cellborder="1" cellspacing="0" cellpadding="4">
            <tr><td bgcolor="%s">%s</td></tr>
            %s
        </table>
    >]`

const rowTemplate = `<tr><td port="%s" align="left">%s</td></tr>`

// RenderNodes emits one HTML-label node per table in m, in mapping order,
// separated by newlines. The header cell shows the table name on the color
// from colors; each field becomes a row with a port of the same name.
func RenderNodes(m *Mapping, colors Colors) string {
	blocks := make([]string, 0, m.Len())
	for _, t := range m.tables {
		blocks = append(blocks, renderNode(t, colors))
	}
	return strings.Join(blocks, "\n")
}

func renderNode(t Table, colors Colors) string {
	rows := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		rows[i] = fmt.Sprintf(rowTemplate, f, f)
	}
	return fmt.Sprintf(nodeTemplate, t.Name, colors.Lookup(t.Name), t.Name, strings.Join(rows, "\n"))
}
