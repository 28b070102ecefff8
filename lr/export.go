package lr

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

// CFSM2GraphViz exports a CFSM to the Graphviz Dot format, given a filename.
func (c *CFSM) CFSM2GraphViz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot export CFSM: %w", err)
	}
	defer f.Close()
	return c.ToGraphViz(f)
}

// ToGraphViz writes a CFSM in Graphviz Dot format to w. Every state is rendered
// as a record node listing its items; accepting states are filled gray.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s)))
	}
	for _, s := range c.States() {
		for _, edge := range c.allEdges(s) {
			b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n",
				edge.from.ID, edge.to.ID, escapeDot(edge.label.Name)))
		}
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *CFSMState) string {
	items := s.Items()
	lines := make([]string, len(items))
	for k, i := range items {
		lines[k] = escapeDot(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

// TableAsHTML exports the SLR(1) parser table in HTML-format. Columns are the
// terminals, $ and the non-terminals (without the augmented start symbol).
func TableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	if lrgen.table == nil {
		tracer().Errorf("parser table not yet created, cannot export to HTML")
		return fmt.Errorf("parser table for grammar %s not yet created", lrgen.g.Name)
	}
	table := lrgen.table
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("SLR(1) table for grammar %s with %d states<p>\n",
		html.EscapeString(lrgen.g.Name), table.StateCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>")
	columns := table.Columns()
	for _, A := range columns {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html.EscapeString(A.Name)))
	}
	b.WriteString("</tr>\n")
	for state := 0; state < table.StateCount(); state++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>", state))
		for _, A := range columns {
			cell := table.Cell(uint(state), A)
			td := "&nbsp;"
			if !cell.IsEmpty() {
				td = html.EscapeString(cell.String())
			}
			if cell.IsConflict() {
				b.WriteString("<td bgcolor=#ffcccc>" + td + "</td>")
			} else {
				b.WriteString("<td>" + td + "</td>")
			}
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// Columns returns the symbols heading the table columns: the terminals in
// order of first appearance, $, then the non-terminals without S'.
func (t *Table) Columns() []*Symbol {
	cols := make([]*Symbol, 0, t.g.SymbolCount())
	cols = append(cols, t.g.Terminals()...)
	cols = append(cols, t.g.EOF())
	for _, N := range t.g.NonTerminals() {
		if N != t.g.AugmentedStart() {
			cols = append(cols, N)
		}
	}
	return cols
}
