package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/searchlab/core"
)

type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionEdges
	sectionOrigin
	sectionDestinations
)

var headers = []struct {
	prefix string
	sec    section
}{
	{"Nodes:", sectionNodes},
	{"Edges:", sectionEdges},
	{"Origin:", sectionOrigin},
	{"Destinations:", sectionDestinations},
}

// Parse reads the text format. Graph options (e.g. core.WithFirstEdgeWins)
// are applied to the resulting graph.
func Parse(r io.Reader, opts ...core.GraphOption) (*File, error) {
	var (
		d   draft
		sec = sectionNone
		ln  = 0
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s, rest, ok := cutHeader(line); ok {
			sec = s
			if line = rest; line == "" {
				continue
			}
		}
		if err := d.parseLine(sec, ln, line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("problem: read: %w", err)
	}

	return d.build(opts...)
}

// cutHeader detects a section header and returns the inline remainder.
func cutHeader(line string) (section, string, bool) {
	for _, h := range headers {
		if rest, ok := strings.CutPrefix(line, h.prefix); ok {
			return h.sec, strings.TrimSpace(rest), true
		}
	}

	return sectionNone, "", false
}

func (d *draft) parseLine(sec section, ln int, line string) error {
	switch sec {
	case sectionNodes:
		// 1: (4,1)
		idPart, coords, ok := strings.Cut(line, ":")
		if !ok {
			return syntaxErr(ln, line, "want \"<id>: (<x>,<y>)\"")
		}
		id, err := parseID(idPart)
		if err != nil {
			return syntaxErr(ln, line, err.Error())
		}
		x, y, err := parsePair(coords, parseFloat)
		if err != nil {
			return syntaxErr(ln, line, err.Error())
		}
		d.nodes = append(d.nodes, nodeDecl{line: ln, id: id, x: x, y: y})

	case sectionEdges:
		// (2,1): 4
		pair, costPart, ok := strings.Cut(line, ":")
		if !ok {
			return syntaxErr(ln, line, "want \"(<from>,<to>): <cost>\"")
		}
		from, to, err := parsePair(pair, parseID)
		if err != nil {
			return syntaxErr(ln, line, err.Error())
		}
		cost, err := strconv.ParseFloat(strings.TrimSpace(costPart), 64)
		if err != nil {
			return syntaxErr(ln, line, "bad cost")
		}
		d.edges = append(d.edges, edgeDecl{line: ln, from: from, to: to, cost: cost})

	case sectionOrigin:
		if d.origin.Valid() {
			return syntaxErr(ln, line, "origin already set")
		}
		id, err := parseID(line)
		if err != nil {
			return syntaxErr(ln, line, err.Error())
		}
		d.origin, d.originLine = id, ln

	case sectionDestinations:
		// 5; 4
		for _, part := range strings.Split(line, ";") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			id, err := parseID(part)
			if err != nil {
				return syntaxErr(ln, line, err.Error())
			}
			d.destinations = append(d.destinations, id)
		}
		d.destLine = ln

	default:
		return syntaxErr(ln, line, "content before any section header")
	}

	return nil
}

func syntaxErr(ln int, line, msg string) error {
	return fmt.Errorf("%w: line %d: %q: %s", ErrSyntax, ln, line, msg)
}

func parseID(s string) (core.NodeID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return core.NoNode, fmt.Errorf("bad node id %q", strings.TrimSpace(s))
	}

	return core.NodeID(n), nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}

	return v, nil
}

// parsePair reads "(a,b)" with surrounding blanks and converts both parts.
func parsePair[T any](s string, conv func(string) (T, error)) (T, T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return zero, zero, errors.New("want parenthesized pair")
	}
	left, right, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return zero, zero, errors.New("want two comma-separated values")
	}
	a, err := conv(strings.TrimSpace(left))
	if err != nil {
		return zero, zero, err
	}
	b, err := conv(strings.TrimSpace(right))
	if err != nil {
		return zero, zero, err
	}

	return a, b, nil
}

// WriteText renders f in the text format, nodes and edges in ascending order.
func WriteText(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Nodes:")
	for _, id := range f.Graph.Nodes() {
		p, err := f.Graph.Coordinates(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d: (%s,%s)\n", id, formatFloat(p.X), formatFloat(p.Y))
	}
	fmt.Fprintln(bw, "Edges:")
	for _, e := range f.Graph.Edges() {
		fmt.Fprintf(bw, "(%d,%d): %s\n", e.From, e.To, formatFloat(e.Cost))
	}
	fmt.Fprintln(bw, "Origin:")
	fmt.Fprintln(bw, int(f.Origin))
	fmt.Fprintln(bw, "Destinations:")
	parts := make([]string, len(f.Destinations))
	for i, id := range f.Destinations {
		parts[i] = strconv.Itoa(int(id))
	}
	fmt.Fprintln(bw, strings.Join(parts, "; "))

	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
