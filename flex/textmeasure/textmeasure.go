// Package textmeasure provides a reference flex.MeasureFunc for text
// leaves: a greedy word-wrapper that sizes advance width per rune with
// golang.org/x/text/width so East Asian wide/fullwidth runes count as
// two columns, matching how the domain stack's other CJK-aware repos in
// this pack size monospace text.
package textmeasure

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/benoitkugler/flexlayout/flex"
)

// Metrics describes the fixed advance grid a Measurer lays text out on.
type Metrics struct {
	// AdvanceWidth is the width in layout units of one narrow column.
	AdvanceWidth flex.Fl
	// LineHeight is the height in layout units of one wrapped line.
	LineHeight flex.Fl
}

// Measurer holds the text content and font metrics for one text node and
// exposes Measure as a flex.MeasureFunc.
type Measurer struct {
	Text    string
	Metrics Metrics
}

// runeAdvance returns how many narrow columns r occupies.
func runeAdvance(r rune) flex.Fl {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func wordAdvance(word string, m Metrics) flex.Fl {
	var cols flex.Fl
	for _, r := range word {
		cols += runeAdvance(r)
	}
	return cols * m.AdvanceWidth
}

// wrap greedily packs words onto lines no wider than maxWidth (unlimited
// when maxWidth is undefined), returning the number of lines produced
// and the widest line's advance.
func wrap(text string, maxWidth flex.Fl, m Metrics) (lineCount int, widest flex.Fl) {
	unlimited := flex.IsUndefined(maxWidth)
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lineCount++
			continue
		}
		var lineWidth flex.Fl
		started := false
		for _, w := range words {
			ww := wordAdvance(w, m)
			spacing := flex.Fl(0)
			if started {
				spacing = m.AdvanceWidth
			}
			if started && !unlimited && lineWidth+spacing+ww > maxWidth {
				widest = max(widest, lineWidth)
				lineCount++
				lineWidth = ww
				started = true
				continue
			}
			lineWidth += spacing + ww
			started = true
		}
		widest = max(widest, lineWidth)
		lineCount++
	}
	if lineCount == 0 {
		lineCount = 1
	}
	return lineCount, widest
}

func max(a, b flex.Fl) flex.Fl {
	if a > b {
		return a
	}
	return b
}

// Measure implements flex.MeasureFunc: it wraps m.Text to fit width
// (when width is a constraint) and reports the consumed box.
func (m *Measurer) Measure(node *flex.Node, availWidth flex.Fl, widthMode flex.MeasureMode, availHeight flex.Fl, heightMode flex.MeasureMode) (flex.Fl, flex.Fl) {
	if utf8.RuneCountInString(m.Text) == 0 {
		return 0, 0
	}

	constraintWidth := flex.Undefined
	switch widthMode {
	case flex.MeasureModeExactly, flex.MeasureModeAtMost:
		constraintWidth = availWidth
	}

	lines, widest := wrap(m.Text, constraintWidth, m.Metrics)
	measuredWidth := widest
	if widthMode == flex.MeasureModeExactly {
		measuredWidth = availWidth
	}

	measuredHeight := flex.Fl(lines) * m.Metrics.LineHeight
	if heightMode == flex.MeasureModeExactly {
		measuredHeight = availHeight
	}

	return measuredWidth, measuredHeight
}

// NewNode returns a text-node leaf configured with Measure as its
// measure callback, ready to be inserted as a childless flex.Node.
func NewNode(config *flex.Config, text string, metrics Metrics) *flex.Node {
	n := flex.NewNode(config)
	n.NodeType = flex.NodeTypeText
	m := &Measurer{Text: text, Metrics: metrics}
	n.Measure = func(node *flex.Node, w flex.Fl, wm flex.MeasureMode, h flex.Fl, hm flex.MeasureMode) (flex.Fl, flex.Fl) {
		return m.Measure(node, w, wm, h, hm)
	}
	return n
}
