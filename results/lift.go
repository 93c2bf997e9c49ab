package results

import (
	"golang.org/x/net/html"

	"github.com/tsawler/barbell/htmldoc"
	"github.com/tsawler/barbell/model"
)

// noAttemptTokens are cell texts meaning the attempt was not taken.
var noAttemptTokens = setOf("---", "", "-", "0", "X", "x", "DNS", "DNF")

// ParseLiftCell reads one attempt cell. A nil cell is an attempt that was
// never taken.
//
// Missed attempts are shown by styling rather than text: a struck-through red
// span, or any strike, red colour or "fail" class somewhere in the cell.
func ParseLiftCell(c *htmldoc.Cell) model.LiftAttempt {
	if c == nil {
		return model.LiftAttempt{Outcome: model.NoAttempt}
	}
	text := htmldoc.NormalizeText(c.Text)

	if c.Node != nil {
		if span := findStruckRedSpan(c.Node); span != nil {
			return model.LiftAttempt{Weight: numericOrEmpty(htmldoc.GetTextContent(span)), Outcome: model.Unsuccessful}
		}
		if htmldoc.FindFirst(c.Node, isFailMarker) != nil {
			return model.LiftAttempt{Weight: numericOrEmpty(text), Outcome: model.Unsuccessful}
		}
	}

	switch {
	case noAttemptTokens[text]:
		return model.LiftAttempt{Outcome: model.NoAttempt}
	case isNumeric(text):
		return model.LiftAttempt{Weight: text, Outcome: model.Successful}
	default:
		return model.LiftAttempt{Outcome: model.NoAttempt}
	}
}

// findStruckRedSpan finds an element below the cell that is both struck
// through and red in a single inline style.
func findStruckRedSpan(cell *html.Node) *html.Node {
	for c := cell.FirstChild; c != nil; c = c.NextSibling {
		found := htmldoc.FindFirst(c, func(n *html.Node) bool {
			if n.Type != html.ElementNode {
				return false
			}
			style := inlineStyle(n)
			if style == nil {
				return false
			}
			return hasLineThrough(n) && isRed(style["color"])
		})
		if found != nil {
			return found
		}
	}
	return nil
}

func isFailMarker(n *html.Node) bool {
	return n.Type == html.ElementNode && (hasLineThrough(n) || hasRedColor(n) || hasFailClass(n))
}

func numericOrEmpty(s string) string {
	if isNumeric(s) {
		return s
	}
	return ""
}
