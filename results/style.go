package results

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/barbell/htmldoc"
)

// inlineStyle parses a style attribute into lower-case property/value pairs.
func inlineStyle(n *html.Node) map[string]string {
	raw := htmldoc.GetAttr(n, "style")
	if raw == "" {
		return nil
	}
	props := make(map[string]string)
	for _, decl := range strings.Split(raw, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important")))
		if key != "" {
			props[key] = val
		}
	}
	return props
}

// hasLineThrough reports whether the element itself is struck through.
func hasLineThrough(n *html.Node) bool {
	switch n.DataAtom {
	case atom.S, atom.Strike, atom.Del:
		return true
	}
	style := inlineStyle(n)
	return strings.Contains(style["text-decoration"], "line-through") ||
		strings.Contains(style["text-decoration-line"], "line-through")
}

// hasRedColor reports whether the element sets a red text colour.
func hasRedColor(n *html.Node) bool {
	if n.DataAtom == atom.Font && isRed(htmldoc.GetAttr(n, "color")) {
		return true
	}
	return isRed(inlineStyle(n)["color"])
}

// hasFailClass reports whether any class on the element names a failure.
func hasFailClass(n *html.Node) bool {
	for _, class := range strings.Fields(strings.ToLower(htmldoc.GetAttr(n, "class"))) {
		if strings.Contains(class, "fail") || strings.Contains(class, "unsuccessful") {
			return true
		}
	}
	return false
}

var redNames = setOf("red", "darkred", "crimson", "firebrick", "tomato", "indianred", "orangered", "maroon")

// isRed reports whether a CSS colour value is red-tinted.
func isRed(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return false
	case redNames[v]:
		return true
	case strings.HasPrefix(v, "#"):
		r, g, b, ok := parseHexColor(v[1:])
		return ok && redDominant(r, g, b)
	case strings.HasPrefix(v, "rgb"):
		r, g, b, ok := parseRGBColor(v)
		return ok && redDominant(r, g, b)
	}
	return false
}

func redDominant(r, g, b int) bool {
	return r >= 0x99 && g <= 0x66 && b <= 0x66
}

func parseHexColor(hex string) (r, g, b int, ok bool) {
	switch len(hex) {
	case 3, 4:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
		hex = hex[:6]
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// parseRGBColor reads rgb(r, g, b) and rgba(r, g, b, a) with integer channels.
func parseRGBColor(v string) (r, g, b int, ok bool) {
	lp, rp := strings.IndexByte(v, '('), strings.IndexByte(v, ')')
	if lp < 0 || rp < lp {
		return 0, 0, 0, false
	}
	parts := strings.FieldsFunc(v[lp+1:rp], func(c rune) bool { return c == ',' || c == ' ' || c == '/' })
	if len(parts) < 3 {
		return 0, 0, 0, false
	}
	var ch [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return 0, 0, 0, false
		}
		ch[i] = n
	}
	return ch[0], ch[1], ch[2], true
}
