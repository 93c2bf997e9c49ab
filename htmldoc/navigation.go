package htmldoc

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// chromePattern matches class/id values of site navigation and boilerplate
// containers. Menus on results sites are frequently built from tables, so
// anything under these containers is never a result table.
var chromePattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumb|breadcrumbs|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// exclusionChecker holds state for determining which elements to exclude.
type exclusionChecker struct {
	mode             NavigationExclusionMode
	bodyNode         *html.Node
	topLevelWrapper  *html.Node // Single wrapper div/main if present
	linkDensityCache map[*html.Node]float64
}

// newExclusionChecker creates a checker for the given mode and document.
func newExclusionChecker(mode NavigationExclusionMode, doc *html.Node) *exclusionChecker {
	checker := &exclusionChecker{
		mode:             mode,
		linkDensityCache: make(map[*html.Node]float64),
	}

	checker.bodyNode = findElement(doc, atom.Body)
	if checker.bodyNode == nil {
		checker.bodyNode = doc
	}

	checker.topLevelWrapper = detectTopLevelWrapper(checker.bodyNode)

	return checker
}

// detectTopLevelWrapper finds a single structural wrapper element if one exists.
// This handles the common pattern of <body><div id="wrapper">...</div></body>
func detectTopLevelWrapper(body *html.Node) *html.Node {
	var structuralChildren []*html.Node

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Div, atom.Main:
			structuralChildren = append(structuralChildren, c)
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
			// Ignore these
		default:
			return nil
		}
	}

	if len(structuralChildren) == 1 {
		return structuralChildren[0]
	}
	return nil
}

// shouldExclude determines if a node should be excluded based on the exclusion mode.
func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if n.Type != html.ElementNode || ec.mode == NavigationExclusionNone {
		return false
	}

	// Never judge the table itself; only the containers around it.
	if n.DataAtom == atom.Table {
		return false
	}

	if ec.shouldExcludeExplicit(n) {
		return true
	}

	if ec.mode >= NavigationExclusionStandard && ec.shouldExcludeByPattern(n) {
		return true
	}

	if ec.mode >= NavigationExclusionAggressive && ec.shouldExcludeByLinkDensity(n) {
		return true
	}

	return false
}

// shouldExcludeExplicit checks for explicit semantic HTML5 elements and ARIA roles.
func (ec *exclusionChecker) shouldExcludeExplicit(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Nav, atom.Aside:
		return true
	}

	switch GetAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ec.isTopLevel(n)
	}

	switch n.DataAtom {
	case atom.Header, atom.Footer:
		return ec.isTopLevel(n)
	}

	return false
}

// isTopLevel returns true if the node is a direct child of body or a single top-level wrapper.
func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	if parent == ec.bodyNode {
		return true
	}
	return ec.topLevelWrapper != nil && parent == ec.topLevelWrapper
}

// shouldExcludeByPattern checks class and id attributes for common navigation patterns.
func (ec *exclusionChecker) shouldExcludeByPattern(n *html.Node) bool {
	if class := GetAttr(n, "class"); class != "" && chromePattern.MatchString(class) {
		return true
	}
	if id := GetAttr(n, "id"); id != "" && chromePattern.MatchString(id) {
		return true
	}
	return false
}

// shouldExcludeByLinkDensity checks if an element has an unusually high link-to-text ratio.
func (ec *exclusionChecker) shouldExcludeByLinkDensity(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Div, atom.Section, atom.Ul, atom.Ol:
	default:
		return false
	}

	// More than 60% of the text inside links, with a minimum link count to
	// avoid false positives on small elements.
	return ec.linkDensity(n) > 0.6 && countLinks(n) >= 4
}

// linkDensity returns the ratio of link text to total text (0.0 to 1.0).
func (ec *exclusionChecker) linkDensity(n *html.Node) float64 {
	if cached, ok := ec.linkDensityCache[n]; ok {
		return cached
	}

	density := 0.0
	if total := textLength(n); total > 0 {
		density = float64(linkTextLength(n)) / float64(total)
	}

	ec.linkDensityCache[n] = density
	return density
}

// textLength returns the total length of text content in a node.
func textLength(n *html.Node) int {
	if n.Type == html.TextNode {
		return len(strings.TrimSpace(n.Data))
	}

	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += textLength(c)
	}
	return total
}

// linkTextLength returns the length of text content within <a> tags.
func linkTextLength(n *html.Node) int {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		return textLength(n)
	}

	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		total += linkTextLength(c)
	}
	return total
}

// countLinks returns the number of <a> elements within a node.
func countLinks(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		count = 1
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countLinks(c)
	}
	return count
}
