// Package locator suggests locator strategy/value pairs for the
// interactive elements of an HTML page. Authors paste a page into the
// suggest command and copy the best-ranked locators into their scenario
// table.
package locator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lance13c/testforge/internal/scenario"
)

// Suggestion is one ranked locator for one element.
type Suggestion struct {
	Element  string
	Label    string
	Strategy scenario.Strategy
	Value    string
	Score    int
}

// Strategy scores. Stable identifiers beat structural selectors.
const (
	scoreID    = 100
	scoreName  = 80
	scoreCSS   = 50
	scoreLink  = 40
	scoreXPath = 10
)

// interactive is the element set worth locating in a test.
const interactive = "a, button, input, select, textarea, [role=button]"

// Suggest parses an HTML document and returns one suggestion per
// interactive element, best strategy first. Elements with no usable
// locator at all are skipped.
func Suggest(html string) ([]Suggestion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var suggestions []Suggestion
	doc.Find(interactive).Each(func(i int, s *goquery.Selection) {
		if hidden(s) {
			return
		}
		if best, ok := bestLocator(s, i); ok {
			suggestions = append(suggestions, best)
		}
	})

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions, nil
}

func hidden(s *goquery.Selection) bool {
	if _, ok := s.Attr("hidden"); ok {
		return true
	}
	if t, ok := s.Attr("type"); ok && strings.EqualFold(t, "hidden") {
		return true
	}
	return false
}

func bestLocator(s *goquery.Selection, position int) (Suggestion, bool) {
	tag := goquery.NodeName(s)
	label := elementLabel(s)

	if id, ok := s.Attr("id"); ok && id != "" {
		return Suggestion{Element: tag, Label: label, Strategy: scenario.StrategyID, Value: id, Score: scoreID}, true
	}
	if name, ok := s.Attr("name"); ok && name != "" {
		return Suggestion{Element: tag, Label: label, Strategy: scenario.StrategyName, Value: name, Score: scoreName}, true
	}
	if css, ok := cssSelector(s, tag); ok {
		return Suggestion{Element: tag, Label: label, Strategy: scenario.StrategyCSS, Value: css, Score: scoreCSS}, true
	}
	if tag == "a" && label != "" {
		return Suggestion{Element: tag, Label: label, Strategy: scenario.StrategyLink, Value: label, Score: scoreLink}, true
	}

	// Positional XPath is brittle, so it is the fallback of last resort.
	return Suggestion{
		Element:  tag,
		Label:    label,
		Strategy: scenario.StrategyXPath,
		Value:    fmt.Sprintf("(//%s)[%d]", tag, s.Index()+1),
		Score:    scoreXPath,
	}, true
}

// cssSelector builds a selector from test attributes or a short class list.
func cssSelector(s *goquery.Selection, tag string) (string, bool) {
	for _, attr := range []string{"data-testid", "data-test", "data-cy"} {
		if v, ok := s.Attr(attr); ok && v != "" {
			return fmt.Sprintf("[%s='%s']", attr, v), true
		}
	}
	if t, ok := s.Attr("type"); ok && t != "" && tag == "input" {
		return fmt.Sprintf("input[type='%s']", t), true
	}
	if class, ok := s.Attr("class"); ok {
		classes := strings.Fields(class)
		if len(classes) > 0 {
			return tag + "." + classes[0], true
		}
	}
	return "", false
}

func elementLabel(s *goquery.Selection) string {
	if text := strings.TrimSpace(s.Text()); text != "" {
		return text
	}
	for _, attr := range []string{"placeholder", "aria-label", "title", "value", "alt"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
