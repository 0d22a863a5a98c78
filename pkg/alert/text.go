package alert

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankRX = regexp.MustCompile(`\n{3,}`)

// PlainText flattens an HTML alert body to text, one block element per line.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script,style").Remove()
	var parts []string
	sel := doc.Find("h1,h2,h3,p,li")
	if sel.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	sel.Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			t = "- " + t
		}
		parts = append(parts, t)
	})
	return blankRX.ReplaceAllString(strings.Join(parts, "\n"), "\n\n"), nil
}
