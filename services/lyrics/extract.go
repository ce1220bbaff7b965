package lyrics

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Stable prefix of the generated class on lyrics containers.
const lyricsClassPrefix = "Lyrics-sc"

// extractLyrics returns the trimmed text of the first div that is both
// marked data-lyrics-container and carries the generated lyrics class.
func extractLyrics(doc *goquery.Document) (string, bool) {
	var text string
	found := false

	doc.Find(`div[data-lyrics-container="true"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		for _, token := range strings.Fields(class) {
			if strings.HasPrefix(token, lyricsClassPrefix) {
				text = strings.TrimSpace(sel.Text())
				found = true
				return false
			}
		}
		return true
	})

	return text, found
}
