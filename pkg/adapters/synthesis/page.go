package synthesis

import (
	"fmt"
	"io"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/net/html"
)

var (
	soundRef = regexp2.MustCompile(`'(https?://[^'\s]+/PraatResynthese/\d+)'`, regexp2.None)
	imageRef = regexp2.MustCompile(`https?://[^'"\s]+/PraatResynthese/\d+\.png`, regexp2.None)
)

// page holds the media references found on a synthesis result page.
type page struct {
	SoundURL string
	ImageURL string
}

// parsePage finds the play_sound row and the PopUp2TextGrid button of a result page.
// A page without them yields empty URLs.
func parsePage(r io.Reader) (page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return page{}, fmt.Errorf("failed to parse synthesis page: %w", err)
	}

	var p page
	if onclick, ok := findOnclick(doc, "tr", "play_sound"); ok {
		if m := firstMatch(soundRef, onclick, 1); m != "" {
			p.SoundURL = m + ".wav"
		}
	}
	if onclick, ok := findOnclick(doc, "input", "PopUp2TextGrid"); ok {
		p.ImageURL = firstMatch(imageRef, onclick, 0)
	}
	return p, nil
}

// findOnclick returns the onclick attribute of the first tag element whose handler
// starts with prefix, in document order.
func findOnclick(n *html.Node, tag, prefix string) (string, bool) {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, a := range n.Attr {
			if a.Key == "onclick" && strings.HasPrefix(a.Val, prefix) {
				return a.Val, true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v, ok := findOnclick(c, tag, prefix); ok {
			return v, true
		}
	}
	return "", false
}

func firstMatch(re *regexp2.Regexp, s string, group int) string {
	m, err := re.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}
	return m.GroupByNumber(group).String()
}
