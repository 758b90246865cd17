package goquery

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The image catalog ships inside an inline script, not as element
// attributes, keyed by this property name.
const imageScriptProperty = "colorImages"

// imageURLStrategies collects candidate image URLs. The inline script
// catalog carries the high-resolution set; the dynamic-image attribute
// on the main image elements is the legacy fallback.
var imageURLStrategies = []strategy[[]string]{
	{Name: "image-script", Fn: imageURLsFromScript},
	{Name: "dynamic-image-attr", Fn: imageURLsFromDynamicAttr},
}

// ExtractImageIDs derives canonical 11-character image identifiers from
// whatever image URLs the page exposes. Nil when none validate.
func ExtractImageIDs(doc *goquery.Document) []string {
	urls, ok := firstOf(doc, imageURLStrategies)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(urls))
	for _, url := range urls {
		if id, ok := ImageID(url); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

func imageURLsFromScript(doc *goquery.Document) ([]string, bool) {
	var urls []string
	doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		text := script.Text()
		idx := strings.Index(text, imageScriptProperty)
		if idx < 0 {
			return true
		}

		arr, ok := isolateArray(text[idx:])
		if !ok {
			return true
		}

		var entries []struct {
			HiRes string `json:"hiRes"`
			Large string `json:"large"`
		}
		if err := json.Unmarshal([]byte(arr), &entries); err != nil {
			return true
		}
		for _, entry := range entries {
			switch {
			case entry.HiRes != "":
				urls = append(urls, entry.HiRes)
			case entry.Large != "":
				urls = append(urls, entry.Large)
			}
		}
		// Keep scanning scripts until a catalog yields URLs.
		return len(urls) == 0
	})
	return urls, len(urls) > 0
}

// isolateArray returns the first syntactically complete bracketed array
// in s by counting bracket depth. A JSON parser cannot be pointed at
// the script directly: the array sits inside a larger script body that
// is not valid JSON on its own.
func isolateArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// imageURLsFromDynamicAttr falls back to the dynamic-image JSON
// attribute on the main image elements, whose keys are image URLs.
// Keys are sorted for deterministic output; a plain src attribute is
// the last resort.
func imageURLsFromDynamicAttr(doc *goquery.Document) ([]string, bool) {
	var urls []string
	doc.Find("div#imgTagWrapperId img, img#landingImage").Each(func(_ int, img *goquery.Selection) {
		if raw, exists := img.Attr("data-a-dynamic-image"); exists {
			var sizes map[string][]int
			if err := json.Unmarshal([]byte(raw), &sizes); err == nil {
				keys := make([]string, 0, len(sizes))
				for url := range sizes {
					keys = append(keys, url)
				}
				sort.Strings(keys)
				urls = append(urls, keys...)
				return
			}
		}
		if src, exists := img.Attr("src"); exists && src != "" {
			urls = append(urls, src)
		}
	})
	return urls, len(urls) > 0
}

// ImageID derives the canonical image identifier from an image URL: the
// path segment after "/I/", cut at the first "._" size marker. URLs
// without the segment, or whose identifier is not exactly 11 characters,
// contribute nothing.
func ImageID(url string) (string, bool) {
	_, after, found := strings.Cut(url, "/I/")
	if !found {
		return "", false
	}
	id := after
	if idx := strings.Index(id, "._"); idx >= 0 {
		id = id[:idx]
	}
	if len(id) != 11 {
		return "", false
	}
	return id, true
}
