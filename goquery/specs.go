package goquery

import "github.com/PuerkitoBio/goquery"

// Spec tables share one row shape: a header cell naming the attribute
// and a data cell holding its value. Rows missing either half are
// skipped, never fatal.
func specTable(doc *goquery.Document, selector string) map[string]string {
	info := make(map[string]string)
	doc.Find(selector).First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		key := CleanText(row.Find("th").First().Text())
		value := CleanText(row.Find("td").First().Text())
		if key == "" || value == "" {
			return
		}
		info[key] = value
	})
	return info
}

// ExtractTechnicalInfo reads the technical specification table.
func ExtractTechnicalInfo(doc *goquery.Document) map[string]string {
	return specTable(doc, "table#productDetails_techSpec_section_1.prodDetTable")
}

// ExtractAdditionalInfo reads the additional information table.
func ExtractAdditionalInfo(doc *goquery.Document) map[string]string {
	return specTable(doc, "table#productDetails_detailBullets_sections1.prodDetTable")
}
