// Package importer reads articles from a Zotero "Generate Report from Items"
// HTML export.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/fpga-survey-extractor/models"
)

// DefaultItemTypes are the Zotero item types kept by ParseReport when no
// filter is given.
var DefaultItemTypes = []string{"journalArticle", "conferencePaper"}

type Importer struct {
	// ItemTypes restricts imported items by Zotero item type. Empty keeps
	// DefaultItemTypes.
	ItemTypes []string
}

// ParseReport extracts one Article per top-level report item, in document
// order. Items without a "Citation Key:" line in their Extra field are an
// error.
func (im *Importer) ParseReport(r io.Reader) ([]models.Article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	itemTypes := im.ItemTypes
	if len(itemTypes) == 0 {
		itemTypes = DefaultItemTypes
	}

	var articles []models.Article
	var parseErr error
	doc.Find("ul.report > li.item").EachWithBreak(func(i int, s *goquery.Selection) bool {
		itemType := itemTypeOf(s)
		if !slices.Contains(itemTypes, itemType) {
			return true
		}

		article, err := parseItem(s)
		if err != nil {
			parseErr = fmt.Errorf("item #%d: %w", i+1, err)
			return false
		}
		article.ItemType = itemType
		articles = append(articles, article)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return articles, nil
}

// itemTypeOf reads the Zotero item type from the item's class list,
// e.g. class="item journalArticle".
func itemTypeOf(s *goquery.Selection) string {
	class, _ := s.Attr("class")
	for _, c := range strings.Fields(class) {
		if c != "item" {
			return c
		}
	}
	return ""
}

func parseItem(s *goquery.Selection) (models.Article, error) {
	article := models.Article{
		Title: normalizeText(s.ChildrenFiltered("h2").First().Text()),
		Tags:  []string{},
	}
	if id, ok := s.Attr("id"); ok {
		article.ZoteroKey = strings.TrimPrefix(id, "item_")
	}

	var extra map[string]string
	s.ChildrenFiltered("table").Find("tr").Each(func(i int, tr *goquery.Selection) {
		th := tr.ChildrenFiltered("th")
		td := tr.ChildrenFiltered("td")
		field := normalizeText(th.Text())

		switch {
		case th.HasClass("author") || field == "Author":
			article.Authors = append(article.Authors, authorName(normalizeText(td.Text())))
		case field == "Date":
			article.Date = normalizeText(td.Text())
		case field == "DOI":
			article.DOI = normalizeText(td.Text())
		case field == "URL":
			if href, ok := td.Find("a").Attr("href"); ok {
				article.URL = href
			} else {
				article.URL = normalizeText(td.Text())
			}
		case field == "Abstract":
			article.Abstract = normalizeText(td.Text())
		case field == "Extra":
			extra = parseKeyValueLines(cellLines(td))
		}
	})

	article.CitationKey = extra["Citation Key"]
	if article.CitationKey == "" {
		return models.Article{}, fmt.Errorf("%q has no citation key in its Extra field", article.Title)
	}

	s.ChildrenFiltered("ul.tags").ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
		if t := normalizeText(li.Text()); t != "" {
			article.Tags = append(article.Tags, t)
		}
	})

	return article, nil
}

// cellLines returns the lines of a table cell, splitting on <br> elements
// and newlines.
func cellLines(td *goquery.Selection) []string {
	var b strings.Builder
	td.Contents().Each(func(i int, c *goquery.Selection) {
		if goquery.NodeName(c) == "br" {
			b.WriteString("\n")
			return
		}
		b.WriteString(c.Text())
	})
	return strings.Split(b.String(), "\n")
}

// parseKeyValueLines maps "Key: value" lines; lines without ": " are ignored.
func parseKeyValueLines(lines []string) map[string]string {
	out := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// authorName turns the report's "Last, First" into "First Last".
func authorName(s string) string {
	last, first, ok := strings.Cut(s, ", ")
	if !ok {
		return s
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

// normalizeText trims every line and joins the non-empty ones with a space.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
