package importer

import (
	"reflect"
	"strings"
	"testing"
)

const sampleReport = `<!DOCTYPE html>
<html><head><title>Zotero Report</title></head>
<body>
<ul class="report combineChildItems">
  <li id="item_ABCD1234" class="item journalArticle">
    <h2>An FPGA accelerator for
      ship detection</h2>
    <table>
      <tr><th>Item Type</th><td>Journal Article</td></tr>
      <tr><th class="author">Author</th><td>Lovelace, Ada</td></tr>
      <tr><th class="author">Author</th><td>Babbage, Charles</td></tr>
      <tr><th class="editor">Editor</th><td>Somebody, Else</td></tr>
      <tr><th>Date</th><td>2021-06</td></tr>
      <tr><th>DOI</th><td>10.1000/xyz</td></tr>
      <tr><th>URL</th><td><a href="https://example.org/paper">https://example.org/paper</a></td></tr>
      <tr><th>Extra</th><td>tex.ids: foo<br>Citation Key: lovelaceShip2021</td></tr>
      <tr><th>Abstract</th><td>We detect ships.</td></tr>
    </table>
    <h3 class="tags">Tags:</h3>
    <ul class="tags">
      <li>Board: AMD Xilinx (XCZU9EG) {ZCU102}</li>
      <li>Model: YOLOv3 (YOLO) {Darknet-53}</li>
    </ul>
    <ul class="attachments">
      <li id="item_ZZZZ" class="item attachment">
        <h2>Full Text PDF</h2>
        <ul class="tags"><li>ignored</li></ul>
      </li>
    </ul>
  </li>
  <li id="item_EFGH5678" class="item conferencePaper">
    <h2>Second paper</h2>
    <table>
      <tr><th>Date</th><td>2022</td></tr>
      <tr><th>Extra</th><td>Citation Key: secondPaper2022</td></tr>
    </table>
  </li>
  <li id="item_BOOK0001" class="item book">
    <h2>A book</h2>
    <table><tr><th>Extra</th><td>Citation Key: aBook2020</td></tr></table>
  </li>
</ul>
</body></html>`

func TestParseReport(t *testing.T) {
	im := &Importer{}
	articles, err := im.ParseReport(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("ParseReport() error = %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}

	a := articles[0]
	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"CitationKey", a.CitationKey, "lovelaceShip2021"},
		{"Title", a.Title, "An FPGA accelerator for ship detection"},
		{"Date", a.Date, "2021-06"},
		{"DOI", a.DOI, "10.1000/xyz"},
		{"URL", a.URL, "https://example.org/paper"},
		{"Abstract", a.Abstract, "We detect ships."},
		{"ZoteroKey", a.ZoteroKey, "ABCD1234"},
		{"ItemType", a.ItemType, "journalArticle"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if want := []string{"Ada Lovelace", "Charles Babbage"}; !reflect.DeepEqual(a.Authors, want) {
		t.Errorf("Authors = %v, want %v", a.Authors, want)
	}
	wantTags := []string{"Board: AMD Xilinx (XCZU9EG) {ZCU102}", "Model: YOLOv3 (YOLO) {Darknet-53}"}
	if !reflect.DeepEqual(a.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", a.Tags, wantTags)
	}

	b := articles[1]
	if b.CitationKey != "secondPaper2022" || b.ItemType != "conferencePaper" {
		t.Errorf("articles[1] = %+v", b)
	}
	if b.Tags == nil || len(b.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty slice", b.Tags)
	}
}

func TestParseReport_ItemTypeFilter(t *testing.T) {
	im := &Importer{ItemTypes: []string{"book"}}
	articles, err := im.ParseReport(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("ParseReport() error = %v", err)
	}
	if len(articles) != 1 || articles[0].CitationKey != "aBook2020" {
		t.Errorf("articles = %+v, want only aBook2020", articles)
	}
}

func TestParseReport_MissingCitationKey(t *testing.T) {
	report := `<ul class="report"><li id="item_X" class="item journalArticle">
		<h2>No key</h2><table><tr><th>Extra</th><td>tex.ids: foo</td></tr></table>
	</li></ul>`

	im := &Importer{}
	if _, err := im.ParseReport(strings.NewReader(report)); err == nil {
		t.Error("ParseReport() error = nil, want error")
	}
}

func TestAuthorName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lovelace, Ada", "Ada Lovelace"},
		{"IEEE", "IEEE"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := authorName(tt.in); got != tt.want {
				t.Errorf("authorName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
