package models

// Article is one screened bibliographic item with its annotation tags.
type Article struct {
	CitationKey string   `json:"citation_key" yaml:"citation_key"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Authors     []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	DOI         string   `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Date        string   `json:"date" yaml:"date"` // free-form, e.g. "2021-06", "2024 OCT 15"
	ItemType    string   `json:"item_type,omitempty" yaml:"item_type,omitempty"`
	Abstract    string   `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	ZoteroKey   string   `json:"zotero_key,omitempty" yaml:"zotero_key,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
}
