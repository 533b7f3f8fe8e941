package models

import "encoding/json"

type ContentFormat string

const (
	ContentFormatStructured ContentFormat = "structured"
	ContentFormatLegacy     ContentFormat = "legacy"
)

// ProjectContent is the parsed form of Project.Description. Older rows
// hold plain text; newer rows hold a JSON document with build sections
// and the download link. The format is resolved once at read time
// instead of re-parsing (and swallowing errors) at every call site.
type ProjectContent struct {
	Format      ContentFormat `json:"-"`
	Overview    string        `json:"overview,omitempty"`
	Components  string        `json:"components,omitempty"`
	Circuit     string        `json:"circuit,omitempty"`
	Steps       string        `json:"steps,omitempty"`
	DownloadURL string        `json:"-"`
}

// ParseProjectContent decodes a stored description. Anything that is not
// a JSON object is treated as legacy plain text, carried in Overview.
func ParseProjectContent(raw string) *ProjectContent {
	var decoded struct {
		Overview    string `json:"overview"`
		Components  string `json:"components"`
		Circuit     string `json:"circuit"`
		Steps       string `json:"steps"`
		DownloadURL string `json:"download_url"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return &ProjectContent{Format: ContentFormatLegacy, Overview: raw}
	}
	return &ProjectContent{
		Format:      ContentFormatStructured,
		Overview:    decoded.Overview,
		Components:  decoded.Components,
		Circuit:     decoded.Circuit,
		Steps:       decoded.Steps,
		DownloadURL: decoded.DownloadURL,
	}
}
