package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProjectContent_Structured(t *testing.T) {
	raw := `{"overview":"A weather station","components":"ESP32, DHT22","circuit":"See diagram","steps":"1. Flash firmware","download_url":"https://cdn.example.com/kit.zip"}`

	content := ParseProjectContent(raw)

	assert.Equal(t, ContentFormatStructured, content.Format)
	assert.Equal(t, "A weather station", content.Overview)
	assert.Equal(t, "ESP32, DHT22", content.Components)
	assert.Equal(t, "See diagram", content.Circuit)
	assert.Equal(t, "1. Flash firmware", content.Steps)
	assert.Equal(t, "https://cdn.example.com/kit.zip", content.DownloadURL)
}

func TestParseProjectContent_LegacyPlainText(t *testing.T) {
	raw := "Just an old plain-text description of the kit."

	content := ParseProjectContent(raw)

	assert.Equal(t, ContentFormatLegacy, content.Format)
	assert.Equal(t, raw, content.Overview)
	assert.Empty(t, content.DownloadURL)
}

func TestParseProjectContent_PartialJSON(t *testing.T) {
	// Missing keys decode to empty strings, still structured.
	content := ParseProjectContent(`{"overview":"only overview"}`)

	assert.Equal(t, ContentFormatStructured, content.Format)
	assert.Equal(t, "only overview", content.Overview)
	assert.Empty(t, content.Steps)
}

func TestDownloadLogRemaining(t *testing.T) {
	log := DownloadLog{DownloadCount: 3, MaxDownloads: 5}
	assert.Equal(t, 2, log.Remaining())

	log.DownloadCount = 7
	assert.Equal(t, 0, log.Remaining(), "never negative")
}
