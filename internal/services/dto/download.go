package dto

import "time"

// DownloadGrant is a single authorized download. The URL it exposes is
// the only path by which project content leaves the system.
type DownloadGrant struct {
	DownloadURL        string    `json:"download_url"`
	FileName           string    `json:"file_name"`
	DownloadsUsed      int       `json:"downloads_used"`
	DownloadsRemaining int       `json:"downloads_remaining"`
	ExpiryDate         time.Time `json:"expiry_date"`
	DaysUntilExpiry    int       `json:"days_until_expiry"`
}

// AdminDownloadGrant is the unmetered variant returned to admins.
type AdminDownloadGrant struct {
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
}
