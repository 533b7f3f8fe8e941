package models

import "time"

// DownloadLog is a metered, time-boxed download license: one row per
// (user, project, order), created lazily on the first grant after
// purchase and incremented on every later grant. Never deleted.
type DownloadLog struct {
	BaseModel
	UserID           string `gorm:"type:uuid;not null;uniqueIndex:idx_user_project_order"`
	ProjectID        string `gorm:"type:uuid;not null;uniqueIndex:idx_user_project_order"`
	OrderID          string `gorm:"type:uuid;not null;uniqueIndex:idx_user_project_order"`
	DownloadCount    int    `gorm:"default:0"`
	MaxDownloads     int    `gorm:"default:5"`
	ExpiryDate       time.Time
	LastDownloadedAt *time.Time
}

func (l *DownloadLog) Remaining() int {
	remaining := l.MaxDownloads - l.DownloadCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
