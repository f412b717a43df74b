package models

// content categories synced from the CMS
const (
	ContentPausePhrases = "pause_phrases"
	ContentPauseMusic   = "pause_music"
	ContentPauseLong    = "pause_long"
	ContentBreathe      = "breathe"
	ContentMovie        = "movie"
	ContentBook         = "book"
)

// ContentEntry is one cached content item
type ContentEntry struct {
	ContentType string
	Content     string
	SourceID    string
	IsActive    bool
}

// UIText is one cached UI string, unique per key
type UIText struct {
	Key  string
	Text string
}
