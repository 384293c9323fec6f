package dto

// PlaceholderThumbnail is served when a webtoon has no thumbnail
const PlaceholderThumbnail = "/images/placeholder-webtoon.png"

// RankedItem is one row of a ranking feed
type RankedItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Genre     string `json:"genre"`
	Thumbnail string `json:"thumbnail"`
	Views     int64  `json:"views"`
	Rank      int    `json:"rank"`
}
