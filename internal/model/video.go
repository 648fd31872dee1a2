package model

type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Channel      string `json:"channel"`
	Views        int64  `json:"views"`
	Likes        int64  `json:"likes"`
	Dislikes     int64  `json:"dislikes"`
	Ctime        int64  `json:"createdAt"`
	Mtime        int64  `json:"updatedAt"`

	// Comments is filled in by the service layer, not stored on the
	// videos table itself.
	Comments []*Comment `json:"comments"`
}
