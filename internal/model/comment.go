package model

// Comment author is the display name of the token subject at the time
// the comment was written, matching the wire shape clients render.
type Comment struct {
	ID      string `json:"id"`
	VideoID string `json:"-"`
	UserID  string `json:"-"`
	Author  string `json:"user"`
	Text    string `json:"text"`
	Likes   int64  `json:"likes"`
	Ctime   int64  `json:"createdAt"`
}
