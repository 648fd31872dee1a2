package model

// Upload tracks a stored asset so unattached files can be reaped later.
type Upload struct {
	Key      string
	UserID   string
	Attached bool
	Ctime    int64
}
