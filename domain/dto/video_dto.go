package dto

type ReqPublishVideo struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoPath     string `json:"-"`
	ThumbnailPath string `json:"-"`
}

// ReqUpdateVideo fields left empty are not modified.
type ReqUpdateVideo struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ThumbnailPath string `json:"-"`
}

type ReqComment struct {
	Content string `json:"content"`
}

type ReqPlaylist struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
