package instagram

// MediaType is the Graph API media_type value.
type MediaType string

const (
	MediaTypeImage         MediaType = "IMAGE"
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeCarouselAlbum MediaType = "CAROUSEL_ALBUM"
)

// Media is one element of the me/media "data" array.
type Media struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption"`
	MediaType    MediaType `json:"media_type"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Permalink    string    `json:"permalink"`
	Timestamp    string    `json:"timestamp"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// MediaPage is a single page of the me/media edge. Data is nil when the
// upstream omitted it.
type MediaPage struct {
	Data   []Media `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}
