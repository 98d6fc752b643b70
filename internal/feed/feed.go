// Package feed reduces Graph API media to the shape the front end renders.
package feed

import "instagram-proxy/internal/instagram"

// Item is the public view of one media object. Fields the upstream did not
// send are left out of the JSON, except caption which is always a string.
type Item struct {
	ID        string              `json:"id,omitempty"`
	Caption   string              `json:"caption"`
	Type      instagram.MediaType `json:"type,omitempty"`
	URL       string              `json:"url,omitempty"`
	Permalink string              `json:"permalink,omitempty"`
	Timestamp string              `json:"timestamp,omitempty"`
}

// FromMedia picks the display URL: videos show their thumbnail, everything
// else its media_url. Videos without a thumbnail are kept, with no url.
func FromMedia(m instagram.Media) Item {
	u := m.MediaURL
	if m.MediaType == instagram.MediaTypeVideo {
		u = m.ThumbnailURL
	}
	return Item{
		ID:        m.ID,
		Caption:   m.Caption,
		Type:      m.MediaType,
		URL:       u,
		Permalink: m.Permalink,
		Timestamp: m.Timestamp,
	}
}

// FromPage maps every item in order. The result is never nil.
func FromPage(page *instagram.MediaPage) []Item {
	if page == nil {
		return []Item{}
	}
	out := make([]Item, 0, len(page.Data))
	for _, m := range page.Data {
		out = append(out, FromMedia(m))
	}
	return out
}
