package vdbatch

import (
	"fmt"
	"strings"
)

// ThumbSize is the image size tag used for search documents.
const ThumbSize = "thumb"

// SiteURLs computes public site paths for entity pages and images.
type SiteURLs struct {
	// Base is the site origin, e.g. "https://villagerdb.com". An empty
	// base yields root-relative paths.
	Base string
}

func (u SiteURLs) base() string {
	return strings.TrimRight(u.Base, "/")
}

// Root returns the site root URL.
func (u SiteURLs) Root() string {
	return u.base() + "/"
}

// EntityPage returns the detail page URL for an entity.
func (u SiteURLs) EntityPage(kind Kind, id string) string {
	return fmt.Sprintf("%s/%s/%s", u.base(), kind, id)
}

// Image returns the image URL for an entity at the given size tag.
func (u SiteURLs) Image(kind Kind, id, size string) string {
	return fmt.Sprintf("%s/images/%s/%s/%s.png", u.base(), kind.Plural(), size, id)
}
