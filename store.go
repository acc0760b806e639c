package wikidaily

import "context"

// OutputFile describes a file written to the output directory.
type OutputFile struct {
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Checksum string `json:"xxhash"`
}

// Store writes published files. A saved file is either complete or absent.
type Store interface {
	// Save writes data to name, relative to the store root.
	Save(ctx context.Context, name string, data []byte) error

	// Files returns the files saved so far, in save order.
	Files() []OutputFile
}

// Manifest lists the files produced by one run.
type Manifest struct {
	RunID       string       `json:"run"`
	GeneratedAt string       `json:"generatedAt"`
	Files       []OutputFile `json:"files"`
}

// SitemapBuilder renders a sitemap for the published files.
type SitemapBuilder interface {
	// Build returns sitemap XML listing each name resolved against baseURL.
	Build(baseURL string, names []string, lastMod string) ([]byte, error)
}

// IndexPage is the data rendered into the landing page.
type IndexPage struct {
	UpdatedAt string
	Featured  []string // featured file names, e.g. "en.json"
	Words     []string // word file names, e.g. "en_wotd.json"
}

// IndexRenderer renders the landing page listing published files.
type IndexRenderer interface {
	RenderIndex(page *IndexPage) ([]byte, error)
}
