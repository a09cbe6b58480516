// Package upload decides where class-group images live, which uploads are
// acceptable, and how stored paths map to servable URLs.
//
// A Policy is built once at startup with NewPolicy and is read-only afterwards;
// every method is safe for concurrent use.
package upload

import (
	"path/filepath"
	"strings"
)

// MaxFileSize is the inclusive upload size limit in bytes (5 MiB).
const MaxFileSize int64 = 5 * 1024 * 1024

// Category names one of the fixed image purposes.
type Category string

const (
	CategoryClassGroups  Category = "class-groups"
	CategoryPlaceholders Category = "placeholders"
	CategoryBanners      Category = "banners"
	CategoryThumbnails   Category = "thumbnails"
)

var categoryOrder = []Category{
	CategoryClassGroups,
	CategoryPlaceholders,
	CategoryBanners,
	CategoryThumbnails,
}

// Categories returns all categories in provisioning order (parents first).
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory maps a raw name to a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// format pairs an allowed extension with the MIME type that maps to it.
type format struct {
	Extension string
	MIMEType  string
}

// Dimensions is a named target size for downstream resizing. Aspect is a label
// only; nothing resizes images in this service.
type Dimensions struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Aspect string `json:"aspectRatio"`
}

// Optimization holds compression parameters for an image-processing step.
type Optimization struct {
	JPEGQuality     int  `json:"jpegQuality"`
	JPEGProgressive bool `json:"jpegProgressive"`
	PNGCompression  int  `json:"pngCompressionLevel"`
	WebPQuality     int  `json:"webpQuality"`
}

// CDN controls how relative paths turn into servable URLs.
type CDN struct {
	Enabled bool
	BaseURL string
}

// Options are the deployment-specific inputs to NewPolicy.
type Options struct {
	PublicDir string
	CDN       CDN
}

// Policy is the immutable upload configuration.
type Policy struct {
	publicDir     string
	categoryPaths map[Category]string
	formats       []format
	maxFileSize   int64
	dimensions    map[string]Dimensions
	optimization  Optimization
	cdn           CDN
}

// NewPolicy builds the policy used by the whole process.
func NewPolicy(opts Options) *Policy {
	root := opts.PublicDir
	if root == "" {
		root = "public"
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	return &Policy{
		publicDir: root,
		categoryPaths: map[Category]string{
			CategoryClassGroups:  "/images/class-groups",
			CategoryPlaceholders: "/images/class-groups/placeholders",
			CategoryBanners:      "/images/class-groups/banners",
			CategoryThumbnails:   "/images/class-groups/thumbnails",
		},
		formats: []format{
			{Extension: "jpg", MIMEType: "image/jpg"},
			{Extension: "jpeg", MIMEType: "image/jpeg"},
			{Extension: "png", MIMEType: "image/png"},
			{Extension: "webp", MIMEType: "image/webp"},
		},
		maxFileSize: MaxFileSize,
		dimensions: map[string]Dimensions{
			"cover":     {Width: 1200, Height: 800, Aspect: "3:2"},
			"banner":    {Width: 1920, Height: 600, Aspect: "16:5"},
			"thumbnail": {Width: 400, Height: 300, Aspect: "4:3"},
		},
		optimization: Optimization{
			JPEGQuality:     85,
			JPEGProgressive: true,
			PNGCompression:  9,
			WebPQuality:     80,
		},
		cdn: CDN{
			Enabled: opts.CDN.Enabled,
			BaseURL: opts.CDN.BaseURL,
		},
	}
}

// PublicDir returns the absolute root all relative image paths resolve against.
func (p *Policy) PublicDir() string {
	return p.publicDir
}

// CategoryPath returns the URL-style relative directory for c.
func (p *Policy) CategoryPath(c Category) (string, bool) {
	path, ok := p.categoryPaths[c]
	return path, ok
}

// AllowedExtensions returns the accepted extensions in display order.
func (p *Policy) AllowedExtensions() []string {
	out := make([]string, 0, len(p.formats))
	for _, f := range p.formats {
		out = append(out, f.Extension)
	}
	return out
}

// AllowedMIMETypes returns the accepted MIME types in display order.
func (p *Policy) AllowedMIMETypes() []string {
	out := make([]string, 0, len(p.formats))
	for _, f := range p.formats {
		out = append(out, f.MIMEType)
	}
	return out
}

// ExtensionFor returns the extension stored files of mimeType should carry.
func (p *Policy) ExtensionFor(mimeType string) (string, bool) {
	mimeType = normalizeMIME(mimeType)
	for _, f := range p.formats {
		if f.MIMEType == mimeType {
			return f.Extension, true
		}
	}
	return "", false
}

// MaxFileSize returns the inclusive size limit in bytes.
func (p *Policy) MaxFileSize() int64 {
	return p.maxFileSize
}

// Dimensions returns a copy of the named dimension profiles.
func (p *Policy) Dimensions() map[string]Dimensions {
	out := make(map[string]Dimensions, len(p.dimensions))
	for k, v := range p.dimensions {
		out[k] = v
	}
	return out
}

// Optimization returns the compression parameters.
func (p *Policy) Optimization() Optimization {
	return p.optimization
}

// CDN returns the CDN settings.
func (p *Policy) CDN() CDN {
	return p.cdn
}

func (p *Policy) allows(mimeType string) bool {
	_, ok := p.ExtensionFor(mimeType)
	return ok
}

// normalizeMIME lowercases a media type and drops any parameters.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(mimeType))
}
