package normalize

import (
	"strings"

	"github.com/dmitrijs2005/uniswap/internal/common"
)

// Placeholder is rendered wherever an image is missing or unusable.
const Placeholder = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj4KICA8cmVjdCB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgZmlsbD0iI2Y1ZjVmNSIvPgogIDx0ZXh0IHg9IjEwMCIgeT0iMTAwIiBmb250LWZhbWlseT0iQXJpYWwiIGZvbnQtc2l6ZT0iMTQiIGZpbGw9IiM5OTk5OTkiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGR5PSIuM2VtIj5JbWFnZSBub3QgZm91bmQ8L3RleHQ+Cjwvc3ZnPg=="

// imageFields are read in order; the first one holding any image wins.
var imageFields = []string{"images", "imageUrls", "post.imageUrls", "imageUrl", "image"}

// Image normalizes a single image reference:
//
//   - a plain filename or uploads path becomes <base>/api/uploads/files/<name>;
//   - a data:image/...;base64 URL gets its payload cleaned and re-padded;
//   - other data:image URLs (URL-encoded svg avatars) are kept;
//   - absolute http(s) URLs on another host are kept;
//   - everything else is the placeholder.
func (n *Normalizer) Image(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}

	if isDataURL(s) {
		return dataImage(s)
	}
	if strings.Contains(s, ",") {
		return Placeholder
	}
	return n.uploadedFile(s)
}

// Images expands one raw image-bearing value into renderable URLs. A
// comma-separated string is split and each part normalized.
func (n *Normalizer) Images(v any) []string {
	var out []string
	switch t := v.(type) {
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return nil
		}
		if isDataURL(t) {
			return []string{dataImage(t)}
		}
		for _, part := range strings.Split(t, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, n.Image(part))
			}
		}
	case []any:
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				out = append(out, Placeholder)
				continue
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			out = append(out, n.Images(s)...)
		}
	case []string:
		for _, s := range t {
			out = append(out, n.Images(s)...)
		}
	}
	return out
}

// itemImages picks the first image-bearing field that yields anything.
func (n *Normalizer) itemImages(raw map[string]any) []string {
	for _, f := range imageFields {
		v, ok := lookup(raw, f)
		if !ok {
			continue
		}
		if imgs := n.Images(v); len(imgs) > 0 {
			return imgs
		}
	}
	return []string{Placeholder}
}

func (n *Normalizer) uploadedFile(s string) string {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if !strings.HasPrefix(s, n.baseURL+"/") {
			return s
		}
	}

	name := strings.TrimPrefix(s, n.baseURL)
	for _, prefix := range []string{common.UploadsFilesPath, "/api/uploads/", "api/uploads/", "/uploads/", "uploads/"} {
		name = strings.TrimPrefix(name, prefix)
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return Placeholder
	}
	return n.baseURL + common.UploadsFilesPath + name
}

func isDataURL(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "data:")
}

// dataImage cleans a data URL. Only image media types survive.
func dataImage(s string) string {
	header, payload, ok := strings.Cut(s, ",")
	if !ok || !strings.HasPrefix(strings.ToLower(header), "data:image/") {
		return Placeholder
	}
	if !strings.HasSuffix(strings.ToLower(header), ";base64") {
		if strings.TrimSpace(payload) == "" {
			return Placeholder
		}
		return s
	}

	clean, ok := repad(payload)
	if !ok {
		return Placeholder
	}
	return header + "," + clean
}

// repad keeps only base64 alphabet characters (url-safe ones mapped to the
// standard alphabet) and pads to a multiple of 4. A remainder of one
// character cannot be valid base64.
func repad(payload string) (string, bool) {
	var b strings.Builder
	b.Grow(len(payload) + 3)
	for _, r := range payload {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '/':
			b.WriteRune(r)
		case r == '-':
			b.WriteByte('+')
		case r == '_':
			b.WriteByte('/')
		}
	}

	out := b.String()
	switch len(out) % 4 {
	case 0:
	case 2:
		out += "=="
	case 3:
		out += "="
	default:
		return "", false
	}
	if out == "" {
		return "", false
	}
	return out, true
}
