package llm

// Image is one image artifact surfaced from a response. Exactly one
// representation is populated: inline (MIMEType + Content, decoded from a
// data URI) or remote (URL).
type Image struct {
	URL      string `json:"url,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
	Content  []byte `json:"content,omitempty"`
}

// Inline reports whether the artifact carries decoded bytes rather than a
// remote reference.
func (im Image) Inline() bool { return len(im.Content) > 0 || im.MIMEType != "" }
