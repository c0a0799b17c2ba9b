package providers

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/voss-labs/modelgw/llm"
)

// ContentPart is one element of a multi-part message content array.
// ImageURL is kept raw: providers send either a bare URL string or an
// object with a "url" key.
type ContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL json.RawMessage `json:"image_url,omitempty"`
}

// ExtractContent splits raw message content into text and image artifacts.
//
// A plain JSON string is returned as-is with no images, no matter what it
// contains. An array of typed parts is walked in order: text/output_text
// parts concatenate into the content, image_url parts each yield one
// artifact. Anything unrecognized is skipped. A syntactically valid data URI
// whose base64 payload does not decode drops that image only; surrounding
// text and other images are unaffected.
func ExtractContent(raw json.RawMessage) (string, []llm.Image) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var parts []ContentPart
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", nil
	}

	var content strings.Builder
	var images []llm.Image
	for _, part := range parts {
		switch part.Type {
		case "text", "output_text":
			content.WriteString(part.Text)
		case "image_url":
			if img, ok := imageFromPart(part.ImageURL); ok {
				images = append(images, img)
			}
		}
	}
	return content.String(), images
}

// imageFromPart resolves the image_url field of a content part into an
// artifact. String form is always a remote URL. Object form decodes inline
// data URIs; URLs that merely start with "data:" but do not match the
// inline pattern stay remote references.
func imageFromPart(raw json.RawMessage) (llm.Image, bool) {
	if len(raw) == 0 {
		return llm.Image{}, false
	}

	var direct string
	if err := json.Unmarshal(raw, &direct); err == nil {
		if direct == "" {
			return llm.Image{}, false
		}
		return llm.Image{URL: direct}, true
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.URL == "" {
		return llm.Image{}, false
	}

	if _, _, isInline := splitDataURI(obj.URL); isInline {
		mime, data, ok := DecodeDataURI(obj.URL)
		if !ok {
			// corrupted payload, drop this image only
			return llm.Image{}, false
		}
		return llm.Image{MIMEType: mime, Content: data}, true
	}
	return llm.Image{URL: obj.URL}, true
}

// DecodeDataURI decodes a "data:<mime>;base64,<payload>" URI.
// ok is false when s does not match the pattern or the payload does not
// decode.
func DecodeDataURI(s string) (mime string, data []byte, ok bool) {
	mime, payload, ok := splitDataURI(s)
	if !ok {
		return "", nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	return mime, data, true
}

func splitDataURI(s string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return "", "", false
	}
	mime, payload, found = strings.Cut(rest, ";base64,")
	if !found || mime == "" {
		return "", "", false
	}
	return mime, payload, true
}

// ImagesFromExtra extracts the legacy extra-bag image list some gateways
// attach next to the message ("images": [...]). Entries follow the content
// part shape, or are bare URL strings. Unparseable entries are skipped.
func ImagesFromExtra(extra map[string]any) []llm.Image {
	if extra == nil {
		return nil
	}
	list, ok := extra["images"].([]any)
	if !ok {
		return nil
	}

	var images []llm.Image
	for _, entry := range list {
		if url, ok := entry.(string); ok {
			if url != "" {
				images = append(images, llm.Image{URL: url})
			}
			continue
		}
		data, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		var part ContentPart
		if err := json.Unmarshal(data, &part); err != nil {
			continue
		}
		if part.Type != "" && part.Type != "image_url" {
			continue
		}
		if img, ok := imageFromPart(part.ImageURL); ok {
			images = append(images, img)
		}
	}
	return images
}
