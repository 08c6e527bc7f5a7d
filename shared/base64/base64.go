package base64

import (
	"mime"
	"strings"
)

const dataURIPrefix = "data:"

// ContentType returns the lowercase media type of either a data URI
// ("data:image/png;base64,...") or a bare MIME value ("Image/PNG").
// Parameters such as charset are dropped. An unparsable value yields "".
func ContentType(value string) string {
	value = strings.TrimSpace(value)

	if strings.HasPrefix(value, dataURIPrefix) {
		end := strings.Index(value, ";base64,")
		if end == -1 {
			return ""
		}

		value = value[len(dataURIPrefix):end]
	}

	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil || !strings.Contains(mediaType, "/") {
		return ""
	}

	return mediaType
}
