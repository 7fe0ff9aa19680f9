package mimesniff

import (
	"mime"
	"strings"

	E "github.com/sagernet/sing-fetch/common/exceptions"
)

// MimeType is a parsed content type: an essence (type "/" subtype) plus
// parameters. Immutable once parsed.
type MimeType struct {
	mainType   string
	subType    string
	parameters map[string]string
}

// Parse parses a content type header value. Type, subtype and parameter
// names are normalized to lower case.
func Parse(contentType string) (*MimeType, error) {
	mediaType, parameters, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, E.Cause(err, "parse mime type")
	}
	mainType, subType, found := strings.Cut(mediaType, "/")
	if !found || mainType == "" || subType == "" {
		return nil, E.New("invalid mime essence: ", mediaType)
	}
	return &MimeType{mainType, subType, parameters}, nil
}

func (m *MimeType) Type() string {
	return m.mainType
}

func (m *MimeType) SubType() string {
	return m.subType
}

// Essence returns type "/" subtype.
func (m *MimeType) Essence() string {
	return m.mainType + "/" + m.subType
}

// Parameter returns the named parameter value, or an empty string when the
// parameter is absent.
func (m *MimeType) Parameter(name string) string {
	return m.parameters[strings.ToLower(name)]
}

// Serialized returns the full content type, essence plus parameters.
func (m *MimeType) Serialized() string {
	return mime.FormatMediaType(m.Essence(), m.parameters)
}
