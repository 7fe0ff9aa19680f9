package fetch

import (
	"bytes"
	"encoding/json"

	E "github.com/sagernet/sing-fetch/common/exceptions"
	"github.com/sagernet/sing-fetch/common/promise"
	"github.com/sagernet/sing-fetch/common/task"
	form "github.com/sagernet/sing-fetch/fetch/formdata"

	"golang.org/x/text/encoding/unicode"
)

// ArrayBuffer wraps fully read body bytes verbatim as a binary buffer value.
type ArrayBuffer struct {
	data []byte
}

func (b *ArrayBuffer) Bytes() []byte {
	return b.data
}

func (b *ArrayBuffer) Len() int {
	return len(b.data)
}

// Blob wraps body bytes together with a serialized content type.
type Blob struct {
	data        []byte
	contentType string
}

func (b *Blob) Bytes() []byte {
	return b.data
}

func (b *Blob) Size() int {
	return len(b.data)
}

func (b *Blob) ContentType() string {
	return b.contentType
}

const (
	essenceMultipart  = "multipart/form-data"
	essenceURLEncoded = "application/x-www-form-urlencoded"
)

// ConsumeArrayBuffer consumes the holder's body as a raw binary buffer.
func ConsumeArrayBuffer(holder BodyHolder, destination *task.Destination) *promise.Promise[*ArrayBuffer] {
	return ConsumeBody(holder, destination, func(data []byte) (*ArrayBuffer, error) {
		return &ArrayBuffer{data: data}, nil
	})
}

// ConsumeBlob consumes the holder's body as a blob typed with the holder's
// serialized MIME type. Absent MIME information yields an empty type string,
// not an error.
func ConsumeBlob(holder BodyHolder, destination *task.Destination) *promise.Promise[*Blob] {
	var contentType string
	if mimeType := holder.MimeType(); mimeType != nil {
		contentType = mimeType.Serialized()
	}
	return ConsumeBody(holder, destination, func(data []byte) (*Blob, error) {
		return &Blob{data: data, contentType: contentType}, nil
	})
}

// ConsumeFormData consumes the holder's body as a form entry list. Only the
// multipart/form-data and application/x-www-form-urlencoded essences are
// supported; anything else, including absent MIME information, fails with
// ErrUnsupportedContentType.
func ConsumeFormData(holder BodyHolder, destination *task.Destination) *promise.Promise[*form.FormData] {
	mimeType := holder.MimeType()
	return ConsumeBody(holder, destination, func(data []byte) (*form.FormData, error) {
		if mimeType == nil {
			return nil, ErrUnsupportedContentType
		}
		switch mimeType.Essence() {
		case essenceMultipart:
			return form.ParseMultipart(data, mimeType.Parameter("boundary"))
		case essenceURLEncoded:
			return form.ParseURLEncoded(data)
		default:
			return nil, ErrUnsupportedContentType
		}
	})
}

// ConsumeJSON consumes the holder's body as a structured value.
func ConsumeJSON(holder BodyHolder, destination *task.Destination) *promise.Promise[any] {
	return ConsumeBody(holder, destination, func(data []byte) (any, error) {
		var value any
		err := json.Unmarshal(data, &value)
		if err != nil {
			return nil, E.Cause(err, "parse json")
		}
		return value, nil
	})
}

// ConsumeText consumes the holder's body as text: UTF-8 decoded lossily,
// with a leading byte order mark removed.
func ConsumeText(holder BodyHolder, destination *task.Destination) *promise.Promise[string] {
	return ConsumeBody(holder, destination, func(data []byte) (string, error) {
		return decodeText(data), nil
	})
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
