package formdata

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"

	E "github.com/sagernet/sing-fetch/common/exceptions"
)

// ParseMultipart parses a multipart/form-data payload with the given
// boundary.
func ParseMultipart(data []byte, boundary string) (*FormData, error) {
	if boundary == "" {
		return nil, E.New("missing multipart boundary")
	}
	reader := multipart.NewReader(bytes.NewReader(data), boundary)
	formData := New()
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return formData, nil
		}
		if err != nil {
			return nil, E.Cause(err, "parse multipart form")
		}
		content, err := io.ReadAll(part)
		if err != nil {
			return nil, E.Cause(err, "read multipart part")
		}
		if filename := part.FileName(); filename != "" {
			formData.AppendFile(part.FormName(), filename, part.Header.Get("Content-Type"), content)
		} else {
			formData.Append(part.FormName(), string(content))
		}
	}
}

// EncodeMultipart serializes the entry list as multipart/form-data with a
// generated boundary, returning the payload and its content type.
func (f *FormData) EncodeMultipart() ([]byte, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	for _, entry := range f.entries {
		if entry.IsFile() {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", "form-data; name="+strconv.Quote(entry.Name)+"; filename="+strconv.Quote(entry.Filename))
			if entry.ContentType != "" {
				header.Set("Content-Type", entry.ContentType)
			}
			part, err := writer.CreatePart(header)
			if err != nil {
				return nil, "", E.Cause(err, "encode multipart form")
			}
			_, err = part.Write(entry.Value)
			if err != nil {
				return nil, "", E.Cause(err, "encode multipart form")
			}
		} else {
			err := writer.WriteField(entry.Name, string(entry.Value))
			if err != nil {
				return nil, "", E.Cause(err, "encode multipart form")
			}
		}
	}
	err := writer.Close()
	if err != nil {
		return nil, "", E.Cause(err, "encode multipart form")
	}
	return buffer.Bytes(), writer.FormDataContentType(), nil
}
