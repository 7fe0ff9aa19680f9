package formdata

import (
	"net/url"
	"strings"

	E "github.com/sagernet/sing-fetch/common/exceptions"
)

// ParseURLEncoded parses an application/x-www-form-urlencoded payload,
// preserving entry order.
func ParseURLEncoded(data []byte) (*FormData, error) {
	formData := New()
	for _, pair := range strings.Split(string(data), "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		decodedName, err := url.QueryUnescape(name)
		if err != nil {
			return nil, E.Cause(err, "parse urlencoded form")
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, E.Cause(err, "parse urlencoded form")
		}
		formData.Append(decodedName, decodedValue)
	}
	return formData, nil
}
