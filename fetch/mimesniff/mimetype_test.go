package mimesniff_test

import (
	"testing"

	"github.com/sagernet/sing-fetch/fetch/mimesniff"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	mimeType, err := mimesniff.Parse("Text/HTML;Charset=UTF-8")
	require.NoError(t, err)
	require.Equal(t, "text", mimeType.Type())
	require.Equal(t, "html", mimeType.SubType())
	require.Equal(t, "text/html", mimeType.Essence())
	require.Equal(t, "UTF-8", mimeType.Parameter("charset"))
}

func TestParseBoundary(t *testing.T) {
	t.Parallel()
	mimeType, err := mimesniff.Parse(`multipart/form-data; boundary="xYzZY"`)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mimeType.Essence())
	require.Equal(t, "xYzZY", mimeType.Parameter("boundary"))
	require.Empty(t, mimeType.Parameter("missing"))
}

func TestSerialized(t *testing.T) {
	t.Parallel()
	mimeType, err := mimesniff.Parse("text/plain; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, "text/plain; charset=utf-8", mimeType.Serialized())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	for _, invalid := range []string{"", "text", "/plain", "text/", "text plain"} {
		_, err := mimesniff.Parse(invalid)
		require.Error(t, err, invalid)
	}
}
