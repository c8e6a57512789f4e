package seed

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText converts raw file bytes to a UTF-8 string. UTF-16 input is
// recognized by its BOM; anything that is not valid UTF-8 falls back to
// Latin-1, which cannot fail.
func DecodeText(data []byte) (string, error) {
	if len(data) >= 2 {
		switch {
		case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
			return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM))
		case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
			return decodeWith(data, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM))
		}
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}

	return decodeWith(data, charmap.ISO8859_1)
}

func decodeWith(data []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
