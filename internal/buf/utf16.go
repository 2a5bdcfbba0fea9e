package buf

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE converts REG_SZ payload bytes into a UTF-8 string. The data
// is cut at the first NUL code unit, which also drops the terminator the
// registry stores with the string.
func DecodeUTF16LE(data []byte) (string, error) {
	if len(data)%2 != 0 {
		// Some writers omit half of the terminator; ignore the stray byte.
		data = data[:len(data)-1]
	}
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			data = data[:i]
			break
		}
	}
	if len(data) == 0 {
		return "", nil
	}
	out, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode utf-16le: %w", err)
	}
	return string(out), nil
}

// EncodeUTF16LE converts s into NUL-terminated UTF-16LE bytes, the layout of
// REG_SZ data.
func EncodeUTF16LE(s string) ([]byte, error) {
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16le: %w", err)
	}
	return append(bytes.Clone(out), 0, 0), nil
}
