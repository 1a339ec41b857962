// Package textenc decodes raw bytes into text using an ordered list of
// candidate encodings, with a permissive single-byte fallback that
// accepts any input. It exists so the cleaning core can assume it always
// receives valid UTF-8 strings.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCandidates is the default probe order. Latin-1 never fails, so
// anything listed after it is unreachable unless the list is customized.
func DefaultCandidates() []string {
	return []string{"utf-8", "latin-1", "windows-1252", "utf-16", "ascii"}
}

// Decode tries each named candidate in order and returns the decoded text
// along with the name of the encoding that succeeded. If every candidate
// fails (or names is empty), the bytes are decoded as Latin-1, which maps
// every byte to a code point. Unknown candidate names are an error.
func Decode(data []byte, names []string) (text, used string, err error) {
	if len(names) == 0 {
		names = DefaultCandidates()
	}
	for _, name := range names {
		decoded, ok, err := tryDecode(data, name)
		if err != nil {
			return "", "", err
		}
		if ok {
			return decoded, name, nil
		}
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("latin-1 fallback decode: %w", err)
	}
	return string(out), "latin-1", nil
}

func tryDecode(data []byte, name string) (string, bool, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		if utf8.Valid(data) {
			return string(data), true, nil
		}
		return "", false, nil
	case "ascii":
		for _, b := range data {
			if b >= 0x80 {
				return "", false, nil
			}
		}
		return string(data), true, nil
	case "latin-1", "latin1", "iso-8859-1":
		return decodeCharmap(data, charmap.ISO8859_1)
	case "windows-1252", "cp1252":
		return decodeCharmap(data, charmap.Windows1252)
	case "utf-16", "utf16":
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(data)
		if err != nil || strings.ContainsRune(string(out), utf8.RuneError) {
			return "", false, nil
		}
		return string(out), true, nil
	default:
		return "", false, fmt.Errorf("unknown encoding %q", name)
	}
}

// decodeCharmap treats a decode that produced replacement runes as a
// failure so the next candidate gets a chance, mirroring strict decoders.
func decodeCharmap(data []byte, cm *charmap.Charmap) (string, bool, error) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", false, nil
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", false, nil
	}
	return s, true, nil
}
