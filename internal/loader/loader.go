// Package loader reads a markup document from a file, URL, or stream and
// hands it to the converter as decoded text. Decoding failures stop here;
// the converter only ever sees valid text.
package loader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"unicode/utf8"
)

const utf8BOM = "\xef\xbb\xbf"

// Load reads the document at ref, which may be a local path or an http(s)
// URL, and returns its decoded text.
func Load(ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return fetch(ref)
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", ref, err)
	}
	return decode(data, ref)
}

// Read consumes r to EOF and returns its decoded text. name is used in
// error messages only.
func Read(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return decode(data, name)
}

func fetch(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return decode(data, url)
}

func decode(data []byte, name string) (string, error) {
	text := strings.TrimPrefix(string(data), utf8BOM)
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", name)
	}
	return text, nil
}
