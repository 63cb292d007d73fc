package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// DefaultHeaderDelimiter is the comment character prefixing every header
// line unless configured otherwise.
const DefaultHeaderDelimiter = "#"

const (
	headerBeginMarker = "--- BEGIN FIXGEN LOCKFILE METADATA ---"
	headerEndMarker   = "--- END FIXGEN LOCKFILE METADATA ---"
)

// LockfileMetadata is the provenance stamped into a generated lockfile's
// header: a content fingerprint of the pinned requirement set and the
// format version of the header itself.
type LockfileMetadata struct {
	Version                 int    `json:"version"`
	RequirementsFingerprint string `json:"requirements_fingerprint"`
}

// NewLockfileMetadata computes metadata for a requirement set. The
// fingerprint covers every coordinate in declaration order.
func NewLockfileMetadata(requirements []Coordinate) LockfileMetadata {
	h := xxhash.New()
	for _, req := range requirements {
		_, _ = h.WriteString(req.String())
		_, _ = h.Write([]byte{0})
	}
	return LockfileMetadata{
		Version:                 1,
		RequirementsFingerprint: hexHash(h.Sum64()),
	}
}

// AddHeader prepends a re-strippable metadata header to a serialized
// lockfile body. Every header line starts with the delimiter; the body is
// preserved byte for byte after the end marker.
func (m LockfileMetadata) AddHeader(body []byte, regenerateCommand string, delimiter string) ([]byte, error) {
	if len(delimiter) != 1 {
		return nil, zerr.With(zerr.New("header delimiter must be a single character"), "delimiter", delimiter)
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode lockfile metadata")
	}

	var buf bytes.Buffer
	line := func(s string) {
		buf.WriteString(delimiter)
		if s != "" {
			buf.WriteByte(' ')
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
	}
	line(headerBeginMarker)
	line(string(encoded))
	line("")
	line("This lockfile was autogenerated. To regenerate, run:")
	line("")
	line("    " + regenerateCommand)
	line(headerEndMarker)
	buf.Write(body)
	return buf.Bytes(), nil
}

// StripLockfileHeader removes the metadata header added by AddHeader,
// returning the original body. Content without a header is returned
// unchanged, so StripLockfileHeader(AddHeader(x)) == x for all x.
func StripLockfileHeader(content []byte, delimiter string) []byte {
	meta, body, ok := splitHeader(content, delimiter)
	_ = meta
	if !ok {
		return content
	}
	return body
}

// ParseLockfileMetadata extracts the metadata from a stamped lockfile.
// The second return value reports whether a header was present.
func ParseLockfileMetadata(content []byte, delimiter string) (LockfileMetadata, bool) {
	meta, _, ok := splitHeader(content, delimiter)
	return meta, ok
}

// ValidFor reports whether an existing stamped lockfile is current for
// the given requirement set, by comparing fingerprints.
func ValidFor(existing []byte, requirements []Coordinate, delimiter string) bool {
	meta, ok := ParseLockfileMetadata(existing, delimiter)
	if !ok {
		return false
	}
	return meta.RequirementsFingerprint == NewLockfileMetadata(requirements).RequirementsFingerprint
}

func splitHeader(content []byte, delimiter string) (LockfileMetadata, []byte, bool) {
	if len(delimiter) != 1 {
		return LockfileMetadata{}, nil, false
	}
	begin := fmt.Sprintf("%s %s\n", delimiter, headerBeginMarker)
	if !bytes.HasPrefix(content, []byte(begin)) {
		return LockfileMetadata{}, nil, false
	}
	end := fmt.Sprintf("%s %s\n", delimiter, headerEndMarker)
	idx := bytes.Index(content, []byte(end))
	if idx < 0 {
		return LockfileMetadata{}, nil, false
	}
	header := content[len(begin):idx]
	body := content[idx+len(end):]

	// The metadata JSON is the first header line after the begin marker.
	var meta LockfileMetadata
	firstLine, _, _ := bytes.Cut(header, []byte{'\n'})
	firstLine = bytes.TrimPrefix(firstLine, []byte(delimiter))
	if err := json.Unmarshal(bytes.TrimSpace(firstLine), &meta); err != nil {
		return LockfileMetadata{}, body, true
	}
	return meta, body, true
}
