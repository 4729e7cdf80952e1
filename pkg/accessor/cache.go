package accessor

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// LineFingerprint is a blake2b-256 digest of a line's content, used to
// detect whether a line actually changed between two coloring passes.
// Grounded on runtime/scrubber/scrubber.go and core/planfmt/idfactory.go,
// which both fingerprint byte spans with blake2b rather than hand-rolling a
// checksum.
type LineFingerprint [32]byte

// Fingerprint hashes a single line's bytes.
func Fingerprint(line []byte) LineFingerprint {
	return blake2b.Sum256(line)
}

// CachedLine is one entry of a persisted SessionCache.
type CachedLine struct {
	Fingerprint LineFingerprint
	LineState   int
	FoldLevel   int
}

// SessionCache persists per-line resume state and fold levels keyed by line
// fingerprint. cmd/edlex watch writes an entry for every line after each
// pass; it does not look entries up, so no line is skipped from
// re-coloring because of the cache.
type SessionCache struct {
	Version int
	Lines   []CachedLine
}

// LoadSessionCache reads a SessionCache from a CBOR file. A missing file is not an
// error - it just means there is nothing to reuse yet.
func LoadSessionCache(path string) (*SessionCache, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &SessionCache{Version: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("edlex: reading session cache: %w", err)
	}
	var cache SessionCache
	if err := cbor.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("edlex: decoding session cache: %w", err)
	}
	return &cache, nil
}

// Save writes the cache back to path as CBOR.
func (c *SessionCache) Save(path string) error {
	data, err := cbor.Marshal(c)
	if err != nil {
		return fmt.Errorf("edlex: encoding session cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("edlex: writing session cache: %w", err)
	}
	return nil
}

// Lookup returns the cached entry for fp, if any.
func (c *SessionCache) Lookup(fp LineFingerprint) (CachedLine, bool) {
	for _, l := range c.Lines {
		if l.Fingerprint == fp {
			return l, true
		}
	}
	return CachedLine{}, false
}

// Put records or replaces the cached entry for a fingerprint.
func (c *SessionCache) Put(fp LineFingerprint, lineState, foldLevel int) {
	for i := range c.Lines {
		if c.Lines[i].Fingerprint == fp {
			c.Lines[i].LineState = lineState
			c.Lines[i].FoldLevel = foldLevel
			return
		}
	}
	c.Lines = append(c.Lines, CachedLine{Fingerprint: fp, LineState: lineState, FoldLevel: foldLevel})
}
