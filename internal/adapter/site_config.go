package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
	"hqxbrute.dev/pkg/hqxbrute/pkg/binhex"
)

// WildcardCharset is the charset token that expands to DefaultCharset.
const WildcardCharset = "?"

// DefaultCharset is the guess set used for the wildcard charset: every
// character of the BinHex alphabet.
const DefaultCharset = binhex.Alphabet

// SiteConfigLoader loads the list of suspect positions for a search.
type SiteConfigLoader interface {
	// LoadSites parses the site file at path. Lines that cannot be parsed
	// are skipped and reported as warnings; only I/O failures are errors.
	LoadSites(ctx context.Context, path m.Path) (m.Sites, []m.ConfigWarning, error)
}

// LocalSiteConfigLoader reads site files from the local filesystem.
type LocalSiteConfigLoader struct{}

// NewLocalSiteConfigLoader constructs a LocalSiteConfigLoader.
func NewLocalSiteConfigLoader() *LocalSiteConfigLoader {
	return &LocalSiteConfigLoader{}
}

// LoadSites opens path and parses it with ParseSites.
func (l *LocalSiteConfigLoader) LoadSites(ctx context.Context, path m.Path) (m.Sites, []m.ConfigWarning, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("open site config: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return ParseSites(f, path)
}

// ParseSites reads one site per line in the form "<line>:<column> - <charset>".
// Blank lines and lines starting with '#' are ignored.
func ParseSites(r io.Reader, path m.Path) (m.Sites, []m.ConfigWarning, error) {
	var (
		sites    m.Sites
		warnings []m.ConfigWarning
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		site, reason := parseSiteLine(text)
		if reason != "" {
			warning := m.ConfigWarning{Path: path, Line: lineNo, Text: text, Reason: reason}
			slog.Warn("Skipping site config line", "path", path, "line", lineNo, "text", text, "reason", reason)
			warnings = append(warnings, warning)

			continue
		}

		sites = append(sites, site)
	}

	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("read site config: %w", err)
	}

	slog.Debug("Loaded site config", "path", path, "sites", len(sites), "warnings", len(warnings))

	return sites, warnings, nil
}

// parseSiteLine returns the parsed site, or a non-empty reason when the
// line is not valid.
func parseSiteLine(text string) (m.Site, string) {
	pos, charset, ok := strings.Cut(text, "-")
	if !ok {
		return m.Site{}, "line is not valid: missing '-' separator"
	}

	pos, charset = strings.TrimSpace(pos), strings.TrimSpace(charset)

	lineText, columnText, ok := strings.Cut(pos, ":")
	if !ok {
		return m.Site{}, "line is not valid: position must be <line>:<column>"
	}

	line, err := strconv.Atoi(strings.TrimSpace(lineText))
	if err != nil {
		return m.Site{}, fmt.Sprintf("line is not valid: bad line number %q", lineText)
	}

	column, err := strconv.Atoi(strings.TrimSpace(columnText))
	if err != nil {
		return m.Site{}, fmt.Sprintf("line is not valid: bad column number %q", columnText)
	}

	if line < 1 {
		return m.Site{}, fmt.Sprintf("line is not valid: line number %d must be at least 1", line)
	}

	if column < 0 {
		return m.Site{}, fmt.Sprintf("line is not valid: column %d must not be negative", column)
	}

	if charset == WildcardCharset {
		charset = DefaultCharset
	}

	if charset == "" {
		return m.Site{}, "line is not valid: empty charset"
	}

	for i := range len(charset) {
		if charset[i] > 0x7f {
			return m.Site{}, "line is not valid: charset must be ASCII"
		}
	}

	return m.Site{Line: line, Column: column, Alphabet: []byte(charset)}, ""
}
