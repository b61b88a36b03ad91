// Package extractor turns individual files into labeled text fragments.
//
// Document files (.md, .txt by default) are emitted verbatim. Source files
// (.py, .js, .cpp, .c, .java by default) contribute only the lines that,
// after leading whitespace, start with "#", "//" or "/*". This is a line
// prefix heuristic, not a lexer: continuation lines of a block comment that
// carry no marker of their own are dropped, and a "#include" line counts as
// a comment. Every other file is skipped.
package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/utils"
)

// Default extension sets
var (
	DefaultDocumentExtensions = []string{".md", ".txt"}
	DefaultSourceExtensions   = []string{".py", ".js", ".cpp", ".c", ".java"}
)

// commentPrefixes are the markers a trimmed line must start with
var commentPrefixes = []string{"#", "//", "/*"}

// Extractor classifies and extracts files
type Extractor struct {
	documents   map[string]bool
	sources     map[string]bool
	maxFileSize int64
	logger      *utils.Logger
}

// Options contains options for the extractor
type Options struct {
	DocumentExtensions []string
	SourceExtensions   []string
	MaxFileSize        int64 // Opt-in; larger files are skipped. 0 disables the limit
	Logger             *utils.Logger
}

// New creates an extractor. With no extensions configured at all the
// default sets are used.
func New(opts Options) *Extractor {
	docs, srcs := opts.DocumentExtensions, opts.SourceExtensions
	if len(docs) == 0 && len(srcs) == 0 {
		docs, srcs = DefaultDocumentExtensions, DefaultSourceExtensions
	}
	return &Extractor{
		documents:   toSet(docs),
		sources:     toSet(srcs),
		maxFileSize: opts.MaxFileSize,
		logger:      opts.Logger,
	}
}

func toSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// Classify returns the kind of path based on its lowercased extension
func (e *Extractor) Classify(path string) domain.Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case e.documents[ext]:
		return domain.KindDocument
	case e.sources[ext]:
		return domain.KindSource
	}
	return domain.KindSkip
}

// ExtractFragment reads path and returns its fragment, or nil when the file
// is skipped or yields an empty body.
func (e *Extractor) ExtractFragment(path string) (*domain.Fragment, error) {
	kind := e.Classify(path)
	if kind == domain.KindSkip {
		return nil, nil
	}

	if e.maxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > e.maxFileSize {
			if e.logger != nil {
				e.logger.Warn().Str("file", path).Int64("size", info.Size()).Msg("Skipping file over extract.max_file_size")
			}
			return nil, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := Decode(content)

	body := text
	if kind == domain.KindSource {
		body = CommentLines(text)
	}
	if body == "" {
		return nil, nil
	}

	return &domain.Fragment{
		Name: filepath.Base(path),
		Path: path,
		Kind: kind,
		Body: body,
	}, nil
}

// Extract returns the rendered fragment for path, or "" when nothing qualifies
func (e *Extractor) Extract(path string) (string, error) {
	frag, err := e.ExtractFragment(path)
	if err != nil {
		return "", err
	}
	return frag.Text(), nil
}

// Decode converts raw bytes to text, dropping invalid UTF-8 sequences
func Decode(content []byte) string {
	return strings.ToValidUTF8(string(content), "")
}

// CommentLines keeps the comment lines of text in order. "\n", "\r\n" and a
// lone "\r" all end a line; each kept line retains its own terminator.
func CommentLines(text string) string {
	var sb strings.Builder
	for len(text) > 0 {
		n := lineLen(text)
		if line := text[:n]; IsCommentLine(line) {
			sb.WriteString(line)
		}
		text = text[n:]
	}
	return sb.String()
}

// lineLen returns the length of the first line of text, terminator included
func lineLen(text string) int {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return len(text)
	case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
		return i + 2
	}
	return i + 1
}

// IsCommentLine reports whether line starts with a comment marker after
// leading whitespace
func IsCommentLine(line string) bool {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// FormatFragment renders name and body in artifact form
func FormatFragment(name, body string) string {
	return (&domain.Fragment{Name: name, Body: body}).Text()
}
