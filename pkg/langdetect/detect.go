// Package langdetect decides whether a file holds LaTeX source.
// It uses go-enry for extension and content classification, backed by a
// few highly indicative LaTeX patterns for short or unusual files.
package langdetect

import (
	"bytes"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Language names reported by Detect.
const (
	LangTeX  = "tex"
	langText = "text"
)

// enryTeX is the linguist name for TeX and LaTeX sources.
const enryTeX = "TeX"

// sniffLimit bounds how much content is classified.
const sniffLimit = 16 * 1024

// texMarkers are LaTeX constructs that rarely appear in other languages.
//
//nolint:gochecknoglobals // Read-only marker table.
var texMarkers = [][]byte{
	[]byte(`\documentclass`),
	[]byte(`\begin{document}`),
	[]byte(`\usepackage`),
	[]byte(`\section{`),
	[]byte(`\begin{equation}`),
	[]byte(`\newcommand{`),
}

// Detect returns the detected language for a file.
// It returns "tex" for LaTeX sources and a lowercase linguist name or
// "text" otherwise.
func Detect(path string, content []byte) string {
	if IsTeX(path, content) {
		return LangTeX
	}
	if lang := enry.GetLanguage(filepath.Base(path), sniff(content)); lang != "" {
		return normalize(lang)
	}
	return langText
}

// IsTeX reports whether the file at path with the given content is LaTeX.
//
// Strategies, in order:
//  1. An unambiguous extension (.tex, .ltx, .sty, ...).
//  2. LaTeX marker commands in the content.
//  3. enry's full strategy chain (modelines, filenames, heuristics).
func IsTeX(path string, content []byte) bool {
	base := filepath.Base(path)

	if lang, safe := enry.GetLanguageByExtension(base); safe {
		return lang == enryTeX
	}

	content = sniff(content)
	if len(bytes.TrimSpace(content)) == 0 {
		return false
	}

	if hasTeXMarker(content) {
		return true
	}

	return enry.GetLanguage(base, content) == enryTeX
}

func hasTeXMarker(content []byte) bool {
	for _, marker := range texMarkers {
		if bytes.Contains(content, marker) {
			return true
		}
	}
	return false
}

func sniff(content []byte) []byte {
	if len(content) > sniffLimit {
		return content[:sniffLimit]
	}
	return content
}

// normalize converts enry language names to lowercase identifiers.
func normalize(lang string) string {
	if lang == enryTeX {
		return LangTeX
	}
	return string(bytes.ToLower([]byte(lang)))
}
