// Package highlight renders unified patches to a terminal with syntax
// highlighting. Lexers are picked per file from "diff --git" headers; diff
// metadata (file headers, hunk markers) keeps plain diff coloring while the
// code on added/removed/context lines is tokenised and colored.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

// WritePatch writes patch to w with ANSI coloring. When color is false the
// patch passes through untouched.
func WritePatch(w io.Writer, patch string, dark, color bool) error {
	if !color {
		_, err := io.WriteString(w, patch)
		return err
	}
	style := styleFor(dark)
	formatter := formatters.TTY256
	var lexer chroma.Lexer
	for line := range strings.SplitSeq(patch, "\n") {
		if path, ok := diffPathFromLine(line); ok {
			lexer = nil
			if path != "" {
				lexer = lexerForPath(path)
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", ansiBold, line, ansiReset); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(w, line, lexer, style, formatter); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, line string, lexer chroma.Lexer, style *chroma.Style, formatter chroma.Formatter) error {
	if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
		_, err := fmt.Fprintf(w, "%s%s%s\n", ansiBold, line, ansiReset)
		return err
	}
	if strings.HasPrefix(line, "@@") {
		_, err := fmt.Fprintf(w, "%s%s%s\n", ansiCyan, line, ansiReset)
		return err
	}
	code, marker, ok := diffLineCode(line)
	if !ok || lexer == nil {
		_, err := fmt.Fprintln(w, line)
		return err
	}
	switch marker {
	case '+':
		if _, err := fmt.Fprintf(w, "%s+%s", ansiGreen, ansiReset); err != nil {
			return err
		}
	case '-':
		if _, err := fmt.Fprintf(w, "%s-%s", ansiRed, ansiReset); err != nil {
			return err
		}
	default:
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	if err := formatCode(w, code, lexer, style, formatter); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatCode(w io.Writer, code string, lexer chroma.Lexer, style *chroma.Style, formatter chroma.Formatter) error {
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		_, err := io.WriteString(w, code)
		return err
	}
	return formatter.Format(w, style, iterator)
}

func styleFor(dark bool) *chroma.Style {
	name := "github"
	if dark {
		name = "github-dark"
	}
	if st := styles.Get(name); st != nil {
		return st
	}
	return styles.Fallback
}

func lexerForPath(path string) chroma.Lexer {
	if path == "" {
		return nil
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// diffPathFromLine extracts the target path from a "diff --git a/x b/y"
// header.
func diffPathFromLine(line string) (string, bool) {
	const prefix = "diff --git "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	tokens := strings.Fields(strings.TrimSpace(line[len(prefix):]))
	if len(tokens) < 2 {
		return "", true
	}
	return normalizeDiffPath(tokens[len(tokens)-1]), true
}

func normalizeDiffPath(token string) string {
	token = strings.Trim(token, `"`)
	for _, prefix := range []string{"a/", "b/"} {
		if strings.HasPrefix(token, prefix) {
			return token[len(prefix):]
		}
	}
	return token
}

// diffLineCode splits a patch body line into its marker and code content.
// File headers and "\ No newline" markers are not code.
func diffLineCode(line string) (string, byte, bool) {
	if line == "" {
		return "", 0, false
	}
	switch line[0] {
	case '+', '-', ' ':
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			return "", 0, false
		}
		if strings.HasPrefix(line, "\\ ") {
			return "", 0, false
		}
		return line[1:], line[0], true
	default:
		return "", 0, false
	}
}
