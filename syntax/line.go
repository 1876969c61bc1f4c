package syntax

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`@[A-Za-z0-9][A-Za-z0-9_-]*`)

// ClassifyLine classifies one raw line of text. number is the 1-based
// line number recorded on the result.
//
// Classification is total: there is no malformed input. Tokens that look
// like attributes but are not (such as "(AB)" or an unterminated "[x")
// end attribute scanning and become body text.
func ClassifyLine(number int, raw string) Line {
	raw = strings.TrimSuffix(raw, "\r")

	content, comment, hasComment := splitComment(raw)

	depth := 0
	for depth < len(content) && content[depth] == '\t' {
		depth++
	}

	line := Line{
		Number:     number,
		Depth:      depth,
		Kind:       LineContent,
		Comment:    comment,
		HasComment: hasComment,
	}

	rest := content[depth:]
	pos := skipSpaces(rest, 0)

	if pos < len(rest) {
		if status, ok := StatusForSymbol(rest[pos]); ok {
			line.Status = status
			pos++
		}
	}

	for {
		pos = skipSpaces(rest, pos)
		attr, width, ok := scanAttr(rest[pos:])
		if !ok {
			break
		}
		line.Attrs = append(line.Attrs, attr)
		pos += width
	}

	line.Body = strings.TrimRight(rest[pos:], " \t")
	for _, match := range tagPattern.FindAllString(line.Body, -1) {
		line.Tags = append(line.Tags, match[1:])
	}

	if line.Status == "" && len(line.Attrs) == 0 && line.Body == "" {
		if hasComment {
			line.Kind = LineComment
		} else {
			line.Kind = LineBlank
		}
	}

	return line
}

// ClassifyLines classifies every line of text, numbering from first.
// Empty text yields no lines.
func ClassifyLines(text string, first int) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, value := range raw {
		lines[i] = ClassifyLine(first+i, value)
	}
	return lines
}

// splitComment splits a line at the first unescaped comment marker.
func splitComment(raw string) (content, comment string, found bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '#' {
			continue
		}
		if i > 0 && raw[i-1] == '\\' {
			continue
		}
		return raw[:i], strings.TrimSpace(raw[i+1:]), true
	}
	return raw, "", false
}

func skipSpaces(value string, pos int) int {
	for pos < len(value) && value[pos] == ' ' {
		pos++
	}
	return pos
}

// scanAttr matches a single attribute token at the start of value. width
// is the number of bytes consumed on success.
func scanAttr(value string) (attr Attr, width int, ok bool) {
	if value == "" {
		return Attr{}, 0, false
	}

	switch value[0] {
	case '(':
		end := strings.IndexByte(value, ')')
		if end < 0 {
			return Attr{}, 0, false
		}
		inner := value[1:end]
		if len(inner) == 1 && inner[0] >= 'A' && inner[0] <= 'Z' {
			return Attr{Kind: AttrPriority, Priority: inner[0]}, end + 1, true
		}
		if due, parsed := ParseDate(inner); parsed {
			return Attr{Kind: AttrDue, Due: due}, end + 1, true
		}
		return Attr{}, 0, false

	case '[':
		end := strings.IndexByte(value, ']')
		if end < 0 {
			return Attr{}, 0, false
		}
		inner := value[1:end]
		if inner == "" || strings.ContainsAny(inner, "[#") {
			return Attr{}, 0, false
		}
		return Attr{Kind: AttrCategory, Category: inner}, end + 1, true
	}

	return Attr{}, 0, false
}
