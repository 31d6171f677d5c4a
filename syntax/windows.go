package syntax

import "strings"

type windowsFlavor struct{}

func (windowsFlavor) Separator() byte    { return '\\' }
func (windowsFlavor) AltSeparator() byte { return '/' }

// toSep replaces alternate separators with the canonical one.
func toSep(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}

// hasDrive reports whether s begins with a drive letter specification.
func hasDrive(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (windowsFlavor) Split(s string) (string, []string) {
	s = toSep(s)
	root := ""
	rest := s
	switch {
	case strings.HasPrefix(s, `\\`):
		// UNC share. The host and share name form the anchor, which
		// always renders with a trailing separator.
		host, tail, _ := strings.Cut(s[2:], `\`)
		share, tail2, _ := strings.Cut(tail, `\`)
		root = `\\` + host + `\` + share + `\`
		rest = tail2
	case hasDrive(s):
		if len(s) > 2 && s[2] == '\\' {
			root = s[:3]
			rest = s[3:]
		} else {
			// Drive-relative path such as "c:a".
			root = s[:2]
			rest = s[2:]
		}
	case strings.HasPrefix(s, `\`):
		root = `\`
		rest = s[1:]
	}
	var parts []string
	for seg := range strings.SplitSeq(rest, `\`) {
		if seg == "" || seg == "." {
			continue
		}
		parts = append(parts, seg)
	}
	return root, parts
}

// driveOf returns the drive letter or UNC share prefix of s, or "".
func driveOf(s string) string {
	if hasDrive(s) {
		return s[:2]
	}
	if strings.HasPrefix(s, `\\`) {
		host, tail, _ := strings.Cut(s[2:], `\`)
		share, _, _ := strings.Cut(tail, `\`)
		return `\\` + host + `\` + share
	}
	return ""
}

func (windowsFlavor) Join(fragments ...string) string {
	joined := ""
	for _, frag := range fragments {
		if frag == "" {
			continue
		}
		frag = toSep(frag)
		switch {
		case joined == "":
			joined = frag
		case hasDrive(frag) || strings.HasPrefix(frag, `\\`):
			joined = frag
		case strings.HasPrefix(frag, `\`):
			// Rooted but drive-less: the current drive is kept.
			joined = driveOf(joined) + frag
		case strings.HasSuffix(joined, `\`) || strings.HasSuffix(joined, ":"):
			joined += frag
		default:
			joined += `\` + frag
		}
	}
	return joined
}

func (windowsFlavor) NormCase(s string) string {
	return strings.ToLower(toSep(s))
}

func (windowsFlavor) IsAbsolute(root string) bool {
	return strings.HasSuffix(root, `\`) && root != `\`
}
