package syntax

import "strings"

type posixFlavor struct{}

func (posixFlavor) Separator() byte    { return '/' }
func (posixFlavor) AltSeparator() byte { return 0 }

func (posixFlavor) Split(s string) (string, []string) {
	root := ""
	if strings.HasPrefix(s, "/") {
		root = "/"
		// Exactly two leading separators denote a distinct root;
		// three or more collapse back to one.
		if strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "///") {
			root = "//"
		}
	}
	var parts []string
	for seg := range strings.SplitSeq(s[len(root):], "/") {
		if seg == "" || seg == "." {
			continue
		}
		parts = append(parts, seg)
	}
	return root, parts
}

func (posixFlavor) Join(fragments ...string) string {
	joined := ""
	for _, frag := range fragments {
		switch {
		case frag == "":
		case strings.HasPrefix(frag, "/"):
			joined = frag
		case joined == "":
			joined = frag
		case strings.HasSuffix(joined, "/"):
			joined += frag
		default:
			joined += "/" + frag
		}
	}
	return joined
}

func (posixFlavor) NormCase(s string) string { return s }

func (posixFlavor) IsAbsolute(root string) bool { return root != "" }
