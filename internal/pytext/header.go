package pytext

// DefHeader is the parsed shape of a definition header: the "def" or
// "class" keyword, the whitespace run after it, the entity name, and the
// raw text between the parentheses (if any).
type DefHeader struct {
	Keyword string // "def" or "class"
	Gap     int    // whitespace run length between keyword and name
	Name    string
	NameOff int    // offset of Name in the scanned text
	Args    string // raw argument text, "" when absent or empty
	ArgsOff int    // offset of Args in the scanned text, 0 when absent
}

// ScanDefHeader recognizes a definition header in text and returns its
// parts, or nil when text is not a header. The shape is: optional leading
// spaces, "def" or "class", a whitespace run, an identifier, an optional
// balanced parenthesized argument list, and a colon directly after.
//
// This is a hand-written scanner rather than a regular expression so that
// the balanced-parenthesis capture is explicit: headers whose argument list
// contains default expressions ("def f(x=1):") are recognized. The
// parenthesis scan does not understand string literals; callers hand it
// masked text when that matters.
func ScanDefHeader(text string) *DefHeader {
	i := 0
	for i < len(text) && text[i] == ' ' {
		i++
	}

	var keyword string
	switch {
	case hasWord(text, i, "def"):
		keyword = "def"
	case hasWord(text, i, "class"):
		keyword = "class"
	default:
		return nil
	}
	i += len(keyword)

	gap := 0
	for i < len(text) && isSpace(text[i]) {
		i++
		gap++
	}
	if gap == 0 {
		return nil
	}

	nameOff := i
	for i < len(text) && isWordByte(text[i]) {
		i++
	}
	if i == nameOff {
		return nil
	}
	name := text[nameOff:i]

	args := ""
	argsOff := 0
	if i < len(text) && text[i] == '(' {
		depth := 1
		j := i + 1
		for j < len(text) && depth > 0 {
			switch text[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			j++
		}
		if depth != 0 {
			return nil
		}
		argsOff = i + 1
		args = text[argsOff : j-1]
		i = j
	}

	if i >= len(text) || text[i] != ':' {
		return nil
	}

	return &DefHeader{
		Keyword: keyword,
		Gap:     gap,
		Name:    name,
		NameOff: nameOff,
		Args:    args,
		ArgsOff: argsOff,
	}
}

// hasWord reports whether text has the given word at offset i, followed by
// a non-word byte or end of text.
func hasWord(text string, i int, word string) bool {
	if len(text)-i < len(word) || text[i:i+len(word)] != word {
		return false
	}
	rest := i + len(word)
	return rest == len(text) || !isWordByte(text[rest])
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
