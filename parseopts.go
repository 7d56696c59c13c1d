package exprtree

// ParseOption is an option for tokenizing and parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for one tokenize or parse call.
type parsectx struct {
	// strict indicates that unrecognized runes are errors rather than
	// ignored.
	strict bool
}

func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

type strictopt bool

// Strict tells the tokenizer to reject any rune that is not a digit, an
// operator, a parenthesis, or whitespace. The error is a *LexError.
func Strict() ParseOption {
	return strictopt(true)
}

// Lenient tells the tokenizer to skip unrecognized runes. This is the default;
// Lenient exists to override an earlier Strict.
func Lenient() ParseOption {
	return strictopt(false)
}

func (o strictopt) parseOption(p parsectx) parsectx {
	p.strict = bool(o)
	return p
}
