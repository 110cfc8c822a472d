package remedy

import "net/url"

// Option names one of the two alternatives offered for an over-limit post.
type Option int

const (
	OptionCondensed Option = iota
	OptionThread
)

func (o Option) String() string {
	switch o {
	case OptionCondensed:
		return "condensed"
	case OptionThread:
		return "thread"
	default:
		return "unknown"
	}
}

// Remediation holds both alternatives for one input. They are computed
// independently and share no state.
type Remediation struct {
	Original  string
	Length    int
	Over      bool
	Condensed string
	Thread    []string
	// Overflow lists indices of Thread parts longer than Limit once numbered.
	Overflow []int
}

// Advise computes the condensed and threaded forms of text.
func Advise(text string) Remediation {
	r := Remediation{
		Original:  text,
		Length:    Length(text),
		Over:      Over(text),
		Condensed: Condense(text),
		Thread:    Thread(text),
	}
	for i, part := range r.Thread {
		if Over(part) {
			r.Overflow = append(r.Overflow, i)
		}
	}
	return r
}

// Choose returns the text an editor should adopt for o. Picking the
// thread adopts its first part.
func (r Remediation) Choose(o Option) string {
	if o == OptionThread && len(r.Thread) > 0 {
		return r.Thread[0]
	}
	return r.Condensed
}

// IntentURL builds the share link that pre-fills a post with text.
func IntentURL(text string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "twitter.com",
		Path:     "/intent/tweet",
		RawQuery: url.Values{"text": {text}}.Encode(),
	}
	return u.String()
}
