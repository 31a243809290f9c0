package tokencount

import (
	"github.com/pkoukk/tiktoken-go"

	"github.com/katalvlaran/ressplit/core"
)

// Counter counts tokens the way the target model's tokenizer would, so
// resources built from it carry weights comparable to a model's context
// window rather than a caller-chosen proxy unit (bytes, runes, lines).
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter loads a named encoding (e.g. "cl100k_base").
func NewCounter(encodingName string) (*Counter, error) {
	if encodingName == "" {
		return nil, ErrEmptyEncoding
	}
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &Counter{enc: enc}, nil
}

// NewCounterForModel loads whichever encoding the named model uses (e.g.
// "gpt-4", "gpt-3.5-turbo").
func NewCounterForModel(model string) (*Counter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, err
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens text encodes to. Special tokens found
// in text are treated as ordinary text rather than rejected.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// Resource builds a core.Resource whose Count is text's token count under
// this Counter, carrying payload through unexamined as ressplit requires.
func Resource[P any](c *Counter, text string, start, end core.Incision, payload P) core.Resource[P] {
	return core.Resource[P]{
		Count:         c.Count(text),
		StartIncision: start,
		EndIncision:   end,
		Payload:       payload,
	}
}
