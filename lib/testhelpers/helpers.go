package testhelpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/weit-project/eit-toolkit/lib/annotation"
)

// Tok builds a token; syllables < 0 leaves the count unknown.
func Tok(text, lemma string, pos annotation.POS, syllables int) annotation.Token {
	token := annotation.Token{Text: text, Lemma: lemma, POS: pos}
	if syllables >= 0 {
		token.Syllables = annotation.Syl(syllables)
	}
	return token
}

// Annotator answers from a fixed table and records how often each sentence was annotated.
type Annotator struct {
	mut       sync.Mutex
	sentences map[string][]annotation.Token
	errs      map[string]error
	calls     map[string]int
}

func NewAnnotator() *Annotator {
	return &Annotator{
		sentences: map[string][]annotation.Token{},
		errs:      map[string]error{},
		calls:     map[string]int{},
	}
}

func (a *Annotator) Add(sentence string, tokens ...annotation.Token) *Annotator {
	a.mut.Lock()
	defer a.mut.Unlock()
	a.sentences[sentence] = tokens
	return a
}

func (a *Annotator) Fail(sentence string, err error) *Annotator {
	a.mut.Lock()
	defer a.mut.Unlock()
	a.errs[sentence] = err
	return a
}

func (a *Annotator) Calls(sentence string) int {
	a.mut.Lock()
	defer a.mut.Unlock()
	return a.calls[sentence]
}

func (a *Annotator) Annotate(_ context.Context, sentence string) (*annotation.Sentence, error) {
	a.mut.Lock()
	defer a.mut.Unlock()
	a.calls[sentence]++

	if err, ok := a.errs[sentence]; ok {
		return nil, err
	}
	tokens, ok := a.sentences[sentence]
	if !ok {
		return nil, fmt.Errorf("no annotation for %q", sentence)
	}
	return &annotation.Sentence{Text: sentence, Tokens: tokens}, nil
}
