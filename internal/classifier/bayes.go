package classifier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/jbrukh/bayesian"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {}, "from": {},
	"in": {}, "of": {}, "on": {}, "the": {}, "through": {}, "to": {}, "via": {}, "with": {},
}

// Terms lowercases text, drops punctuation and stop words, and emits unigrams
// followed by adjacent bigrams.
func Terms(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if _, stop := stopWords[word]; !stop {
			words = append(words, word)
		}
	}

	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 1; i < len(words); i++ {
		terms = append(terms, words[i-1]+" "+words[i])
	}
	return terms
}

// BayesClassifier is a TF-IDF naive Bayes model. The zero value is untrained.
type BayesClassifier struct {
	mu         sync.RWMutex
	model      *bayesian.Classifier
	vocabulary map[string]struct{}
}

func NewBayesClassifier() *BayesClassifier {
	return &BayesClassifier{}
}

// Train replaces the current model with one learned from samples.
func (b *BayesClassifier) Train(samples []Sample) error {
	var classes []bayesian.Class
	seen := make(map[string]bool)
	for _, s := range samples {
		if !seen[s.Category] {
			seen[s.Category] = true
			classes = append(classes, bayesian.Class(s.Category))
		}
	}
	if len(classes) < 2 {
		return fmt.Errorf("train: need at least two categories, got %d", len(classes))
	}

	model := bayesian.NewClassifierTfIdf(classes...)
	for _, s := range samples {
		terms := Terms(s.Description)
		if len(terms) == 0 {
			continue
		}
		model.Learn(terms, bayesian.Class(s.Category))
	}
	model.ConvertTermsFreqToTfIdf()

	b.swap(model)
	return nil
}

// LoadModel reads a model written by Save. A missing file is ErrModelNotTrained.
func (b *BayesClassifier) LoadModel(path string) error {
	model, err := bayesian.NewClassifierFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s not found", ErrModelNotTrained, path)
	}
	if err != nil {
		return fmt.Errorf("load model %s: %w", path, err)
	}

	b.swap(model)
	return nil
}

func (b *BayesClassifier) Save(path string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.model == nil {
		return ErrModelNotTrained
	}

	tmp := path + ".tmp"
	if err := b.model.WriteToFile(tmp); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// Categories lists the labels the model can produce.
func (b *BayesClassifier) Categories() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.model == nil {
		return nil
	}
	categories := make([]string, len(b.model.Classes))
	for i, class := range b.model.Classes {
		categories[i] = string(class)
	}
	return categories
}

func (b *BayesClassifier) Classify(_ context.Context, description string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.model == nil {
		return "", ErrModelNotTrained
	}

	terms := Terms(description)
	if len(terms) == 0 {
		return "", ErrEmptyDescription
	}

	known := terms[:0]
	for _, term := range terms {
		if _, ok := b.vocabulary[term]; ok {
			known = append(known, term)
		}
	}
	if len(known) == 0 {
		return "", ErrUnknownVocabulary
	}

	_, best, strict := b.model.LogScores(known)
	if !strict {
		return "", ErrAmbiguous
	}
	return string(b.model.Classes[best]), nil
}

func (b *BayesClassifier) swap(model *bayesian.Classifier) {
	vocabulary := make(map[string]struct{})
	for _, class := range model.Classes {
		for term := range model.WordsByClass(class) {
			vocabulary[term] = struct{}{}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = model
	b.vocabulary = vocabulary
}
