package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout  = 2 * time.Second
	DefaultCacheTTL = 30 * time.Minute
)

var errEmptyLabel = errors.New("classifier returned an empty label")

type AdapterOptions struct {
	Timeout  time.Duration
	CacheTTL time.Duration
	Log      *logrus.Logger
}

// Adapter turns a fallible Classifier into one that always answers.
// Any error, panic, timeout or empty label becomes Uncategorized.
// Successful labels are cached per normalized description.
type Adapter struct {
	classifier Classifier
	timeout    time.Duration
	cache      *cache.Cache
	log        *logrus.Logger
}

// NewAdapter accepts a nil classifier; every description is then Uncategorized.
func NewAdapter(classifier Classifier, opts AdapterOptions) *Adapter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return &Adapter{
		classifier: classifier,
		timeout:    opts.Timeout,
		cache:      cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		log:        opts.Log,
	}
}

func (a *Adapter) Categorize(ctx context.Context, description string) string {
	if a.classifier == nil {
		return Uncategorized
	}

	key := strings.ToLower(strings.Join(strings.Fields(description), " "))
	if cached, ok := a.cache.Get(key); ok {
		return cached.(string)
	}

	label, err := a.classify(ctx, description)
	if err != nil {
		a.log.WithError(err).WithField("description", description).Debug("Classifier.Categorize.Fallback")
		return Uncategorized
	}

	a.cache.SetDefault(key, label)
	return label
}

type classifyResult struct {
	label string
	err   error
}

func (a *Adapter) classify(ctx context.Context, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	done := make(chan classifyResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- classifyResult{err: fmt.Errorf("classifier panic: %v", r)}
			}
		}()
		label, err := a.classifier.Classify(ctx, description)
		done <- classifyResult{label: label, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		label := strings.TrimSpace(res.label)
		if label == "" {
			return "", errEmptyLabel
		}
		return label, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
