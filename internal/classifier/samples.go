package classifier

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var seedSamples []byte

// Sample is one labeled description.
type Sample struct {
	Description string
	Category    string
}

type sampleGroup struct {
	Category     string   `yaml:"category"`
	Descriptions []string `yaml:"descriptions"`
}

// LoadSamples reads a YAML list of {category, descriptions} groups.
func LoadSamples(r io.Reader) ([]Sample, error) {
	var groups []sampleGroup
	if err := yaml.NewDecoder(r).Decode(&groups); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}

	var samples []Sample
	for i, group := range groups {
		category := strings.TrimSpace(group.Category)
		if category == "" {
			return nil, fmt.Errorf("sample group %d has no category", i)
		}
		for _, description := range group.Descriptions {
			samples = append(samples, Sample{Description: description, Category: category})
		}
	}
	return samples, nil
}

// SeedSamples returns the built in training set.
func SeedSamples() []Sample {
	samples, err := LoadSamples(strings.NewReader(string(seedSamples)))
	if err != nil {
		panic(fmt.Sprintf("embedded samples.yaml is invalid: %v", err))
	}
	return samples
}
