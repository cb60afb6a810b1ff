package classifier

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// LoadOrTrain loads the model at path. When no model has been saved yet it
// trains one from the embedded seed samples instead.
func LoadOrTrain(path string, log *logrus.Logger) (*BayesClassifier, error) {
	model := NewBayesClassifier()
	err := model.LoadModel(path)
	if err == nil {
		log.WithField("path", path).Info("Classifier.LoadModel.Loaded")
		return model, nil
	}
	if !errors.Is(err, ErrModelNotTrained) {
		return nil, err
	}

	log.WithField("path", path).Warn("Classifier.LoadModel.Missing, training from seed samples")
	if err := model.Train(SeedSamples()); err != nil {
		return nil, err
	}
	return model, nil
}
