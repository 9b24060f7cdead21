package output

import (
	"github.com/sonemaro/patterntext/pkg/logger"
	"gopkg.in/yaml.v3"
)

func (f *formatter) formatYAML(batch *Batch) (string, error) {
	f.log.Debug("Formatting YAML output")

	bytes, err := yaml.Marshal(f.newDocument(batch))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
