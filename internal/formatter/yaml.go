package formatter

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/workroomhq/surfacegate/internal/surface"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) FormatSurfaces(surfaces []*surface.Surface) (string, error) {
	data, err := yaml.Marshal(surfaces)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
