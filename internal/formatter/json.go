package formatter

import (
	"encoding/json"

	"github.com/workroomhq/surfacegate/internal/surface"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatSurfaces(surfaces []*surface.Surface) (string, error) {
	data, err := json.MarshalIndent(surfaces, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
