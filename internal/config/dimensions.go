package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dimensions lists, per anomaly detector, the campaign fields it runs on.
//
//	outliers: [delivered, open_rate, click_rate, ctor]
//	low_volume: [delivered]
type Dimensions struct {
	Outliers  []string `yaml:"outliers"`
	LowVolume []string `yaml:"low_volume"`
}

// DefaultDimensions is used when no dimensions file is configured.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Outliers:  []string{"delivered", "open_rate", "click_rate", "ctor"},
		LowVolume: []string{"delivered"},
	}
}

// LoadDimensions reads the dimensions file at path. An empty path yields
// DefaultDimensions. A detector key missing from the file keeps its
// default; an explicit empty list turns the detector off.
func LoadDimensions(path string) (Dimensions, error) {
	dims := DefaultDimensions()
	if path == "" {
		return dims, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return dims, fmt.Errorf("read dimensions file: %w", err)
	}
	if err = yaml.Unmarshal(data, &dims); err != nil {
		return dims, fmt.Errorf("parse dimensions file %s: %w", path, err)
	}
	return dims, nil
}
