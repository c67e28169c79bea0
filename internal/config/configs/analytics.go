package configs

// Analytics points at the YAML file listing the dimensions each anomaly
// detector runs on. The built-in defaults apply when it is empty.
type Analytics struct {
	DimensionsFile string `env:"DIMENSIONS_FILE"`
}
