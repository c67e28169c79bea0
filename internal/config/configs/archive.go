package configs

// Archive configures where raw uploaded reports are kept. Archiving is
// off unless Bucket is set.
type Archive struct {
	Bucket string `env:"BUCKET"`
	Prefix string `env:"PREFIX" envDefault:"reports"`
	Region string `env:"REGION" envDefault:"us-east-1"`
	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint     string `env:"ENDPOINT"`
	UsePathStyle bool   `env:"USE_PATH_STYLE" envDefault:"false"`
	// AccessKeyID and SecretAccessKey select static credentials. When
	// either is empty the default AWS credential chain is used.
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Enabled reports whether reports should be archived.
func (c Archive) Enabled() bool {
	return c.Bucket != ""
}
