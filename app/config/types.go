package config

// Config represents a single feed subscription loaded from a YAML file
// in the feeds directory. The subscription name is derived from the
// filename and is used as the feed identifier everywhere else.
type Config struct {
	Name     string   `yaml:"-"`
	URL      string   `yaml:"url"`
	Settings Settings `yaml:"settings"`
}

// Settings contains per-subscription processing settings
type Settings struct {
	Enabled         bool `yaml:"enabled"`
	RefreshInterval int  `yaml:"refresh_interval"` // seconds
	MaxItems        int  `yaml:"max_items"`
	Timeout         int  `yaml:"timeout"` // seconds
}
