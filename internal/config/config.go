// Package config loads and validates facet.json, the project file of the
// facet CLI.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/facet-ui/facet/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "facet.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8420

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultThemeScheme is the scheme used when none is configured.
	DefaultThemeScheme = "auto"

	// DefaultPublishDir is the default disk publish directory.
	DefaultPublishDir = "public"
)

// Config represents the complete facet.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Assets contains asset resolution settings.
	Assets AssetsConfig `json:"assets,omitempty"`

	// Theme contains theme defaults.
	Theme ThemeConfig `json:"theme,omitempty"`

	// Publish contains the snapshot publish target.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the interface to bind.
	Host string `json:"host,omitempty"`

	// Port is the TCP port.
	Port int `json:"port,omitempty"`

	// Pretty enables indented markup in responses.
	Pretty bool `json:"pretty,omitempty"`
}

// AssetsConfig contains asset resolution settings.
type AssetsConfig struct {
	// Manifest is the path to an asset manifest mapping logical names to
	// fingerprinted URLs.
	Manifest string `json:"manifest,omitempty"`

	// Prefix is prepended to unresolved asset names.
	Prefix string `json:"prefix,omitempty"`
}

// ThemeConfig contains theme defaults.
type ThemeConfig struct {
	// Scheme is the default scheme: "light", "dark" or "auto".
	Scheme string `json:"scheme,omitempty"`

	// StorageFile persists the scheme preference between runs.
	StorageFile string `json:"storageFile,omitempty"`

	// Palettes is the path to a YAML palettes file.
	Palettes string `json:"palettes,omitempty"`

	// Palette is the palette applied on startup.
	Palette string `json:"palette,omitempty"`
}

// PublishConfig contains the snapshot publish target.
type PublishConfig struct {
	// Target is "disk" or "s3".
	Target string `json:"target,omitempty"`

	// Dir is the disk target directory.
	Dir string `json:"dir,omitempty"`

	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every published key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Preview: PreviewConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Theme: ThemeConfig{
			Scheme: DefaultThemeScheme,
		},
		Publish: PublishConfig{
			Target: "disk",
			Dir:    DefaultPublishDir,
		},
	}
}

// Load reads facet.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// Find walks from dir upward until it finds a facet.json, then loads it.
func Find(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New("F100").Wrap(err)
	}
	for {
		path := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return nil, errors.New("F100").
				WithDetail("No facet.json found in " + dir + " or any parent directory.").
				WithSuggestion("Run 'facet init' or create facet.json by hand")
		}
		abs = parent
	}
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("F100").
				WithDetail("No facet.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'facet init' or create facet.json by hand")
		}
		return nil, errors.New("F101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		fe := errors.New("F101").Wrap(err)
		if syn, ok := err.(*json.SyntaxError); ok {
			line, col := offsetToLineCol(data, syn.Offset)
			fe.WithLocation(path, line, col)
		}
		return nil, fe
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("F101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.FromError(err, "F101")
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// Validate checks field values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return errors.New("F102").
			WithDetail("preview.port is " + strconv.Itoa(c.Preview.Port) + ".").
			WithExample(`"preview": {"port": 8420}`)
	}
	switch c.Theme.Scheme {
	case "light", "dark", "auto":
	default:
		return errors.New("F103").
			WithDetail(`theme.scheme is "` + c.Theme.Scheme + `".`).
			WithExample(`"theme": {"scheme": "dark"}`)
	}
	switch c.Publish.Target {
	case "disk":
		if c.Publish.Dir == "" {
			return errors.New("F104").
				WithSuggestion(`set "publish.dir" for the disk target`)
		}
	case "s3":
		if c.Publish.Bucket == "" {
			return errors.New("F104").
				WithSuggestion(`set "publish.bucket" for the s3 target`)
		}
	default:
		return errors.New("F104").
			WithDetail(`publish.target is "` + c.Publish.Target + `".`).
			WithExample(`"publish": {"target": "s3", "bucket": "my-gallery"}`)
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Theme.Scheme == "" {
		c.Theme.Scheme = DefaultThemeScheme
	}
	if c.Publish.Target == "" {
		c.Publish.Target = "disk"
	}
	if c.Publish.Target == "disk" && c.Publish.Dir == "" {
		c.Publish.Dir = DefaultPublishDir
	}
}

// offsetToLineCol converts a byte offset into a 1-based line and column.
func offsetToLineCol(data []byte, offset int64) (int, int) {
	line, col := 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
