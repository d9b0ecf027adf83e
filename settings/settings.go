package settings

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultHost    = "https://api.github.com"
	DefaultTimeout = 10 * time.Second
)

// Fs is the file system the settings file is read from and written to.
var Fs afero.Fs = afero.NewOsFs()

// Config is used to represent the current state of a CLI instance.
type Config struct {
	Host         string
	RestEndpoint string        `yaml:"rest_endpoint"`
	Token        string        `yaml:"token"`
	RetryMax     int           `yaml:"retry_max"`
	Timeout      time.Duration `yaml:"timeout,omitempty"`
	Debug        bool          `yaml:"-"`
	FileUsed     string        `yaml:"-"`
	HTTPClient   *http.Client  `yaml:"-"`
	// TokenFromEnv is set when Token came from the environment. Such a token
	// is never written to the settings file.
	TokenFromEnv bool `yaml:"-"`

	fileToken string
}

// Load will read the config from the user's disk and then evaluate possible configuration from the environment.
func (cfg *Config) Load() error {
	if err := cfg.LoadFromDisk(); err != nil {
		return err
	}

	cfg.LoadFromEnv("collabctl")
	cfg.ApplyDefaults()

	return nil
}

// LoadFromDisk is used to read config from the user's disk and deserialize the YAML into our runtime config.
func (cfg *Config) LoadFromDisk() error {
	path := filepath.Join(SettingsPath(), configFilename())

	if err := ensureSettingsFileExists(path); err != nil {
		return errors.Wrapf(err, "unable to prepare settings file %s", path)
	}

	cfg.FileUsed = path

	content, err := afero.ReadFile(Fs, path)
	if err != nil {
		return err
	}

	if err = yaml.Unmarshal(content, cfg); err != nil {
		return errors.Wrapf(err, "invalid settings file %s", path)
	}
	cfg.fileToken = cfg.Token
	return nil
}

// WriteToDisk will write the runtime config instance to disk by serializing the YAML.
// A token taken from the environment is replaced by the one read from the file.
func (cfg *Config) WriteToDisk() error {
	out := *cfg
	if cfg.TokenFromEnv {
		out.Token = cfg.fileToken
	}

	enc, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(Fs, cfg.FileUsed, enc, 0600); err != nil {
		return err
	}
	cfg.fileToken = out.Token
	return nil
}

// LoadFromEnv will read from environment variables of the given prefix for host, endpoint, and token specifically.
// GITHUB_TOKEN is used when no token was found anywhere else.
func (cfg *Config) LoadFromEnv(prefix string) {
	if host := ReadFromEnv(prefix, "host"); host != "" {
		cfg.Host = host
	}

	if restEndpoint := ReadFromEnv(prefix, "rest_endpoint"); restEndpoint != "" {
		cfg.RestEndpoint = restEndpoint
	}

	if token := ReadFromEnv(prefix, "token"); token != "" {
		cfg.Token = token
		cfg.TokenFromEnv = true
	}

	if cfg.Token == "" {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			cfg.Token = token
			cfg.TokenFromEnv = true
		}
	}
}

// ApplyDefaults fills in the host and timeout when they were left empty.
func (cfg *Config) ApplyDefaults() {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
}

// ValidateHost checks that host is an absolute http(s) URL.
func ValidateHost(host string) error {
	u, err := url.Parse(strings.TrimSpace(host))
	if err != nil {
		return errors.Wrapf(err, "invalid host %q", host)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return errors.Errorf("invalid host %q: expected a URL such as %s", host, DefaultHost)
	}
	return nil
}

// ReadFromEnv takes a prefix and field to search the environment for after capitalizing and joining them with an underscore.
func ReadFromEnv(prefix, field string) string {
	name := strings.Join([]string{prefix, field}, "_")
	return os.Getenv(strings.ToUpper(name))
}

// configFilename returns the name of the cli config file
func configFilename() string {
	return "cli.yml"
}

// SettingsPath returns the path of the CLI settings directory.
// COLLABCTL_SETTINGS_DIR overrides the default of ~/.collabctl.
func SettingsPath() string {
	if dir := ReadFromEnv("collabctl", "settings_dir"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return path.Join(home, ".collabctl")
}

// ensureSettingsFileExists does just that.
func ensureSettingsFileExists(path string) error {
	_, err := Fs.Stat(path)

	if err == nil {
		return nil
	}

	if !os.IsNotExist(err) {
		// Filesystem error
		return err
	}

	dir := filepath.Dir(path)

	if err = Fs.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := Fs.Create(path)
	if err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return Fs.Chmod(path, 0600)
}
