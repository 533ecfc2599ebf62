// 包 config 负责加载与校验生成器配置（settings.yaml，可选），
// 对外提供结构体 Config 及默认值填充。
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// 默认文件名；不提供 settings.yaml 时即为固定输出名。
const (
	DefaultData      = "entries.yaml"
	DefaultHTMLFile  = "index.html"
	DefaultOPMLFile  = "pwd.opml"
	DefaultTitle     = "HN Personal Websites"
	DefaultReadmeURL = "https://github.com/hnpwd/hnpwd.github.io#readme"
	DefaultIRCURL    = "https://web.libera.chat/#hnpwd"
)

type Config struct {
	Data      string `yaml:"DATA"`
	OutDir    string `yaml:"OUT_DIR"`
	HTMLFile  string `yaml:"HTML_FILE"`
	OPMLFile  string `yaml:"OPML_FILE"`
	Site      Site   `yaml:"SITE"`
	Export    Export `yaml:"EXPORT"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"` // text|json|pretty
	LogLocale string `yaml:"LOG_LOCALE"` // zh-CN|en
	LogColor  string `yaml:"LOG_COLOR"`  // auto|always|never
}

// Site 为页面标题与页脚链接。
type Site struct {
	Title     string `yaml:"TITLE"`
	ReadmeURL string `yaml:"README_URL"`
	IRCURL    string `yaml:"IRC_URL"`
}

// Export 为可选附加产物，留空表示不生成。
type Export struct {
	JSON   string `yaml:"JSON"`   // data.json
	SQLite string `yaml:"SQLITE"` // pwd.db
}

// Default 返回填充默认值后的配置。
func Default() *Config {
	c := &Config{}
	_ = c.Validate()
	return c
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// Validate 填充默认值并检查输出文件名。
func (c *Config) Validate() error {
	if c.Data == "" {
		c.Data = DefaultData
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.HTMLFile == "" {
		c.HTMLFile = DefaultHTMLFile
	}
	if c.OPMLFile == "" {
		c.OPMLFile = DefaultOPMLFile
	}
	if c.HTMLFile == c.OPMLFile {
		return errors.New("HTML_FILE and OPML_FILE must differ")
	}
	if filepath.Base(c.HTMLFile) != c.HTMLFile || filepath.Base(c.OPMLFile) != c.OPMLFile {
		return errors.New("HTML_FILE and OPML_FILE must be plain file names; use OUT_DIR for the directory")
	}
	if c.Site.Title == "" {
		c.Site.Title = DefaultTitle
	}
	if c.Site.ReadmeURL == "" {
		c.Site.ReadmeURL = DefaultReadmeURL
	}
	if c.Site.IRCURL == "" {
		c.Site.IRCURL = DefaultIRCURL
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "zh-CN"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	return nil
}

// HTMLPath 返回 HTML 输出路径。
func (c *Config) HTMLPath() string { return filepath.Join(c.OutDir, c.HTMLFile) }

// OPMLPath 返回 OPML 输出路径。
func (c *Config) OPMLPath() string { return filepath.Join(c.OutDir, c.OPMLFile) }
