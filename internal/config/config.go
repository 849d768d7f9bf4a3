package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀，例如 MYCLOCK_LOG_LEVEL
const EnvPrefix = "MYCLOCK"

// 环境变量名由字段名拼成，例如 History.Path 对应 MYCLOCK_HISTORY_PATH。
// 不设置 envconfig 标签，避免回退到没有前缀的 PATH、NAME 等变量
type Config struct {
	App       AppConfig       `yaml:"app"`
	Countdown CountdownConfig `yaml:"countdown"`
	Sound     SoundConfig     `yaml:"sound"`
	Notify    NotifyConfig    `yaml:"notify"`
	History   HistoryConfig   `yaml:"history"`
	Log       LogConfig       `yaml:"log"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width" split_words:"true"`
	WindowHeight int    `yaml:"window_height" split_words:"true"`
}

type CountdownConfig struct {
	DefaultInput string `yaml:"default_input" split_words:"true"` // MM:SS
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	File    string  `yaml:"file"` // 为空时使用内置提示音
	Volume  float64 `yaml:"volume"`
}

type NotifyConfig struct {
	Desktop bool `yaml:"desktop"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // 为空时放在配置目录下
}

type LogConfig struct {
	Level       string   `yaml:"level"`
	Development bool     `yaml:"development"`
	Output      []string `yaml:"output"`
}

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "My Clock",
			WindowWidth:  420,
			WindowHeight: 360,
		},
		Countdown: CountdownConfig{
			DefaultInput: "00:00",
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0,
		},
		Notify: NotifyConfig{
			Desktop: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
			Output:      []string{"stderr"},
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager 从默认路径加载配置
func NewManager() (*Manager, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt 从指定路径加载配置，文件不存在或无法解析时写入默认配置
func NewManagerAt(configPath string) (*Manager, error) {
	manager := &Manager{
		configPath: configPath,
	}

	// 加载或创建配置
	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig()
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	// 环境变量覆盖文件中的值
	if err := envconfig.Process(EnvPrefix, manager.config); err != nil {
		return nil, fmt.Errorf("reading %s_* environment: %w", EnvPrefix, err)
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	// 文件中缺少的字段保留默认值
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	// 确保配置目录存在
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

// HistoryPath 返回历史数据库路径
func (m *Manager) HistoryPath() string {
	if m.config.History.Path != "" {
		return m.config.History.Path
	}
	return filepath.Join(filepath.Dir(m.configPath), "history.db")
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	// 在用户目录下创建应用配置目录
	configDir := filepath.Join(homeDir, ".myclock")
	return configDir, nil
}

// 更新配置的便捷方法
func (m *Manager) UpdateSoundConfig(config SoundConfig) error {
	m.config.Sound = config
	return m.SaveConfig()
}
