package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// conf 当前生效的配置，热更新时整体替换，外部只能通过 Current 读取
var conf = Default()

var (
	mu sync.RWMutex
	v  *viper.Viper
)

type BaseConfig struct {
	AppName string `mapstructure:"appName"`
}

type AnalyzerConfiguration struct {
	BaseConfig `mapstructure:",squash"`
	Log        LogConf   `mapstructure:"log"`
	Cache      CacheConf `mapstructure:"cache"`
	Rule       RuleConf  `mapstructure:"rule"`
	Batch      BatchConf `mapstructure:"batch"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

type CacheConf struct {
	Enabled    bool  `mapstructure:"enabled"`
	MaxCost    int64 `mapstructure:"maxCost"`
	TtlSeconds int   `mapstructure:"ttlSeconds"`
}

// RuleConf 关闭后向听数不考虑对应的特殊形
type RuleConf struct {
	SevenPairs      bool `mapstructure:"sevenPairs"`
	ThirteenOrphans bool `mapstructure:"thirteenOrphans"`
}

type BatchConf struct {
	Workers int    `mapstructure:"workers"`
	Format  string `mapstructure:"format"` // json | yaml
}

func Default() *AnalyzerConfiguration {
	return &AnalyzerConfiguration{
		BaseConfig: BaseConfig{AppName: "analyzer"},
		Log:        LogConf{Level: "info"},
		Cache:      CacheConf{Enabled: true, MaxCost: 1 << 16},
		Rule:       RuleConf{SevenPairs: true, ThirteenOrphans: true},
		Batch:      BatchConf{Workers: 4, Format: "json"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("appName", d.AppName)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.maxCost", d.Cache.MaxCost)
	v.SetDefault("cache.ttlSeconds", d.Cache.TtlSeconds)
	v.SetDefault("rule.sevenPairs", d.Rule.SevenPairs)
	v.SetDefault("rule.thirteenOrphans", d.Rule.ThirteenOrphans)
	v.SetDefault("batch.workers", d.Batch.Workers)
	v.SetDefault("batch.format", d.Batch.Format)
}

// Load configFile 为空时只使用默认值与环境变量
func Load(configFile string) error {
	nv := viper.New()
	setDefaults(nv)
	nv.AutomaticEnv()
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if configFile != "" {
		nv.SetConfigFile(configFile)
		if err := nv.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	v = nv
	conf = cfg
	mu.Unlock()
	return nil
}

func decode(v *viper.Viper) (*AnalyzerConfiguration, error) {
	var cfg AnalyzerConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *AnalyzerConfiguration) validate() error {
	if cfg.Cache.Enabled && cfg.Cache.MaxCost <= 0 {
		return fmt.Errorf("cache.maxCost must be positive, got %d", cfg.Cache.MaxCost)
	}
	if cfg.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive, got %d", cfg.Batch.Workers)
	}
	switch cfg.Batch.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("batch.format must be json or yaml, got %q", cfg.Batch.Format)
	}
	return nil
}

// Current 读取当前配置的快照
func Current() AnalyzerConfiguration {
	mu.RLock()
	defer mu.RUnlock()
	return *conf
}

// Watch 配置文件变化时重新解析，解析失败保留旧配置并把错误交给 onChange
func Watch(onChange func(cfg AnalyzerConfiguration, err error)) error {
	mu.RLock()
	cur := v
	mu.RUnlock()
	if cur == nil || cur.ConfigFileUsed() == "" {
		return fmt.Errorf("watch config: no config file loaded")
	}

	cur.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(cur)
		if err != nil {
			onChange(Current(), err)
			return
		}
		mu.Lock()
		conf = cfg
		mu.Unlock()
		onChange(*cfg, nil)
	})
	cur.WatchConfig()
	return nil
}
