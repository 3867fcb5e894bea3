package config

import (
	"fmt"
	"os"
	"strings"

	confv1 "connect-account-service/internal/conf/v1"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// EnvPrefix 环境变量前缀, 例如 ACCOUNT_DATA_REDIS_HOST 覆盖 data.redis.host
const EnvPrefix = "ACCOUNT"

var (
	conf = &confv1.Bootstrap{}
	// Module 提供 Fx 模块
	Module = fx.Module("config",
		fx.Provide(
			func() (*confv1.Bootstrap, error) {
				configPath := getConfigPath()

				c, err := Init(configPath)
				if err != nil {
					return nil, err
				}
				conf = c
				fmt.Printf("Configuration loaded successfully from: %s\n", configPath)
				return c, nil
			},
		),
	)
)

// defaults 只列出有默认值的键, 同时让 viper 认识这些键以便环境变量覆盖
var defaults = map[string]any{
	"server.http.addr":                    ":8080",
	"data.database.port":                  5432,
	"data.database.ssl_mode":              "disable",
	"data.database.timezone":              "UTC",
	"data.redis.port":                     6379,
	"data.redis.dial_timeout":             5,
	"data.redis.read_timeout":             3,
	"data.redis.write_timeout":            3,
	"data.redis.pool_size":                10,
	"auth.password_hasher":                "md5",
	"auth.captcha.register_prefix":        "captcha",
	"auth.captcha.update_password_prefix": "update_password_captcha",
	"auth.captcha.update_profile_prefix":  "update_user_captcha",
	"log.level":                           "info",
	"log.format":                          "json",
}

// Init 从本地 yaml 文件加载配置, 环境变量优先
func Init(configPath string) (*confv1.Bootstrap, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	return decode(v.AllSettings())
}

func decode(m map[string]any) (*confv1.Bootstrap, error) {
	localConf := &confv1.Bootstrap{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// 配置结构体使用 json tag (snake_case)
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           localConf,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return localConf, nil
}

// GetConfig 返回已加载的配置
func GetConfig() *confv1.Bootstrap {
	return conf
}

// getConfigPath 从环境变量获取配置路径
func getConfigPath() string {
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		return configPath
	}

	// 容器内配置文件位于 /app/configs/config.yaml
	if isRunningInContainer() {
		return "/app/configs/config.yaml"
	}

	return "configs/config.yaml"
}

func isRunningInContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if cgroup, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		if strings.Contains(string(cgroup), "docker") || strings.Contains(string(cgroup), "kubepods") {
			return true
		}
	}

	return os.Getenv("KUBERNETES_SERVICE_HOST") != "" || os.Getenv("CONTAINER") != ""
}

// ValidateConfig 验证配置的完整性
func ValidateConfig(conf *confv1.Bootstrap) error {
	if conf == nil {
		return fmt.Errorf("configuration is nil")
	}

	if conf.Server == nil || conf.Server.Http == nil {
		return fmt.Errorf("server configuration is required")
	}

	if conf.Data == nil || conf.Data.Database == nil {
		return fmt.Errorf("database configuration is required")
	}

	if conf.Data.Redis == nil {
		return fmt.Errorf("redis configuration is required")
	}

	if conf.Auth == nil || conf.Auth.Captcha == nil {
		return fmt.Errorf("auth.captcha configuration is required")
	}

	c := conf.Auth.Captcha
	prefixes := []struct{ name, value string }{
		{"register_prefix", c.RegisterPrefix},
		{"update_password_prefix", c.UpdatePasswordPrefix},
		{"update_profile_prefix", c.UpdateProfilePrefix},
	}
	for _, p := range prefixes {
		if p.value == "" {
			return fmt.Errorf("auth.captcha.%s must not be empty", p.name)
		}
	}
	// key 为 <prefix>_<email>, 邮箱可能含 "_", 所以 "a" 与 "a_b" 也会产生相同的 key
	for i, a := range prefixes {
		for _, b := range prefixes[i+1:] {
			if a.value == b.value ||
				strings.HasPrefix(b.value, a.value+"_") ||
				strings.HasPrefix(a.value, b.value+"_") {
				return fmt.Errorf("auth.captcha.%s collides with auth.captcha.%s", b.name, a.name)
			}
		}
	}

	return nil
}
