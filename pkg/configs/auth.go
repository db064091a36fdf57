package configs

import "github.com/spf13/viper"

// AuthConfig JWT 认证配置，仅校验 Bearer 令牌，不负责签发.
type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"` // 开启认证校验
	Secret  string `mapstructure:"secret"`  // HS256 签名密钥
	Issuer  string `mapstructure:"issuer"`  // 非空时校验 iss 声明
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.issuer", "")
}
