package configs

import (
	"github.com/spf13/viper"
)

// MetricsConfig Metrics相关配置.
type MetricsConfig struct {
	Enabled        bool              `mapstructure:"enabled"`         // 是否启用Metrics
	ServiceName    string            `mapstructure:"service_name"`    // 服务名称
	ServiceVersion string            `mapstructure:"service_version"` // 服务版本
	Endpoint       string            `mapstructure:"endpoint"`        // 指标服务监听地址
	RuntimeMetrics bool              `mapstructure:"runtime_metrics"` // 是否收集运行时指标
	EnablePprof    bool              `mapstructure:"enable_pprof"`    // 是否开放pprof
	Labels         map[string]string `mapstructure:"labels"`          // 默认标签
}

// setDefaults 设置Metrics配置的默认值.
func (c *MetricsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.service_name", "foldervault")
	v.SetDefault("metrics.service_version", "1.0.0")
	v.SetDefault("metrics.endpoint", ":9090")
	v.SetDefault("metrics.runtime_metrics", true)
	v.SetDefault("metrics.enable_pprof", false)
	v.SetDefault("metrics.labels", map[string]string{
		"service": "foldervault",
		"version": "1.0.0",
	})
}
