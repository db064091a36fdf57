package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeNATS MQType = "nats"

	DefaultMQURL         = "localhost:4222"
	DefaultMQUser        = ""
	DefaultMQPassword    = ""
	DefaultMaxReconnects = 5                 // 默认最大重连次数.
	DefaultReconnectWait = 5                 // 默认重连等待时间（秒）.
	DefaultMQClientID    = "foldervault-app" // 默认客户端ID

	// JetStream 流配置常量.

	DefaultStreamMaxMsgs  = 1000000            // 默认流最大消息数
	DefaultStreamMaxBytes = 1024 * 1024 * 1024 // 默认流最大字节数 (1GB)
	DefaultStreamMaxAge   = 24                 // 默认流最大年龄 (小时)
	DefaultStreamReplicas = 1                  // 默认流副本数
)

// MQConfig 消息队列配置.
type MQConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Type          MQType `mapstructure:"type"            rule:"oneof=nats"`
	URL           string `mapstructure:"url"             rule:"hostname_port"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	ClientID      string `mapstructure:"client_id"`
	MaxReconnects int    `mapstructure:"max_reconnects"  rule:"min=0,max=100"`
	ReconnectWait int    `mapstructure:"reconnect_wait"  rule:"min=1,max=300"`
	StrictConnect bool   `mapstructure:"strict_connect"`
	EnableMetrics bool   `mapstructure:"enable_metrics"`

	// JetStream 配置.
	JetStreamEnabled       bool   `mapstructure:"jetstream_enabled"`
	JetStreamAutoProvision bool   `mapstructure:"jetstream_auto_provision"`
	StreamName             string `mapstructure:"stream_name"`
	SubjectPrefix          string `mapstructure:"subject_prefix"`
	StreamMaxMsgs          int64  `mapstructure:"stream_max_msgs"`
	StreamMaxBytes         int64  `mapstructure:"stream_max_bytes"`
	StreamMaxAge           int    `mapstructure:"stream_max_age"`
	StreamStorageType      string `mapstructure:"stream_storage_type"`
	StreamReplicas         int    `mapstructure:"stream_replicas"`
}

// GetMQType 返回当前配置的消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置MQ配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.enabled", false)
	v.SetDefault("mq.type", MQTypeNATS)
	v.SetDefault("mq.url", DefaultMQURL)
	v.SetDefault("mq.user", DefaultMQUser)
	v.SetDefault("mq.password", DefaultMQPassword)
	v.SetDefault("mq.client_id", DefaultMQClientID)
	v.SetDefault("mq.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.strict_connect", false)
	v.SetDefault("mq.enable_metrics", true)

	v.SetDefault("mq.jetstream_enabled", true)
	v.SetDefault("mq.jetstream_auto_provision", true)
	v.SetDefault("mq.stream_name", "foldervault-stream")
	v.SetDefault("mq.subject_prefix", "fv.")
	v.SetDefault("mq.stream_max_msgs", DefaultStreamMaxMsgs)
	v.SetDefault("mq.stream_max_bytes", DefaultStreamMaxBytes)
	v.SetDefault("mq.stream_max_age", DefaultStreamMaxAge)
	v.SetDefault("mq.stream_storage_type", "file")
	v.SetDefault("mq.stream_replicas", DefaultStreamReplicas)
}
