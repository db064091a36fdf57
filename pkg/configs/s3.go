package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// S3Config MinIO S3存储配置.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	BucketName      string `mapstructure:"bucket_name"`
	Region          string `mapstructure:"region"`
	// PublicBaseURL 对外可访问的下载地址前缀，为空时由 Endpoint 推导.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

const (
	DefaultS3Endpoint        = "localhost:9000" // 默认S3端点
	DefaultS3AccessKeyID     = "minioadmin"     // 默认访问密钥ID
	DefaultS3SecretAccessKey = "minioadmin"     // 默认秘密访问密钥
	DefaultS3UseSSL          = false            // 默认是否使用SSL
	DefaultS3BucketName      = "foldervault"    // 默认存储桶名称
	DefaultS3Region          = "us-east-1"      // 默认区域
)

// GetEndpointURL 获取完整的端点URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// GetPublicBaseURL 获取下载地址前缀，未配置时使用端点URL.
func (c *S3Config) GetPublicBaseURL() string {
	if c.PublicBaseURL != "" {
		return c.PublicBaseURL
	}

	return c.GetEndpointURL()
}

// setDefaults 设置 S3 配置的默认值.
func (c *S3Config) setDefaults(v *viper.Viper) {
	v.SetDefault("s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("s3.bucket_name", DefaultS3BucketName)
	v.SetDefault("s3.region", DefaultS3Region)
	v.SetDefault("s3.public_base_url", "")
}
