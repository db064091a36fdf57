// Package s3 处理S3存储操作.
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/foldervault/pkg/configs"
	nlog "github.com/yeisme/foldervault/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	bucket        string
	publicBaseURL string
}

// ObjectInfo 上传完成后的对象信息.
type ObjectInfo struct {
	Key       string
	SecureURL string
	Size      int64
	ETag      string
}

// ObjectStat 远端对象的描述信息.
type ObjectStat struct {
	Key         string
	Size        int64
	ContentType string
}

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
func New(ctx context.Context, cfg *configs.S3Config) (*Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("foldervault", configs.AppVersion)

	// ensure bucket
	exists, err := cli.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := cli.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}

		nlog.Logger().Info().Str("bucket", cfg.BucketName).Msg("bucket created")
	}

	nlog.Logger().Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.BucketName).Msg("s3 connected")

	return &Client{
		Client:        cli,
		bucket:        cfg.BucketName,
		publicBaseURL: cfg.GetPublicBaseURL(),
	}, nil
}

// Bucket 返回使用中的桶名.
func (c *Client) Bucket() string {
	return c.bucket
}

// ObjectURL 返回对象的可访问地址.
func (c *Client) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.publicBaseURL, c.bucket, key)
}

// Upload 上传对象并返回对象信息.
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error) {
	info, err := c.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &ObjectInfo{
		Key:       key,
		SecureURL: c.ObjectURL(key),
		Size:      info.Size,
		ETag:      info.ETag,
	}, nil
}

// Stat 查询远端对象的描述信息.
func (c *Client) Stat(ctx context.Context, key string) (*ObjectStat, error) {
	info, err := c.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stat object %s: %w", key, err)
	}

	return &ObjectStat{
		Key:         info.Key,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

// Remove 删除远端对象.
func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	return nil
}

// ListKeys 列出桶中给定前缀下的对象键，max <= 0 表示不限制.
func (c *Client) ListKeys(ctx context.Context, prefix string, max int) ([]string, error) {
	var keys []string

	for obj := range c.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects: %w", obj.Err)
		}

		keys = append(keys, obj.Key)
		if max > 0 && len(keys) >= max {
			break
		}
	}

	return keys, nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)

	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}
