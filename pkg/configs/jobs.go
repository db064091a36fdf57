package configs

import "github.com/spf13/viper"

const (
	DefaultJobsEnabled       = true
	DefaultReconcileCron     = "0 */6 * * *" // 每6小时执行一次孤儿对象清理
	DefaultReconcileMaxSweep = 1000          // 单次清理的最大对象数
)

// JobsConfig 定时任务配置.
type JobsConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ReconcileCron     string `mapstructure:"reconcile_cron"`
	ReconcileMaxSweep int    `mapstructure:"reconcile_max_sweep" rule:"min=1"`
}

func (c *JobsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("jobs.enabled", DefaultJobsEnabled)
	v.SetDefault("jobs.reconcile_cron", DefaultReconcileCron)
	v.SetDefault("jobs.reconcile_max_sweep", DefaultReconcileMaxSweep)
}
