package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/foldervault/pkg/configs"
	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage/db"
	"github.com/yeisme/foldervault/pkg/log"
)

var (
	dbCmd = &cobra.Command{
		Use:   "db",
		Short: "Database related commands",
	}

	dbListCmd = &cobra.Command{
		Use:   "ls",
		Short: "list all registered database types",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Registered database types:")
			for _, dbType := range db.GetRegisteredDBTypes() {
				fmt.Fprintln(cmd.OutOrStdout(), " - "+dbType)
			}
		},
	}

	dbMigrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "run schema migration for folders and files tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return fmt.Errorf("init config: %w", err)
			}

			log.Init()

			client, err := db.New(cmd.Context())
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}

			if err := client.AutoMigrate(&model.Folder{}, &model.File{}); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migration completed")

			return nil
		},
	}
)

// registerDBCommands 注册数据库相关命令.
func registerDBCommands() {
	rootCmd.AddCommand(dbCmd)

	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbMigrateCmd)
}
