package commands

import (
	"github.com/spf13/cobra"

	"github.com/mrled/addrbook/internal/config"
)

// PersistenceFlags holds flags related to persistence and data storage options
type PersistenceFlags struct {
	ConfigPath     string
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
	S3Bucket       string
	S3Key          string
	NoPersist      bool
}

// addPersistenceFlags adds the persistence-related flags shared by every command
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to YAML config file (default $"+config.EnvConfig+")")
	cmd.PersistentFlags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file for persistence (default "+config.DefaultFile+")")
	cmd.PersistentFlags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table name for persistence")
	cmd.PersistentFlags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
	cmd.PersistentFlags().StringVar(&flags.S3Bucket, "s3-bucket", "", "S3 bucket for persistence")
	cmd.PersistentFlags().StringVar(&flags.S3Key, "s3-key", "", "S3 object key (default addressbook.json)")
	cmd.PersistentFlags().BoolVar(&flags.NoPersist, "no-persist", false, "Keep the address book in memory only")
}

// apply overrides configuration values with flags that were set
func (flags *PersistenceFlags) apply(cfg *config.Config) {
	override(&cfg.Storage.File, flags.FilePath)
	override(&cfg.Storage.DynamoTable, flags.DynamoTable)
	override(&cfg.Storage.DynamoEndpoint, flags.DynamoEndpoint)
	override(&cfg.Storage.S3Bucket, flags.S3Bucket)
	override(&cfg.Storage.S3Key, flags.S3Key)
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
