package main

import (
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string

	flagDir    string
	flagBucket string
	flagPrefix string
	flagRegion string
)

var rootCmd = &cobra.Command{
	Use:   "statsctl",
	Short: "Access log usage statistics toolkit",
	Long:  "Parses web server access logs from a local directory or an S3 bucket and aggregates per-resource download statistics.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&flagDir, "dir", "", "Local directory containing log files")
	pf.StringVar(&flagBucket, "bucket", "", "S3 bucket containing log objects (used when --dir is not set)")
	pf.StringVar(&flagPrefix, "prefix", "", "S3 key prefix to enumerate")
	pf.StringVar(&flagRegion, "region", "", "AWS region of the bucket")
}
