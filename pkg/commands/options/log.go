package options

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogOptions control diagnostic logging. The UI owns the terminal, so logs
// only go to a file when one is given.
type LogOptions struct {
	Verbose bool
	File    string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail, including every pointer move.")
	cmd.PersistentFlags().StringVar(&o.File, "log-file", "",
		"Write structured logs to this file.")
}

// Logger builds the zap logger described by the options.
func (o *LogOptions) Logger() (*zap.Logger, error) {
	if o.File == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{o.File}
	cfg.ErrorOutputPaths = []string{o.File}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if o.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
