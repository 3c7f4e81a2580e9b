package configs

// Config holds all configuration for the application. It is loaded once at
// startup and never mutated afterwards.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	Report        ReportConfig        `mapstructure:"report"`
	Source        SourceConfig        `mapstructure:"source" validate:"required"`
	ReportStorage ReportStorageConfig `mapstructure:"report_storage" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ReportConfig holds the default filtering options of a report run. Both
// fields are optional; an empty value disables filtering by that dimension.
// Requests may override either field per run.
type ReportConfig struct {
	ExcludeLinesMatching string `mapstructure:"exclude_lines_matching"`
	DateCutoff           string `mapstructure:"date_cutoff" validate:"omitempty,datetime=2006-01-02"`
}

// SourceConfig selects and configures the log source.
type SourceConfig struct {
	Type  string            `mapstructure:"type" validate:"required,oneof=local s3"`
	Local LocalSourceConfig `mapstructure:"local"`
	S3    S3SourceConfig    `mapstructure:"s3"`
}

// LocalSourceConfig holds local-directory source configuration.
type LocalSourceConfig struct {
	Dir string `mapstructure:"dir"`
}

// S3SourceConfig holds S3 source configuration.
type S3SourceConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

// ReportStorageConfig holds report artifact storage configuration.
type ReportStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}
