package fileio

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Longest line accepted by the line readers, in bytes
	MaxLineSize int `env:"FILEIO_MAX_LINE_SIZE,default:1048576"` // 1MB default

	// Octal modes for files created by Spit and directories created by Mkdir
	FileMode string `env:"FILEIO_FILE_MODE,default:0644"`
	DirMode  string `env:"FILEIO_DIR_MODE,default:0755"`

	// Permission strategy for GrantFullAccess (auto, posix, portable)
	PermissionStrategy string `env:"FILEIO_PERMISSION_STRATEGY,default:auto"`

	// Slurp sources
	HTTPTimeoutSeconds int    `env:"FILEIO_HTTP_TIMEOUT_SECONDS,default:30"`
	ResourceRoot       string `env:"FILEIO_RESOURCE_ROOT,default:./resources"`

	// Copy verification
	VerifyCopies bool   `env:"FILEIO_VERIFY_COPIES,default:false"`
	CopyChecksum string `env:"FILEIO_COPY_CHECKSUM,default:xxhash"`

	// Logging (debug, info, warn, error)
	LogLevel string `env:"FILEIO_LOG_LEVEL,default:info"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when nothing is set in the
// environment.
func DefaultConfig() *Config {
	return &Config{
		MaxLineSize:        1 << 20,
		FileMode:           "0644",
		DirMode:            "0755",
		PermissionStrategy: StrategyAuto,
		HTTPTimeoutSeconds: 30,
		ResourceRoot:       "./resources",
		CopyChecksum:       string(ChecksumXXHash),
		LogLevel:           "info",
	}
}
