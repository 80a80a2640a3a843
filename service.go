package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

// IO performs file operations against the local file system. An IO is
// immutable once built and safe for concurrent use on disjoint paths.
type IO struct {
	cfg         Config
	logger      *slog.Logger
	resources   fs.FS
	client      *http.Client
	ops         osOps
	fileMode    fs.FileMode
	dirMode     fs.FileMode
	maxLineSize int
}

// Global instance
var (
	defaultIO   *IO
	defaultOnce sync.Once
	defaultErr  error
)

// Builder provides a way to create IO instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global IO instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new IO instance using the builder's prefix
func (b *Builder) New() (*IO, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global IO instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultIO, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a new IO instance with the given config
func New(cfg *Config) (*IO, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fileMode, err := parseMode(cfg.FileMode)
	if err != nil {
		return nil, fmt.Errorf("invalid file mode: %w", err)
	}
	dirMode, err := parseMode(cfg.DirMode)
	if err != nil {
		return nil, fmt.Errorf("invalid dir mode: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &IO{
		cfg:         *cfg,
		logger:      logger,
		resources:   os.DirFS(cfg.ResourceRoot),
		client:      &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		ops:         newOSOps(),
		fileMode:    fileMode,
		dirMode:     dirMode,
		maxLineSize: cfg.MaxLineSize,
	}, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.MaxLineSize <= 0 {
		return errors.New("max line size must be positive")
	}

	switch cfg.PermissionStrategy {
	case StrategyAuto, StrategyPosix, StrategyPortable:
	default:
		return fmt.Errorf("unknown permission strategy: %s", cfg.PermissionStrategy)
	}

	if cfg.HTTPTimeoutSeconds < 0 {
		return errors.New("http timeout cannot be negative")
	}

	if cfg.ResourceRoot == "" {
		return errors.New("resource root is required")
	}

	if cfg.VerifyCopies {
		if _, err := NewHasher(ChecksumAlgorithm(cfg.CopyChecksum)); err != nil {
			return err
		}
	}

	return nil
}

// parseMode parses an octal permission string such as "0644".
func parseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if v&^uint64(fs.ModePerm) != 0 {
		return 0, fmt.Errorf("mode %s has bits outside %o", s, fs.ModePerm)
	}
	return fs.FileMode(v), nil
}

// Config returns a copy of the configuration the instance was built with.
func (o *IO) Config() Config {
	return o.cfg
}

// WithLogger returns a copy of o that logs to logger.
func (o *IO) WithLogger(logger *slog.Logger) *IO {
	c := *o
	c.logger = logger
	return &c
}

// WithResources returns a copy of o that resolves resource names against fsys.
func (o *IO) WithResources(fsys fs.FS) *IO {
	c := *o
	c.resources = fsys
	return &c
}

// WithHTTPClient returns a copy of o that fetches http and https sources with client.
func (o *IO) WithHTTPClient(client *http.Client) *IO {
	c := *o
	c.client = client
	return &c
}

// Instance returns the global IO instance
func Instance() *IO {
	if defaultIO == nil {
		_ = Init()
	}
	return defaultIO
}

// Default returns the global instance, initializing if needed with error handling
func Default() (*IO, error) {
	if defaultIO == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultIO, nil
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv() (*IO, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultIO = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
