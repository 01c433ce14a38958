package parser

import "github.com/sirupsen/logrus"

const defaultMaxErrors = 1000

// Config holds the options shared by the tokenizer and the normalizer.
type Config struct {
	// CaseSensitive keeps tag and attribute names as written. By default they
	// are lower-cased.
	CaseSensitive bool
	// MaxErrors is the number of recoverable errors after which tokenizing
	// stops with ErrTooManyErrors. Zero means the default of 1000.
	MaxErrors int
	// Source names the input in diagnostics, e.g. a file name or URL.
	Source string
	// Logger receives diagnostics. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
	// AnnotateRepairs renders a synthesized start-tag as a dummy element that
	// carries an explanatory comment.
	AnnotateRepairs bool
	// HTML5Entities resolves entity names missing from the HTML 4 table against
	// the HTML5 named character references.
	HTML5Entities bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{MaxErrors: defaultMaxErrors}
}

func (c Config) withDefaults() Config {
	if c.MaxErrors <= 0 {
		c.MaxErrors = defaultMaxErrors
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	return c
}

func (c Config) logger() logrus.FieldLogger {
	l := c.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	if c.Source != "" {
		return l.WithField("source", c.Source)
	}
	return l
}

// Option changes a Config.
type Option func(*Config)

// WithCaseSensitive keeps tag and attribute names as written.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(c *Config) { c.CaseSensitive = caseSensitive }
}

// WithMaxErrors sets the fatal error threshold.
func WithMaxErrors(n int) Option {
	return func(c *Config) { c.MaxErrors = n }
}

// WithSource names the input in diagnostics.
func WithSource(source string) Option {
	return func(c *Config) { c.Source = source }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithAnnotateRepairs marks synthesized start-tags with a comment.
func WithAnnotateRepairs(annotate bool) Option {
	return func(c *Config) { c.AnnotateRepairs = annotate }
}

// WithHTML5Entities enables the HTML5 entity fallback.
func WithHTML5Entities(enabled bool) Option {
	return func(c *Config) { c.HTML5Entities = enabled }
}
