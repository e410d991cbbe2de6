package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/clusterkit"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of both commands.
type Config struct {
	ConfigFile string `yaml:"-"`
	EnvFile    string `yaml:"env_file"`

	Store     string `yaml:"store"`
	Points    string `yaml:"points"`
	CSV       string `yaml:"csv"`
	Delimiter string `yaml:"delimiter"`
	XCol      int    `yaml:"x"`
	YCol      int    `yaml:"y"`
	Normalize bool   `yaml:"normalize"`

	K         int     `yaml:"k"`
	Init      string  `yaml:"init"`
	Seed      uint64  `yaml:"seed"`
	MaxIter   int     `yaml:"max_iter"`
	Tolerance float64 `yaml:"tolerance"`
	Workers   int     `yaml:"workers"`
	Policy    string  `yaml:"policy"`
	Metric    string  `yaml:"metric"`

	Format string `yaml:"format"`
	Codec  string `yaml:"codec"`
	Indent bool   `yaml:"indent"`
	Out    string `yaml:"out"`

	Images     string  `yaml:"images"`
	Labels     string  `yaml:"labels"`
	Train      float64 `yaml:"train"`
	Test       float64 `yaml:"test"`
	Validation float64 `yaml:"validation"`
	Print      bool    `yaml:"print"`

	MemoryLimit int64 `yaml:"memory_limit"`
	IOLimit     int64 `yaml:"io_limit"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Metrics   bool   `yaml:"metrics"`
}

func defaultConfig() Config {
	return Config{
		EnvFile:    ".env",
		Delimiter:  ",",
		XCol:       0,
		YCol:       1,
		K:          3,
		MaxIter:    clusterkit.DefaultMaxIterations,
		Tolerance:  clusterkit.DefaultTolerance,
		Workers:    1,
		Policy:     clusterkit.EmptyClusterRetain.String(),
		Metric:     "euclidean",
		Format:     "text",
		Codec:      "go-json",
		Train:      0.1,
		Test:       0.075,
		Validation: 0.005,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

func (c *Config) flagSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with default settings")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "dotenv file loaded before opening the store")
	fs.StringVar(&c.Store, "store", c.Store, "blob store: local dir, s3://bucket/prefix or minio://endpoint/bucket/prefix")
	fs.StringVar(&c.CSV, "csv", c.CSV, "delimited input file in the store")
	fs.StringVar(&c.Delimiter, "delim", c.Delimiter, "CSV delimiter")
	fs.BoolVar(&c.Normalize, "normalize", c.Normalize, "min-max normalize features before use")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random sample")
	fs.Int64Var(&c.MemoryLimit, "memory-limit", c.MemoryLimit, "max bytes decoded at once, 0 for unlimited")
	fs.Int64Var(&c.IOLimit, "io-limit", c.IOLimit, "max read bytes per second, 0 for unlimited")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "print Prometheus metrics to stderr on exit")

	switch name {
	case "cluster":
		fs.StringVar(&c.Points, "points", c.Points, `inline points "x,y;x,y;..."`)
		fs.IntVar(&c.XCol, "x", c.XCol, "CSV feature column used as x")
		fs.IntVar(&c.YCol, "y", c.YCol, "CSV feature column used as y")
		fs.IntVar(&c.K, "k", c.K, "number of clusters")
		fs.StringVar(&c.Init, "init", c.Init, `initial centroids "x,y;..." (sampled from the points if empty)`)
		fs.IntVar(&c.MaxIter, "max-iter", c.MaxIter, "iteration budget")
		fs.Float64Var(&c.Tolerance, "tolerance", c.Tolerance, "squared displacement counted as converged")
		fs.IntVar(&c.Workers, "workers", c.Workers, "parallel assignment workers")
		fs.StringVar(&c.Policy, "policy", c.Policy, "empty-cluster policy: retain or reseed-farthest")
		fs.StringVar(&c.Metric, "metric", c.Metric, "assignment metric: euclidean or squared-euclidean")
		fs.StringVar(&c.Format, "format", c.Format, "report format: text, json or html")
		fs.StringVar(&c.Codec, "codec", c.Codec, "JSON codec: go-json or json")
		fs.BoolVar(&c.Indent, "indent", c.Indent, "indent JSON output")
		fs.StringVar(&c.Out, "out", c.Out, "write the report to this blob instead of stdout")
	case "split":
		fs.StringVar(&c.Images, "images", c.Images, "idx image file in the store")
		fs.StringVar(&c.Labels, "labels", c.Labels, "idx label file in the store")
		fs.Float64Var(&c.Train, "train", c.Train, "training fraction")
		fs.Float64Var(&c.Test, "test", c.Test, "test fraction")
		fs.Float64Var(&c.Validation, "validation", c.Validation, "validation fraction")
		fs.BoolVar(&c.Print, "print", c.Print, "print every sampled record after the summary")
	}
	return fs
}

// parseConfig applies defaults, then the -config file, then the flags
// given in args.
func parseConfig(name string, args []string, stderr io.Writer) (Config, error) {
	cfg := defaultConfig()
	if err := cfg.flagSet(name, stderr).Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	merged := defaultConfig()
	if err := loadYAML(cfg.ConfigFile, &merged); err != nil {
		return Config{}, err
	}
	merged.ConfigFile = cfg.ConfigFile
	if err := merged.flagSet(name, io.Discard).Parse(args); err != nil {
		return Config{}, err
	}
	return merged, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// loadEnv loads the dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env %s: %w", path, err)
	}
	return nil
}

func (c *Config) logger(w io.Writer) (*clusterkit.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.LogFormat) {
	case "text", "":
		return clusterkit.NewLogger(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return clusterkit.NewLogger(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}
