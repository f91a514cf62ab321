package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/promstats"
)

// Keys of configuration values, used both as flag names and as config file keys.
const (
	keyConfig     = "config"     // string
	keyLogLevel   = "log-level"  // string
	keyMemoSize   = "memo-size"  // int
	keyStats      = "stats"      // bool
	keyStart      = "start"      // string
	keyWhitespace = "whitespace" // string
	keyOutput     = "output"     // string
)

const envPrefix = "combo"

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	return vp
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String(keyConfig, "", "optional config file")
	flags.String(keyLogLevel, "warning", "log level (debug enables parser tracing)")
	flags.Int(keyMemoSize, parser.DefaultMemoSize, "memoization cache size per parse, 0 disables memoization")
	flags.Bool(keyStats, false, "print parser metrics after the command")
}

// settings are values shared by all commands, resolved once flags are parsed.
type settings struct {
	vp      *viper.Viper
	log     *logrus.Logger
	stats   *promstats.Collector
	metrics *prometheus.Registry
}

func newSettings(vp *viper.Viper, log *logrus.Logger) *settings {
	return &settings{vp: vp, log: log}
}

// load reads config file (if any) and applies logging settings.
func (s *settings) load() error {
	if name := s.vp.GetString(keyConfig); name != "" {
		s.vp.SetConfigFile(name)
		if e := s.vp.ReadInConfig(); e != nil {
			return errors.Wrapf(e, "cannot read config file %s", name)
		}
		s.log.WithField("file", name).Debug("config loaded")
	}

	level, e := logrus.ParseLevel(s.vp.GetString(keyLogLevel))
	if e != nil {
		return errors.Wrap(e, "wrong log level")
	}
	s.log.SetLevel(level)

	if s.vp.GetBool(keyStats) {
		s.stats = promstats.New("combo")
		s.metrics = prometheus.NewRegistry()
		if e := s.metrics.Register(s.stats); e != nil {
			return errors.Wrap(e, "cannot register parser metrics")
		}
	}
	return nil
}

func (s *settings) parserOptions() []parser.Option {
	res := []parser.Option{
		parser.WithLogger(s.log),
		parser.WithMemoSize(s.vp.GetInt(keyMemoSize)),
	}
	if s.stats != nil {
		res = append(res, parser.WithObserver(s.stats))
	}
	return res
}

func (s *settings) writeStats(w io.Writer) error {
	if s.metrics == nil {
		return nil
	}

	families, e := s.metrics.Gather()
	if e != nil {
		return errors.Wrap(e, "cannot gather parser metrics")
	}
	for _, mf := range families {
		if _, e = expfmt.MetricFamilyToText(w, mf); e != nil {
			return errors.Wrap(e, "cannot write parser metrics")
		}
	}
	return nil
}
