// Package config resolves runtime settings for the server and CLI by
// layering command-line flags over MSALIGN_*-prefixed environment
// variables, the way the CLI tools in this corpus use spf13/viper
// alongside spf13/pflag-backed cobra commands.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/segment"
)

// Config holds every tunable the server and CLI share.
type Config struct {
	Addr            string
	LogLevel        string
	PartialBound    int
	TensorCellCap   int
	SegmentLength   int
	BarrierLength   int
	SegmentMinLen   int
	SegmentMaxLen   int
}

// Defaults returns the built-in defaults, used before flags and
// environment variables are layered on top.
func Defaults() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		PartialBound:  2,
		TensorCellCap: msa.DefaultTensorCellCap,
		SegmentLength: segment.DefaultMinLength,
		BarrierLength: segment.DefaultBarrierLength,
		SegmentMinLen: segment.DefaultMinLength,
		SegmentMaxLen: segment.DefaultMaxLength,
	}
}

// Load binds flags to a viper instance pre-seeded with defaults and an
// MSALIGN_ environment prefix, then unmarshals into a Config. flags may be
// nil, in which case only defaults and the environment apply.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("msalign")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("partial-bound", d.PartialBound)
	v.SetDefault("tensor-cell-cap", d.TensorCellCap)
	v.SetDefault("segment-length", d.SegmentLength)
	v.SetDefault("barrier-length", d.BarrierLength)
	v.SetDefault("segment-min-length", d.SegmentMinLen)
	v.SetDefault("segment-max-length", d.SegmentMaxLen)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}

	return Config{
		Addr:          v.GetString("addr"),
		LogLevel:      v.GetString("log-level"),
		PartialBound:  v.GetInt("partial-bound"),
		TensorCellCap: v.GetInt("tensor-cell-cap"),
		SegmentLength: v.GetInt("segment-length"),
		BarrierLength: v.GetInt("barrier-length"),
		SegmentMinLen: v.GetInt("segment-min-length"),
		SegmentMaxLen: v.GetInt("segment-max-length"),
	}, nil
}
