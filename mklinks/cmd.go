// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"rsc.io/linkify"
	"rsc.io/linkify/mdlink"
)

// errFailed reports that some inputs could not be processed.
// The details have already been logged.
var errFailed = errors.New("some files failed")

// Config keys. Flags use the same names with dashes.
const (
	keyBoardURL = "board_url"
	keyClass    = "class"
	keyDeny     = "deny_scheme"
	keyLazy     = "lazy_scheme"
	keyPunycode = "punycode"
	keyMarkdown = "markdown"
	keyUnlink   = "unlink"
	keyWrite    = "write"
	keyLogLevel = "log_level"
)

const (
	configName    = ".mklinks"
	defaultConfig = configName + ".yaml"
	envPrefix     = "MKLINKS"
	defaultLevel  = "warn"
	defaultLazy   = "http://"
)

// newRootCmd returns the mklinks command. Each call uses its own
// viper instance, so tests can run several commands in one process.
// The command resets *log to the configured level before running.
func newRootCmd(log *zerolog.Logger) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "mklinks [file...]",
		Short: "Turn URLs and email addresses in text into HTML links",
		Long: `Mklinks reads the named files, or else standard input, and prints
the text with its URLs and email addresses rewritten as HTML anchors,
the way a bulletin board renders a post.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfig(v, cfgFile); err != nil {
				return err
			}
			*log = log.Level(parseLevel(v.GetString(keyLogLevel)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newConverter(v, *log)
			if len(args) == 0 {
				if v.GetBool(keyWrite) {
					return errors.New("-w requires file arguments")
				}
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				out, err := c.convert(data)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			failed := false
			for _, file := range args {
				if err := c.file(file, cmd.OutOrStdout(), v.GetBool(keyWrite)); err != nil {
					log.Error().Err(err).Str("file", file).Msg("convert")
					failed = true
				}
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+defaultConfig+" or ./"+defaultConfig+")")
	f.String("board-url", "", "make links below `url` local links")
	f.String("class", linkify.DefaultClass, "anchor `class`")
	f.StringSlice("deny-scheme", nil, "never link URLs with this `scheme`")
	f.String("lazy-scheme", defaultLazy, "`scheme` added to www. links")
	f.Bool("punycode", false, "write internationalized host names in link targets as punycode")
	f.Bool("markdown", false, "treat input as Markdown and print HTML")
	f.Bool("unlink", false, "undo linkification")
	f.BoolP("write", "w", false, "write results to files instead of standard output")
	f.String("log-level", defaultLevel, "log `level`: debug, info, warn, or error")

	for key, flag := range map[string]string{
		keyBoardURL: "board-url",
		keyClass:    "class",
		keyDeny:     "deny-scheme",
		keyLazy:     "lazy-scheme",
		keyPunycode: "punycode",
		keyMarkdown: "markdown",
		keyUnlink:   "unlink",
		keyWrite:    "write",
		keyLogLevel: "log-level",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

// readConfig loads the config file and environment into v.
// A missing default config file is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// A converter applies the configured conversion to input data.
type converter struct {
	l        *linkify.Linkifier
	lazy     string
	markdown bool
	unlink   bool
	log      zerolog.Logger
}

func newConverter(v *viper.Viper, log zerolog.Logger) *converter {
	opts := linkify.Options{
		BoardURL:      v.GetString(keyBoardURL),
		Class:         v.GetString(keyClass),
		DenySchemes:   v.GetStringSlice(keyDeny),
		LazyScheme:    v.GetString(keyLazy),
		PunycodeHosts: v.GetBool(keyPunycode),
	}
	log.Debug().
		Str("board_url", opts.BoardURL).
		Str("class", opts.Class).
		Strs("deny_scheme", opts.DenySchemes).
		Bool("punycode", opts.PunycodeHosts).
		Msg("options")
	return &converter{
		l:        linkify.New(opts),
		lazy:     opts.LazyScheme,
		markdown: v.GetBool(keyMarkdown),
		unlink:   v.GetBool(keyUnlink),
		log:      log,
	}
}

// convert returns the converted form of data.
func (c *converter) convert(data []byte) ([]byte, error) {
	switch {
	case c.unlink:
		lazy := c.lazy
		if lazy == "" {
			lazy = defaultLazy
		}
		return []byte(linkify.UnlinkScheme(string(data), lazy)), nil
	case c.markdown:
		var buf bytes.Buffer
		if err := mdlink.Convert(data, &buf, c.l); err != nil {
			return nil, fmt.Errorf("rendering markdown: %w", err)
		}
		return buf.Bytes(), nil
	}
	text := string(data)
	if c.log.GetLevel() <= zerolog.DebugLevel {
		for _, link := range c.l.Scan(text) {
			c.log.Debug().Stringer("kind", link.Kind).Str("url", link.URL).Int("offset", link.Start).Msg("link")
		}
	}
	return []byte(c.l.Linkify(text)), nil
}

// file converts the named file, writing the result to stdout
// or, if write is set, back to the file.
func (c *converter) file(name string, stdout io.Writer, write bool) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	out, err := c.convert(data)
	if err != nil {
		return err
	}
	if write {
		if bytes.Equal(out, data) {
			c.log.Info().Str("file", name).Msg("unchanged")
			return nil
		}
		return os.WriteFile(name, out, 0666)
	}
	_, err = stdout.Write(out)
	return err
}
