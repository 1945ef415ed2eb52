package config

import (
	"errors"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds every tunable of the assistant. Values come from, in
// increasing precedence: built-in defaults, an optional tilewright.yaml
// in the working directory, and TILEWRIGHT_* environment variables.
type Config struct {
	LexiconPath      string
	DefaultLexicon   string
	UserDictPath     string
	LetterValuesPath string
	BoardHeight      int
	BoardWidth       int
	RackSize         int
	SearchWorkers    int
	Debug            bool
}

func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("lexicon-path", "./data/lexica")
	v.SetDefault("default-lexicon", "ntlworld.wordlist.txt")
	v.SetDefault("user-dict-path", "./data/userdict.db")
	v.SetDefault("letter-values-path", "")
	v.SetDefault("board-height", 15)
	v.SetDefault("board-width", 15)
	v.SetDefault("rack-size", 7)
	v.SetDefault("search-workers", runtime.NumCPU())
	v.SetDefault("debug", false)

	v.SetEnvPrefix("tilewright")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("tilewright")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug().Msg("no config file found, using defaults")
	}

	c.LexiconPath = v.GetString("lexicon-path")
	c.DefaultLexicon = v.GetString("default-lexicon")
	c.UserDictPath = v.GetString("user-dict-path")
	c.LetterValuesPath = v.GetString("letter-values-path")
	c.BoardHeight = v.GetInt("board-height")
	c.BoardWidth = v.GetInt("board-width")
	c.RackSize = v.GetInt("rack-size")
	c.SearchWorkers = v.GetInt("search-workers")
	c.Debug = v.GetBool("debug")
	return nil
}
