package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkravets/interview-trainer/internal/guidance"
	"github.com/mkravets/interview-trainer/internal/interview"
)

const (
	app = "interview-trainer"
)

// Config is the application configuration resolved from the config file,
// environment and flags.
type Config struct {
	Role                     string  `mapstructure:"role"`
	QuestionsFile            string  `mapstructure:"questions-file"`
	MaxFollowUps             *int    `mapstructure:"max-follow-ups"`
	EncouragementProbability float64 `mapstructure:"encouragement-probability"`
}

// MaxFollowUpsOrDefault returns the configured follow-up bound.
func (c *Config) MaxFollowUpsOrDefault() int {
	if c == nil || c.MaxFollowUps == nil {
		return interview.DefaultMaxFollowUps
	}
	return *c.MaxFollowUps
}

// EncouragementProbabilityOrDefault returns the configured encouragement
// chance per advance.
func (c *Config) EncouragementProbabilityOrDefault() float64 {
	if c == nil || c.EncouragementProbability == 0 {
		return guidance.DefaultEncouragementProbability
	}
	return c.EncouragementProbability
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-trainer is a cli for practicing mock interviews with heuristic feedback",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("questions-file", "INTERVIEW_QUESTIONS_FILE"); err != nil {
		log.Fatalf("binding INTERVIEW_QUESTIONS_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-trainer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The config file is optional: every key has a built-in default.
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
