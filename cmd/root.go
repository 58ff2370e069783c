package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/catalog"
	"github.com/spigell/career-advisor/internal/profile"
	"github.com/spigell/career-advisor/internal/scoring"
)

const (
	app       = "career-advisor"
	envPrefix = "CAREER_ADVISOR"
)

type Config struct {
	// Latency simulates the round trip of a suggestion request.
	Latency time.Duration   `mapstructure:"latency"`
	Profile *ProfileConfig `mapstructure:"profile"`
}

// ProfileConfig seeds the profile a session starts with.
type ProfileConfig struct {
	Name       string   `mapstructure:"name"`
	Skills     []string `mapstructure:"skills"`
	Interests  []string `mapstructure:"interests"`
	Experience string   `mapstructure:"experience"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-advisor collects your skills and interests and suggests career paths with a roadmap",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("latency", scoring.DefaultLatency)
}

func initConfig() {
	// A missing .env is fine, it only provides overrides.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// The default config is optional, an explicit one is not.
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{Latency: scoring.DefaultLatency}
	}

	return config, nil
}

// startingProfile returns the built-in default profile with configured values applied on top.
func (c *Config) startingProfile() *profile.Profile {
	p := profile.Default()
	if c == nil || c.Profile == nil {
		return p
	}

	if c.Profile.Name != "" {
		p.SetName(c.Profile.Name)
	}
	if c.Profile.Skills != nil {
		p.Skills = nil
		for _, skill := range c.Profile.Skills {
			p.AddSkill(skill)
		}
	}
	if c.Profile.Interests != nil {
		p.Interests = append([]string{}, c.Profile.Interests...)
	}
	if c.Profile.Experience != "" {
		p.SetExperience(profile.ParseExperience(c.Profile.Experience))
	}

	return p
}

// loadCatalog returns the catalog override from the config file or the built-in one.
func loadCatalog(logger *zap.Logger) (*catalog.Catalog, error) {
	raw := viper.Get("catalog")
	if raw == nil {
		return catalog.Default(), nil
	}

	c, err := catalog.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from config: %w", err)
	}

	logger.Info("using catalog from config", zap.Strings("careers", c.IDs()))
	return c, nil
}
