package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/types"
	"github.com/spf13/viper"
)

const (
	configName = ".todolist"
	envPrefix  = "TODOLIST"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// configErr holds the last configuration problem; commands refuse to run with it.
var configErr error

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	err := validate.Struct(cfg)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed '%s' (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// It's okay if the .env file doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., TODOLIST_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // TODOLIST_DATA_FILE

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		// A project-local ./.todolist directory wins over home and cwd.
		if info, err := os.Stat(config.AppDirName); err == nil && info.IsDir() {
			viper.AddConfigPath(config.AppDirName)
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			// Found but unreadable, or a --config path that does not exist.
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("data.file", config.DefaultDataFile)
	viper.SetDefault("data.format", "json")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.crashDir", "")

	GlobalAppConfig = types.AppConfig{}
	configErr = nil
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		configErr = fmt.Errorf("error unmarshaling config: %w", err)
		return
	}

	// An explicit empty --file or --format still shadows the defaults.
	if strings.TrimSpace(GlobalAppConfig.Data.File) == "" {
		GlobalAppConfig.Data.File = config.DefaultDataFile
	}
	if strings.TrimSpace(GlobalAppConfig.Data.Format) == "" {
		GlobalAppConfig.Data.Format = "json"
	}
	GlobalAppConfig.Data.Format = strings.ToLower(GlobalAppConfig.Data.Format)
	GlobalAppConfig.Log.Level = strings.ToLower(GlobalAppConfig.Log.Level)

	configErr = validateAppConfig(&GlobalAppConfig)
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
