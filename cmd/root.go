/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/josephgoksu/todolist/internal/config"
	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/session"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todolist",
	Short: "To-Do List Manager keeps your tasks in a local file.",
	Long: `To-Do List Manager keeps an ordered list of tasks in a local JSON file.
Run it without a subcommand for the interactive menu, or use the subcommands
to add, list, update, complete, delete and search tasks from the shell.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		setupLogging(cmd)
		return nil
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		HandleFatalError(userMessage(err), err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todolist/.todolist.yaml, $HOME/.todolist.yaml or ./.todolist.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringP("file", "f", "", "task data file (default is "+config.DefaultDataFile+")")
	rootCmd.PersistentFlags().String("format", "", "task data format: json, yaml or sqlite")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("data.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setupLogging(cmd *cobra.Command) {
	cfg := GetConfig()
	logger.Init(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Verbose)

	logger.SetCrashDir(config.CrashDir())
	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath())
	logger.SetDataFile(GetTaskFilePath())
}

// GetTaskFilePath returns the full path to the tasks file
func GetTaskFilePath() string {
	return config.DataFilePath()
}

// GetStore opens the configured backend and loads its tasks. Storage
// problems never fail here; they are reported through the LoadResult.
func GetStore() (*store.Store, store.LoadResult, error) {
	path := GetTaskFilePath()
	backend, err := store.NewBackend(path, GetConfig().Data.Format)
	if err != nil {
		return nil, store.LoadResult{}, fmt.Errorf("failed to initialize store at %s: %w", path, err)
	}
	s, res := store.Open(backend, store.WithLogger(slog.Default()))
	return s, res, nil
}

// getWritableStore is GetStore for commands that save. It refuses to continue
// when the existing file could not be read, so a one-shot command never
// replaces a damaged file with a near-empty list.
func getWritableStore() (*store.Store, error) {
	taskStore, res, err := GetStore()
	if err != nil {
		return nil, err
	}
	if res.Damaged() {
		return nil, fmt.Errorf("%w: %s is %s: %v", errUnreadableData, taskStore.Location(), res.Status, res.Err)
	}
	return taskStore, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	taskStore, res, err := GetStore()
	if err != nil {
		return err
	}
	if res.Damaged() {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleWarning.Render(
			fmt.Sprintf("Could not read %s (%s). Starting with an empty list.", taskStore.Location(), res.Status)))
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	s := session.New(taskStore, session.Config{
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Interrupts: interrupts,
		Pause:      ui.IsInteractive(),
		Logger:     slog.Default(),
	})
	outcome := s.Run()
	slog.Debug("session finished", "reason", outcome.Reason.String(), "saved", outcome.Saved)
	return nil
}
