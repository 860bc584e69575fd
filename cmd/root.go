package cmd

import (
	"errors"
	"fmt"

	"github.com/pcbtools/go-pcb-decryptor/internal/config"
	"github.com/pcbtools/go-pcb-decryptor/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "pcbdec",
	Short: "Decryptor for XZZ PCB board files",
	Long: `pcbdec decodes XZZ PCB circuit-board design files. It removes the
single-byte XOR obfuscation layer when one is present, locates the encrypted
blocks in the file's block directory, and decrypts them with the format's
fixed DES key.

Blocks can either be extracted individually (one file per block, named from
the label embedded in the decrypted payload) or spliced back in place to
produce a fully decrypted copy of the input file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI flags can override config settings
		debug, _ := cmd.Flags().GetBool("debug")
		logFormat, _ := cmd.Flags().GetString("log-format")

		if cmd.Flags().Changed("debug") {
			config.Instance.Debug = debug
		}

		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat = logFormat
		}

		if cmd.Flags().Changed("config") && cfgFile != "" {
			// Only log an error, don't exit, as the config may still be usable
			if err := config.Initialize(cfgFile); err != nil {
				logger.LogError("Error loading config file", err, map[string]interface{}{
					"config_file": cfgFile,
				})
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Running without a mode is a usage error, not a help request.
		cmd.Help()
		return errors.New("no mode selected: use extract, decrypt, or inspect")
	},
}

// Execute runs the root command and reports whether it succeeded
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command execution failed", err, nil)
		return err
	}
	return nil
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")

	// Debug flag
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Log format flag
	rootCmd.PersistentFlags().String("log-format", "human", "Log format: json or human")

	// Overwrite flag applies to every output-producing mode
	rootCmd.PersistentFlags().Bool("overwrite", false, "Overwrite existing output files")

	// Bind flags to viper settings
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("output.overwrite", rootCmd.PersistentFlags().Lookup("overwrite"))

	// Add subcommands
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pcbdec v0.1.0")
	},
}
