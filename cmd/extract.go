package cmd

import (
	"github.com/pcbtools/go-pcb-decryptor/internal/config"
	"github.com/pcbtools/go-pcb-decryptor/internal/decryptor"
	"github.com/pcbtools/go-pcb-decryptor/internal/pcb"
	"github.com/spf13/cobra"
)

var extractOutputDir string

// extractCmd decrypts each encrypted block into its own file
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Decrypt each encrypted block into a standalone file",
	Long: `Extract decrypts every encrypted block of the input file and writes each
one to <name>_decrypted_blocks/<label>_<name>_block_<index>.decrypted.dat,
where the label is parsed out of the decrypted payload itself.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := decryptor.Options{
			OutputDir: extractOutputDir,
			Overwrite: overwriteFlag(cmd),
		}
		if opts.OutputDir == "" {
			opts.OutputDir = config.Instance.Output.Dir
		}
		return decryptor.ExtractBlocks(pcb.NewCodec(), args[0], opts)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutputDir, "output-dir", "o", "", "directory for extracted blocks (default <name>_decrypted_blocks next to the input)")
}

// overwriteFlag resolves the overwrite setting from flag and config
func overwriteFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("overwrite") {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return overwrite
	}
	return config.Instance.Output.Overwrite
}
