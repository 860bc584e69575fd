package cmd

import (
	"github.com/pcbtools/go-pcb-decryptor/internal/decryptor"
	"github.com/pcbtools/go-pcb-decryptor/internal/pcb"
	"github.com/spf13/cobra"
)

var decryptOutputPath string

// decryptCmd produces a fully decrypted copy of the container
var decryptCmd = &cobra.Command{
	Use:   "decrypt <file>",
	Short: "Decrypt the whole file in place of its encrypted blocks",
	Long: `Decrypt rebuilds the input file with every encrypted block body replaced
by its decrypted bytes, leaving the rest of the container untouched, and
writes the result to <name>.decrypted.pcb.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := decryptor.Options{
			OutputPath: decryptOutputPath,
			Overwrite:  overwriteFlag(cmd),
		}
		return decryptor.DecryptFile(pcb.NewCodec(), args[0], opts)
	},
}

func init() {
	decryptCmd.Flags().StringVarP(&decryptOutputPath, "output", "o", "", "output path (default <name>.decrypted.pcb)")
}
