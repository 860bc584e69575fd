package cmd

import (
	"fmt"

	"github.com/pcbtools/go-pcb-decryptor/internal/decryptor"
	"github.com/pcbtools/go-pcb-decryptor/internal/pcb"
	"github.com/spf13/cobra"
)

// inspectCmd lists the block directory without decrypting anything
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the block directory without decrypting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := decryptor.Inspect(pcb.NewCodec(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%-6s %-6s %-10s %-10s %s\n", "INDEX", "TYPE", "OFFSET", "SIZE", "ENCRYPTED")
		for i, b := range blocks {
			encrypted := ""
			if b.Encrypted() {
				encrypted = "yes"
			}
			fmt.Printf("%-6d 0x%02x   0x%-8x %-10d %s\n", i, b.Type, b.Start, b.Size(), encrypted)
		}
		return nil
	},
}
