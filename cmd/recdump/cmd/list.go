package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julionce/once-io/pkg/chunk"
	"github.com/julionce/once-io/pkg/recordio"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the records in a file",
	Long: `List the records in a record file, one line per record with its
index, offset, payload size and tag.

Example:
  recdump list data.rec`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt64("offset")

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		if _, err := file.Seek(offset, io.SeekStart); err != nil {
			return fmt.Errorf("failed to seek to start offset: %w", err)
		}
		window, err := chunk.Wrap(file)
		if err != nil {
			return err
		}

		reader := recordio.NewReader(window)
		fmt.Printf("%-6s %-10s %-12s %s\n", "INDEX", "OFFSET", "SIZE", "TAG")
		for i := 0; ; i++ {
			record, err := reader.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, recordio.ErrCorruption) {
				return fmt.Errorf("corrupt record at index %d", i)
			}
			if err != nil {
				return err
			}
			fmt.Printf("%-6d %-10d %-12d 0x%08x\n", i, record.Offset, record.Size, record.Tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
