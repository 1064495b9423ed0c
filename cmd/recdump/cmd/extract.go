package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/julionce/once-io/pkg/chunk"
	"github.com/julionce/once-io/pkg/recordio"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file> <index>",
	Short: "Extract one record's payload",
	Long: `Extract the payload of the record at the given index, writing it to
stdout or to the file named by --out.

Example:
  recdump extract data.rec 2 --out payload.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt64("offset")
		out, _ := cmd.Flags().GetString("out")

		index, err := strconv.Atoi(args[1])
		if err != nil || index < 0 {
			return fmt.Errorf("invalid record index: %s", args[1])
		}

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
		for i := 0; ; i++ {
			record, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("no record at index %d", index)
			}
			if err != nil {
				return err
			}
			if i < index {
				continue
			}

			dst := os.Stdout
			if out != "" {
				dst, err = os.Create(out)
				if err != nil {
					return err
				}
				defer dst.Close()
			}
			if _, err := dst.Write(record.Payload); err != nil {
				return err
			}
			return nil
		}
	},
}

func init() {
	extractCmd.Flags().StringP("out", "o", "", "Write the payload to this file instead of stdout")
	rootCmd.AddCommand(extractCmd)
}
