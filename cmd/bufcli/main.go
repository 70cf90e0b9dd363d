// bufcli is a small inspection tool over the bytebuf API: it loads files
// into immutable buffers and exposes zero-copy slicing and hex dumps of
// the result. The formatting lives here, outside the library core, which
// only ever exposes content through its borrowed-slice view.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/bytebuf"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "bufcli",
		Short: "inspect byte buffers: hex dumps and zero-copy slices",
	}
	root.AddCommand(hexdumpCmd(), sliceCmd())
	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func loadFile(path string) (bytebuf.Bytes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bytebuf.Bytes{}, err
	}
	return bytebuf.CopyFromSlice(data), nil
}

func hexdumpCmd() *cobra.Command {
	var offset, length int
	cmd := &cobra.Command{
		Use:   "hexdump <file>",
		Short: "hex dump a file, optionally windowed to a byte range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadFile(args[0])
			if err != nil {
				return err
			}
			defer b.Release()

			if offset < 0 || offset > b.Len() {
				return fmt.Errorf("offset %d out of range for %d-byte file", offset, b.Len())
			}
			end := b.Len()
			if length >= 0 && offset+length < end {
				end = offset + length
			}
			view := b.Slice(offset, end)
			defer view.Release()

			log.WithFields(logrus.Fields{
				"file":  args[0],
				"bytes": view.Len(),
			}).Debug("dumping")

			d := hex.Dumper(cmd.OutOrStdout())
			defer d.Close()
			_, err = io.Copy(d, bytebuf.NewReader(&view))
			return err
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "start offset into the file")
	cmd.Flags().IntVar(&length, "length", -1, "number of bytes to dump (-1 for all)")
	return cmd
}

func sliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice <file> <begin> <end>",
		Short: "write the byte range [begin, end) of a file to stdout",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}
			b, err := loadFile(args[0])
			if err != nil {
				return err
			}
			defer b.Release()

			if begin < 0 || begin > end || end > b.Len() {
				return fmt.Errorf("range [%d:%d) out of bounds for %d-byte file", begin, end, b.Len())
			}
			view := b.Slice(begin, end)
			defer view.Release()
			_, err = io.Copy(cmd.OutOrStdout(), bytebuf.NewReader(&view))
			return err
		},
	}
	return cmd
}
