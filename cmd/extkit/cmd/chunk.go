// File: chunk.go
// Title: Chunk Command
// Description: Splits input into fixed-size blocks and prints each block
//              with its offset in hex, Base64 or Base58.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/utils/bytex"
	"github.com/msto63/extkit/utils/enumx"
	"github.com/msto63/extkit/utils/streamx"
)

type blockEncoding int

const (
	encodingHex blockEncoding = iota
	encodingBase64
	encodingBase58
	encodingText
)

var blockEncodings = enumx.NewRegistry[blockEncoding]().
	MustRegister(encodingHex, "hex").
	MustRegister(encodingBase64, "base64").
	MustRegister(encodingBase58, "base58").
	MustRegister(encodingText, "text")

func (e blockEncoding) encode(b []byte) string {
	switch e {
	case encodingBase64:
		return bytex.ToBase64(b)
	case encodingBase58:
		return bytex.ToBase58(b)
	case encodingText:
		return fmt.Sprintf("%q", bytex.ToUTF8String(b))
	default:
		return bytex.ToHex(b)
	}
}

func newChunkCmd(_ *options) *cobra.Command {
	var (
		size     int
		pad      bool
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "chunk [file]",
		Short: "Split input into fixed-size blocks",
		Long: `Reads file, or stdin when no file is given, splits it into blocks of
--size bytes and prints one block per line prefixed with its offset.
The last block is shorter unless --pad fills it with zero bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := blockEncodings.Parse(encoding)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			data, err := streamx.ReadAllBytes(r)
			if err != nil {
				return err
			}

			blocks, err := bytex.BlockCopy(data, size, pad)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			offset := 0
			for block := range blocks {
				fmt.Fprintf(out, "%s  %s\n", st.muted.Render(fmt.Sprintf("%08x", offset)), enc.encode(block))
				offset += size
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 16, "block size in bytes")
	cmd.Flags().BoolVar(&pad, "pad", false, "zero-pad the last block")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "hex", "block encoding: hex, base64, base58 or text")
	return cmd
}
