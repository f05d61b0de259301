// Command sux builds and queries the rank9, simpleselect and doubleef
// succinct structures from plain-text inputs, mostly useful for poking
// at the library from a shell or scripting a quick benchmark.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/succinctgo/sux"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sux",
		Short: "Build and query succinct rank/select/Elias-Fano structures",
	}

	rootCmd.AddCommand(newRank9Cmd(), newSelectCmd(), newEFCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRank9Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank9",
		Short: "Build a Rank9 index and report its overhead",
	}

	var onesPath string
	var numBits uint64

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a Rank9 index over a set-bit-position file and print its stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, n, err := loadBitsFromOnes(onesPath, numBits)
			if err != nil {
				return err
			}
			r := sux.NewRank9(bits, n)
			fmt.Printf("Rank9\n")
			fmt.Printf("  bits:     %d\n", r.NumBits())
			fmt.Printf("  ones:     %d\n", r.NumOnes())
			fmt.Printf("  overhead: %d bits (%.2f%%)\n", r.BitCount(), 100*float64(r.BitCount())/float64(r.NumBits()))
			fmt.Printf("  rank(n):  %d\n", r.Rank(n))
			return nil
		},
	}
	buildCmd.Flags().StringVar(&onesPath, "ones", "", "path to a file listing set-bit positions, one per line")
	buildCmd.Flags().Uint64Var(&numBits, "num-bits", 0, "length of the bit vector, in bits")
	cmd.AddCommand(buildCmd)
	return cmd
}

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Build a SimpleSelectHalf index and report its overhead",
	}

	var onesPath string
	var numBits uint64

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build a select index over a set-bit-position file and print its stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, n, err := loadBitsFromOnes(onesPath, numBits)
			if err != nil {
				return err
			}
			s := sux.NewSimpleSelectHalf(bits, n)
			fmt.Printf("SimpleSelectHalf\n")
			fmt.Printf("  bits:     %d\n", s.NumBits())
			fmt.Printf("  ones:     %d\n", s.NumOnes())
			fmt.Printf("  overhead: %d bits (%.2f%%)\n", s.BitCount(), 100*float64(s.BitCount())/float64(s.NumBits()))
			if s.NumOnes() > 0 {
				fmt.Printf("  select(0): %d\n", s.Select(0))
				fmt.Printf("  select(NumOnes-1): %d\n", s.Select(s.NumOnes()-1))
			}
			return nil
		},
	}
	buildCmd.Flags().StringVar(&onesPath, "ones", "", "path to a file listing set-bit positions, one per line")
	buildCmd.Flags().Uint64Var(&numBits, "num-bits", 0, "length of the bit vector, in bits")
	cmd.AddCommand(buildCmd)
	return cmd
}

func newEFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ef",
		Short: "Encode and query DoubleEF structures",
	}

	var bucketsPath, outPath string
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a two-column cumKeys/position file into a DoubleEF dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			cumKeys, position, err := loadBuckets(bucketsPath)
			if err != nil {
				return err
			}
			ef, err := sux.NewDoubleEF(cumKeys, position)
			if err != nil {
				return err
			}
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := ef.WriteTo(f)
			if err != nil {
				return err
			}
			fmt.Printf("encoded %d buckets into %d bytes at %s\n", ef.NumBuckets(), n, outPath)
			return nil
		},
	}
	encodeCmd.Flags().StringVar(&bucketsPath, "buckets", "", "path to a whitespace-separated cumKeys/position file")
	encodeCmd.Flags().StringVar(&outPath, "out", "", "path to write the DoubleEF dump")
	cmd.AddCommand(encodeCmd)

	var inPath string
	var index uint64
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a single bucket from a DoubleEF dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer f.Close()

			var ef sux.DoubleEF
			if _, err := ef.ReadFrom(f); err != nil {
				return err
			}
			c, cNext, p := ef.Get(index)
			fmt.Printf("cumKeys[%d]=%d cumKeys[%d]=%d position[%d]=%d\n", index, c, index+1, cNext, index, p)
			return nil
		},
	}
	getCmd.Flags().StringVar(&inPath, "in", "", "path to a DoubleEF dump")
	getCmd.Flags().Uint64Var(&index, "index", 0, "bucket index to look up")
	cmd.AddCommand(getCmd)

	return cmd
}

func loadBitsFromOnes(path string, numBits uint64) ([]uint64, uint64, error) {
	if path == "" {
		return nil, 0, fmt.Errorf("--ones is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	numWords := (numBits+63)/64 + 1
	words := make([]uint64, numWords)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("parsing %q: %w", line, err)
		}
		if p/64 >= uint64(len(words)) {
			words = append(words, make([]uint64, p/64-uint64(len(words))+2)...)
		}
		words[p/64] |= 1 << (p % 64)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return words, numBits, nil
}

func loadBuckets(path string) (cumKeys, position []uint64, err error) {
	if path == "" {
		return nil, nil, fmt.Errorf("--buckets is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("expected two fields per line, got %d in %q", len(fields), line)
		}
		c, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing cumKeys %q: %w", fields[0], err)
		}
		p, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing position %q: %w", fields[1], err)
		}
		cumKeys = append(cumKeys, c)
		position = append(position, p)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return cumKeys, position, nil
}
