package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"wheeler-compression/bwt"
	wcError "wheeler-compression/error"
	"wheeler-compression/mtf"
	"wheeler-compression/stats"
	wheelercodec "wheeler-compression/wheeler-codec"
)

func Ratio(num int, denom int) float32 {
	if denom == 0 {
		return 0.0
	}

	return float32(num) / float32(denom)
}

func Percent(num int, denom int) float32 {
	return 100.0 * Ratio(num, denom)
}

func fileSize(filename string) (int64, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

func CommandTransform(filename string, method wheelercodec.Method, removeOriginal bool) error {
	originalSize, err := fileSize(filename)
	if err != nil {
		return err
	}

	transformedName, err := wheelercodec.TransformFile(filename, method, removeOriginal)
	if err != nil {
		var codecErr *wcError.CodecError
		if errors.As(err, &codecErr) && codecErr.Severity == wcError.CODEC_ERROR_SEVERITY_INFO {
			// the transformed file is complete, only the cleanup failed
			fmt.Println(codecErr.Error())
		} else {
			return err
		}
	}

	transformedSize, err := fileSize(transformedName)
	if err != nil {
		return err
	}

	fmt.Printf("Original size:    %7d\n", originalSize)
	fmt.Printf("Transformed size: %7d (%.1f%%) -> %s\n",
		transformedSize, Percent(int(transformedSize), int(originalSize)), transformedName)

	return nil
}

func CommandRestore(filename string, method wheelercodec.Method, outName string) error {
	restoredName, err := wheelercodec.RestoreFile(filename, method, outName)
	if err != nil {
		return err
	}

	restoredSize, err := fileSize(restoredName)
	if err != nil {
		return err
	}

	fmt.Printf("Restored size:    %7d -> %s\n", restoredSize, restoredName)

	return nil
}

// CommandStats reports how a file responds to the block transform, with the
// move to front view computed block by block the way the codec would.
func CommandStats(filename string, chartsDir string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	rawStats := stats.Analyze(content)

	ranked := make([]byte, 0, len(content))
	for start := 0; start < len(content); start += wheelercodec.BLOCK_SIZE {
		end := start + wheelercodec.BLOCK_SIZE
		if end > len(content) {
			end = len(content)
		}

		column, _ := bwt.Encode(content[start:end])
		ranked = append(ranked, mtf.Encode(column)...)
	}

	rankedStats := stats.Analyze(ranked)

	rawProbe, err := stats.CompressedSizes(content)
	if err != nil {
		return err
	}

	rankedProbe, err := stats.CompressedSizes(ranked)
	if err != nil {
		return err
	}

	fmt.Printf("File size:        %7d\n", rawStats.Size)
	fmt.Printf("Distinct bytes:   %7d\n", rawStats.DistinctBytes)
	fmt.Printf("Entropy:          %7.3f bits/byte\n", rawStats.Entropy)
	fmt.Printf("Longest run:      %7d\n", rawStats.LongestRun)
	fmt.Println()
	fmt.Println("After the transform and move to front:")
	fmt.Printf("Entropy:          %7.3f bits/byte\n", rankedStats.Entropy)
	fmt.Printf("Zero rank share:  %6.1f%%\n", 100*rankedStats.RankZeroShare())
	fmt.Printf("Longest run:      %7d\n", rankedStats.LongestRun)
	fmt.Println()
	fmt.Printf("zstd raw:         %7d (%.1f%%)\n", rawProbe.Zstd, Percent(rawProbe.Zstd, rawProbe.Raw))
	fmt.Printf("zstd transformed: %7d (%.1f%%)\n", rankedProbe.Zstd, Percent(rankedProbe.Zstd, rawProbe.Raw))
	fmt.Printf("lz4 raw:          %7d (%.1f%%)\n", rawProbe.Lz4, Percent(rawProbe.Lz4, rawProbe.Raw))
	fmt.Printf("lz4 transformed:  %7d (%.1f%%)\n", rankedProbe.Lz4, Percent(rankedProbe.Lz4, rawProbe.Raw))

	if chartsDir != "" {
		if err := os.MkdirAll(chartsDir, 0755); err != nil {
			return err
		}

		rankChart := filepath.Join(chartsDir, "ranks.svg")
		if err := stats.RenderRankChart(rankChart, rankedStats.Histogram); err != nil {
			return err
		}

		runChart := filepath.Join(chartsDir, "runs.svg")
		if err := stats.RenderRunChart(runChart, rankedStats.RunLengths); err != nil {
			return err
		}

		fmt.Printf("Charts written to %s and %s\n", rankChart, runChart)
	}

	return nil
}

type CliCommand struct {
	fn       func(args []string) error
	flagset  *flag.FlagSet
	argsdesc string // argument description
	desc     string
}

// Describes how to use a given command.
func PrintCmdUsage(name string, cmd CliCommand) {
	fmt.Printf("%s %s - %s\n", name, cmd.argsdesc, cmd.desc)
	fs := cmd.flagset
	count := 0
	fs.VisitAll(func(_ *flag.Flag) {
		count++
	})
	if count != 0 {
		fs.Usage()
	}
}

func PrintUsage(commands map[string]CliCommand) {
	fmt.Println()
	fmt.Println("Usage: wheeler <command> [arguments]")
	fmt.Println("Commands available:")

	names := []string{}
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("    %-10s %s\n", name, cmd.desc)
	}
}

func main() {
	transformFlags := flag.NewFlagSet("transform", flag.ExitOnError)
	restoreFlags := flag.NewFlagSet("restore", flag.ExitOnError)
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)
	helpFlags := flag.NewFlagSet("help", flag.ExitOnError)

	transformOptMtf := transformFlags.Bool("mtf", false, "apply the move to front stage after the transform")
	transformOptRemove := transformFlags.Bool("rm", false, "remove the original file after a successful transform")
	restoreOptMtf := restoreFlags.Bool("mtf", false, "undo the move to front stage before reversing the transform")
	restoreOptOut := restoreFlags.String("out", "", "name for the restored file")
	statsOptCharts := statsFlags.String("charts", "", "directory to write SVG charts into")

	var commands map[string]CliCommand

	cmdTransform := func(args []string) error {
		transformFlags.Parse(args)
		files := transformFlags.Args()
		if len(files) != 1 {
			fmt.Println("'transform' command: expected an <input> argument")
			os.Exit(1)
		}

		method := wheelercodec.WITHOUT_MTF
		if *transformOptMtf {
			method = wheelercodec.WITH_MTF
		}

		return CommandTransform(files[0], method, *transformOptRemove)
	}

	cmdRestore := func(args []string) error {
		restoreFlags.Parse(args)
		files := restoreFlags.Args()
		if len(files) != 1 {
			fmt.Println("'restore' command: expected an <input> argument")
			os.Exit(1)
		}

		method := wheelercodec.WITHOUT_MTF
		if *restoreOptMtf {
			method = wheelercodec.WITH_MTF
		}

		return CommandRestore(files[0], method, *restoreOptOut)
	}

	cmdStats := func(args []string) error {
		statsFlags.Parse(args)
		files := statsFlags.Args()
		if len(files) != 1 {
			fmt.Println("'stats' command: expected an <input> argument")
			os.Exit(1)
		}

		return CommandStats(files[0], *statsOptCharts)
	}

	cmdHelp := func(args []string) error {
		helpFlags.Parse(args)
		names := helpFlags.Args()
		if len(names) > 0 {
			cmd, pres := commands[names[0]]
			if !pres {
				fmt.Println("error: unknown command for help")
				PrintUsage(commands)
				os.Exit(1)
			}
			PrintCmdUsage(names[0], cmd)
		} else {
			PrintUsage(commands)
		}

		return nil
	}

	commands = map[string]CliCommand{
		"transform": {cmdTransform, transformFlags, "<input>", "rotation sort a file block by block"},
		"restore":   {cmdRestore, restoreFlags, "<input>", "rebuild the original file from a transformed one"},
		"stats":     {cmdStats, statsFlags, "<input>", "report how well a file responds to the transform"},
		"help":      {cmdHelp, helpFlags, "", "list commands or describe a single command"},
	}

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		PrintUsage(commands)
		os.Exit(1)
	}

	cmd, pres := commands[os.Args[1]]
	if !pres {
		fmt.Println("error: unknown command")
		PrintUsage(commands)
		os.Exit(1)
	}

	err := cmd.fn(os.Args[2:])
	if err != nil {
		fmt.Println("error:", err.Error())
		os.Exit(1)
	}
}
