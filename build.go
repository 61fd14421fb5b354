//go:build ignore

// build.go - YCSB converter build script
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: all, converter, test, clean

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	module     = "ycsbcli"
	contracts  = module + "/pkg/contracts"
	binaryName = "ycsb-converter"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
)

var distDir = "dist"

func main() {
	target := flag.String("target", "all", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	printHeader()
	startTime := time.Now()

	switch *target {
	case "all":
		runTests(*verbose)
		buildConverter(*verbose)
	case "converter":
		buildConverter(*verbose)
	case "test":
		runTests(*verbose)
	case "clean":
		clean()
	default:
		showHelp()
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("Build completed in %s", time.Since(startTime).Round(time.Millisecond)))
}

func printHeader() {
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println(colorCyan + "     YCSB Throughput Converter - Build     " + colorReset)
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println()
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorBlue, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[SUCCESS]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Printf("%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}

func printWarning(msg string) {
	fmt.Printf("%s[WARNING]%s %s\n", colorYellow, colorReset, msg)
}

// gitValue returns the trimmed output of a git command, or "unknown"
func gitValue(args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func buildConverter(verbose bool) {
	printInfo("Building converter...")

	exeName := binaryName
	if runtime.GOOS == "windows" {
		exeName += ".exe"
	}
	outputPath := filepath.Join(distDir, exeName)

	commit := gitValue("rev-parse", "--short", "HEAD")
	if commit == "unknown" {
		printWarning("Not a git checkout, commit and branch stay unknown")
	}

	ldflags := strings.Join([]string{
		"-s -w",
		fmt.Sprintf("-X %s.BuildTime=%s", contracts, time.Now().UTC().Format(time.RFC3339)),
		fmt.Sprintf("-X %s.GitCommit=%s", contracts, commit),
		fmt.Sprintf("-X %s.GitBranch=%s", contracts, gitValue("rev-parse", "--abbrev-ref", "HEAD")),
	}, " ")

	args := []string{"build"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "-ldflags", ldflags, "-o", outputPath, "./cmd/converter")

	if verbose {
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
	}
	if err := run(verbose, "go", args...); err != nil {
		printError(fmt.Sprintf("Failed to build converter: %v", err))
		os.Exit(1)
	}

	if info, err := os.Stat(outputPath); err == nil {
		sizeMB := float64(info.Size()) / 1024 / 1024
		printSuccess(fmt.Sprintf("Built %s (%.1f MB)", outputPath, sizeMB))
	}
}

func runTests(verbose bool) {
	printInfo("Running Go tests...")

	args := []string{"test", "-race"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	if err := run(true, "go", args...); err != nil {
		printError(fmt.Sprintf("Tests failed: %v", err))
		os.Exit(1)
	}
	printSuccess("All tests passed")
}

func clean() {
	printInfo("Cleaning build artifacts...")
	if err := os.RemoveAll(distDir); err != nil {
		printError(fmt.Sprintf("Failed to clean %s: %v", distDir, err))
		return
	}
	printSuccess("Build artifacts cleaned")
}

func run(stream bool, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if stream {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

func showHelp() {
	fmt.Println("Usage: go run build.go [-target=TARGET] [-v]")
	fmt.Println()
	fmt.Println("Targets:")
	fmt.Println("  all        Run tests, then build the converter (default)")
	fmt.Println("  converter  Build dist/" + binaryName)
	fmt.Println("  test       Run go test -race ./...")
	fmt.Println("  clean      Remove dist/")
}
