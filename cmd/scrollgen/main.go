// scrollgen — placeholder images for the scroll animation.
//
// Usage:
//
//	scrollgen [generate]
//	scrollgen verify
//	scrollgen manifest
//	scrollgen preview [-o <file>] [-w <px>] [-h <px>] [--font <path>]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/scrollgen/pkg/generator"
	"github.com/xob0t/scrollgen/pkg/preview"
)

// errVerifyFailed is returned after the verify report has been printed.
var errVerifyFailed = errors.New("assets do not match the placeholder layout")

func main() {
	os.Exit(run(os.Args[1:], ".", os.Stdout, os.Stderr))
}

// run dispatches a subcommand against root and returns the exit code.
func run(args []string, root string, stdout, stderr io.Writer) int {
	cmd := "generate"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	prefix := "Error"
	switch cmd {
	case "generate", "gen":
		prefix = "Error generating placeholders"
		err = runGenerate(args, root, stdout, stderr)
	case "verify":
		err = runVerify(args, root, stdout, stderr)
	case "manifest":
		err = runManifest(args, stdout, stderr)
	case "preview":
		err = runPreview(args, root, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		printUsage(stderr)
		return 1
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "%s: %v\n", prefix, err)
		return 1
	}
}

func runGenerate(args []string, root string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	fmt.Fprintln(stdout, "Scroll Placeholder Generator")
	fmt.Fprintln(stdout, strings.Repeat("=", 50))

	gen := generator.New(generator.Config{
		Root:     root,
		Observer: generator.ConsoleObserver{W: stdout},
	})
	if err := gen.Run(); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "All placeholder images generated successfully!")
	fmt.Fprintln(stdout, "The scroll sequence should now load without image errors")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintln(stdout, "1. Run \"scrollgen verify\" or open the page to confirm no image loading errors")
	fmt.Fprintln(stdout, "2. Replace placeholders with actual artwork when ready")
	fmt.Fprintf(stdout, "3. Keep the front-end frame count at %d if frames are added or removed\n", generator.FrameCount)
	return nil
}

func runVerify(args []string, root string, stdout, stderr io.Writer) error {
	fs := newFlagSet("verify", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	rep, err := generator.Verify(root)
	if err != nil {
		return err
	}

	for _, p := range rep.Missing {
		fmt.Fprintf(stdout, "missing:    %s\n", p)
	}
	for _, p := range rep.Mismatched {
		fmt.Fprintf(stdout, "mismatched: %s\n", p)
	}
	for _, p := range rep.Extra {
		fmt.Fprintf(stdout, "extra:      %s\n", p)
	}
	fmt.Fprintf(stdout, "Checked %d files: %d missing, %d mismatched, %d extra\n",
		rep.Checked, len(rep.Missing), len(rep.Mismatched), len(rep.Extra))

	if !rep.OK() {
		return errVerifyFailed
	}
	return nil
}

func runManifest(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("manifest", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(generator.BuildManifest())
}

func runPreview(args []string, root string, stdout, stderr io.Writer) error {
	fs := newFlagSet("preview", stderr)

	var (
		output string
		opts   preview.Options
	)
	fs.StringVar(&output, "o", "placeholders-preview.png", "Output PNG path")
	fs.StringVar(&output, "output", "placeholders-preview.png", "Output PNG path")
	fs.IntVar(&opts.Width, "w", 960, "Width in pixels")
	fs.IntVar(&opts.Width, "width", 960, "Width in pixels")
	fs.IntVar(&opts.Height, "h", 540, "Height in pixels")
	fs.IntVar(&opts.Height, "height", 540, "Height in pixels")
	fs.StringVar(&opts.FontPath, "font", "", "TTF/OTF font (default: Go Regular)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(output), ".png") {
		return fmt.Errorf("unsupported format %q: use .png", filepath.Ext(output))
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	if err := preview.Write(output, opts); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Done: %s\n", output)
	return nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `scrollgen — Placeholder images for the scroll animation

USAGE:
    scrollgen [generate]
    scrollgen verify
    scrollgen manifest
    scrollgen preview [options]

GENERATE (default):
    Writes assets/scroll-sequence/frame_0001.jpg … frame_0151.jpg and
    assets/placeholders/{loading,missing}.jpg under the current directory.
    Existing files are overwritten; other files are left alone.

VERIFY:
    Checks every expected file exists with the placeholder content.
    Exits 1 when a file is missing or differs.

MANIFEST:
    Prints the frame list and scroll segments as JSON.

PREVIEW OPTIONS:
    -o, --output <path>    Output PNG (default: placeholders-preview.png)
    -w, --width <px>       Width in pixels (default: 960)
    -h, --height <px>      Height in pixels (default: 540)
    --font <path>          TTF/OTF font (default: Go Regular)

EXAMPLES:
    scrollgen
    scrollgen verify
    scrollgen manifest > frames.json
    scrollgen preview -o layout.png -w 1280 -h 720
`)
}
