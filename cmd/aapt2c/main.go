// Command aapt2c is the CLI entry point for the resource compiler core
// (spec.md §6): it enumerates inputs, drives each through the compiler
// pipeline, and writes the resulting entries to a directory or archive.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kunalshah912/aapt2-core/internal/cerrors"
	"github.com/kunalshah912/aapt2-core/internal/compilectx"
	"github.com/kunalshah912/aapt2-core/internal/diagnostics"
	"github.com/kunalshah912/aapt2-core/internal/driver"
	"github.com/kunalshah912/aapt2-core/internal/enumerate"
	"github.com/kunalshah912/aapt2-core/internal/envelope"
	"github.com/kunalshah912/aapt2-core/internal/toolconfig"
	"github.com/kunalshah912/aapt2-core/internal/typetable"
	"github.com/kunalshah912/aapt2-core/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "aapt2c",
		Usage:   "compile Android resource files into a binary archive",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "o",
				Usage: "output archive path (zip mode)",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "output directory path (directory mode); mutually exclusive with -o",
			},
			&cli.BoolFlag{
				Name:  "pseudo-localize",
				Usage: "generate en-XA/ar-XB pseudo-locale string resources",
			},
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "relax the positional-format-argument requirement for multi-argument strings",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "emit info-level diagnostics in addition to warnings and errors",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the .aapt2c.kdl tool config",
				Value: ".aapt2c.kdl",
			},
			&cli.StringFlag{
				Name:  "package-ids",
				Usage: "path to the packageids.toml package-id map",
				Value: "packageids.toml",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "compilation package name (overrides config)",
			},
			&cli.IntFlag{
				Name:  "package-id",
				Usage: "default package ID assigned to packages with no configured ID",
				Value: 0x7f,
			},
			&cli.StringFlag{
				Name:  "type-table",
				Usage: "path to a JSON type_dir override for the built-in type table",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "aapt2c: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	outArchive := c.String("o")
	outDir := c.String("dir")
	if (outArchive == "") == (outDir == "") {
		return fmt.Errorf("exactly one of -o or --dir is required")
	}

	toolCfg, err := toolconfig.LoadKDL(c.String("config"))
	if err != nil {
		return err
	}
	packageIDs, err := toolconfig.LoadPackageIDs(c.String("package-ids"))
	if err != nil {
		return err
	}

	types := typetable.Default()
	if tt := c.String("type-table"); tt != "" {
		data, err := os.ReadFile(tt)
		if err != nil {
			return cerrors.New(cerrors.KindConfig, "read type table override", err).WithSource(tt)
		}
		override, err := typetable.LoadOverride(data)
		if err != nil {
			return err
		}
		types.Merge(override)
	}

	pkg := toolCfg.DefaultPackage
	if p := c.String("package"); p != "" {
		pkg = p
	}
	defaultPackageID := uint8(c.Int("package-id"))
	if !c.IsSet("package-id") && toolCfg.DefaultPackageID != 0 {
		defaultPackageID = toolCfg.DefaultPackageID
	}

	sink := diagnostics.NewWriterSink(os.Stderr, c.Bool("verbose"))

	var opts enumerate.Options
	if c.NArg() > 0 {
		opts.Files = c.Args().Slice()
	} else {
		opts.Dir = "."
	}
	descriptors, err := enumerate.Enumerate(opts)
	if err != nil {
		return err
	}

	ctx := &compilectx.Context{
		Package:          pkg,
		DefaultPackageID: defaultPackageID,
		PackageIDs:       packageIDs,
		PseudoLocalize:   c.Bool("pseudo-localize") || toolCfg.PseudoLocalize,
		Legacy:           c.Bool("legacy") || toolCfg.Legacy,
		Diagnostics:      sink,
	}

	result := driver.Run(descriptors, types, ctx)

	var writer envelope.ArchiveWriter
	if outDir != "" {
		writer, err = envelope.NewDirWriter(outDir)
	} else {
		writer, err = envelope.NewZipWriter(outArchive)
	}
	if err != nil {
		return err
	}
	for _, entry := range result.Entries {
		if err := writer.WriteEntry(entry.Name, entry.Payload); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d inputs failed to compile", len(result.Errors), len(descriptors))
	}
	return nil
}
