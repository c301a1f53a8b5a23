/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command mkbcfnt builds a BCFNT container from one or more input fonts,
// each either an outline font rendered through a rasterizer or an existing
// BCFNT container to merge from.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/zhimiaox/mkbcfnt"
	"github.com/zhimiaox/mkbcfnt/codepoints"
	"github.com/zhimiaox/mkbcfnt/raster"
)

const version = "mkbcfnt v1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("mkbcfnt", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mkbcfnt [OPTIONS...] <input1> [input2...]\n\n")
		flags.PrintDefaults()
	}

	output := flags.StringP("output", "o", "", "output file")
	size := flags.IntP("size", "s", 22, "font size in points")
	blacklist := flags.StringP("blacklist", "b", "", "excludes the whitespace-separated list of codepoints")
	whitelist := flags.StringP("whitelist", "w", "", "includes only the whitespace-separated list of codepoints")
	showVersion := flags.BoolP("version", "v", false, "show version and copyright information")

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *showVersion {
		fmt.Println(version)
		return 0
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "No output file provided")
		return 1
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "No input file provided")
		return 1
	}

	var list []uint16
	isBlacklist := true
	switch {
	case *blacklist != "":
		l, err := readList(*blacklist)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		list, isBlacklist = l, true
	case *whitelist != "":
		l, err := readList(*whitelist)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		list, isBlacklist = l, false
	}

	font := bcfnt.New()
	for _, path := range inputs {
		if err := addInput(font, path, float64(*size), list, isBlacklist); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer out.Close()

	if err := font.Serialize(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func readList(path string) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening list file %s: %w", path, err)
	}
	defer f.Close()
	return codepoints.ParseList(f)
}

// addInput sniffs the CFNT magic to decide whether path is an existing
// container to merge from or an outline font to rasterize, mirroring
// mkbcfnt.cpp's main().
func addInput(font *bcfnt.Font, path string, points float64, list []uint16, isBlacklist bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if bytes.HasPrefix(data, []byte("CFNT")) {
		other, err := bcfnt.Decode(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		font.AddFontFromContainer(other, list, isBlacklist)
		return nil
	}

	face, err := raster.OpenFace(data, points)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	font.AddFontFromRaster(face, list, isBlacklist)
	return nil
}
