// Command msixpack packs a directory tree into an MSIX package, per
// spec.md §6's CLI contract: exit 0 on success, 1 on any caught build
// error (message printed to stdout), and -1 (exit status 255) on
// argument-parsing failure.
//
// Grounded on javanhut-IvaldiVCS/cli/cli.go's root-command-plus-Execute
// shape, generalized from a multi-subcommand VCS tool down to this
// package's single build command.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/appx-tools/msixpack/packager"
)

var (
	directory   string
	packagePath string
)

var rootCmd = &cobra.Command{
	Use:   "msixpack",
	Short: "Pack a directory tree into an MSIX application package",
	Long:  "msixpack builds a ZIP64 MSIX package (AppxBlockMap.xml and [Content_Types].xml included) from a directory of payload files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := packager.Build(directory, packagePath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&directory, "directory", "d", "", "directory containing the payload files to pack (required)")
	rootCmd.Flags().StringVarP(&packagePath, "package", "p", "", "path to write the MSIX package to (required)")
	rootCmd.MarkFlagRequired("directory")
	rootCmd.MarkFlagRequired("package")
}

func main() {
	// Any error surfacing here is a cobra argument-parsing failure: Build
	// errors are caught and handled inside RunE above. spec.md §6 calls
	// for exit code -1 in this case, which as an os.Exit byte value is
	// 255.
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(255)
	}
}
