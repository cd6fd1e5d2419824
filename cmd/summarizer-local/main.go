package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tomomira/s3-summarizer/cmd/summarizer-local/command"
)

var (
	version = ""
)

func main() {
	c := command.NewRoot()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "prints the version number of summarizer-local",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
	c.AddCommand(versionCmd)

	err := c.Execute()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
