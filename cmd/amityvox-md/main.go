// amityvox-md renders AmityVox markdown to HTML from the command line.
//
// 开发工具：快速检查消息管线或文档管线对一段文本的输出。
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	richtext "github.com/amityvox/richtext-go"
)

var (
	version = "v0.1.0"
	cfgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "amityvox-md",
		Short: "Render AmityVox chat markdown to HTML",
	}

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chat message through the message pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			var opts []richtext.Option
			if cfgPath != "" {
				cfg, err := richtext.LoadConfig(cfgPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				opts = append(opts, richtext.WithConfig(cfg))
			}
			fmt.Println(richtext.Render(string(raw), opts...))
			return nil
		},
	}
	renderCmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML render config")

	documentCmd := &cobra.Command{
		Use:   "document [file]",
		Short: "Render long-form markdown through the document pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			html, err := richtext.RenderDocument(string(raw))
			if err != nil {
				return err
			}
			fmt.Println(html)
			return nil
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Produce a plain-text notification preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			fmt.Println(richtext.Preview(string(raw), 120))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(renderCmd, documentCmd, previewCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput reads the named file, or stdin when no argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
