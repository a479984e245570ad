// Package configcmd implements the taskdesk config subcommands.
package configcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskdesk/internal/cli"
	"github.com/thenoetrevino/taskdesk/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd prints where the configuration file is read from
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return (&cli.OutputFormatter{}).Fail(err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

// ShowCmd prints the effective configuration after defaults, .env and
// environment overrides
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	cmd.Flags().Bool("json", false, "Output in JSON format")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	cfg, err := config.Load()
	if err != nil {
		return formatter.Fail(cli.Exit(cli.ExitValidation, err))
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    cfg,
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return formatter.Fail(err)
	}
	fmt.Print(string(data))
	return nil
}

// InitCmd writes the default configuration file
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Write the default configuration to the config path. An existing file is kept unless --force is given.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	formatter := &cli.OutputFormatter{}

	path, err := config.Path()
	if err != nil {
		return formatter.Fail(err)
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil && !force:
		return formatter.Fail(cli.Usagef("%s already exists (use --force to overwrite)", path))
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
		return formatter.Fail(statErr)
	}

	if err := config.Default().Save(); err != nil {
		return formatter.Fail(err)
	}

	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
