package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/veldt/browse/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for viewing and editing browse configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration values.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  `Create a new configuration file with default values.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(cfg)
	}

	// Pretty print as TOML
	encoder := toml.NewEncoder(os.Stdout)
	encoder.Indent = "  "
	return encoder.Encode(cfg)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := getConfigPath()

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config
	defaultCfg := config.Default()

	// Write to file
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Write header comment
	_, _ = fmt.Fprintln(f, "# Browse Configuration")
	_, _ = fmt.Fprintln(f, "# https://github.com/veldt/browse")
	_, _ = fmt.Fprintln(f, "")

	// Write config
	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(defaultCfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": "created",
			"path":   configPath,
		})
	} else {
		fmt.Printf("Created config file: %s\n", configPath)
	}

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"path": path})
	}
	fmt.Println(path)
	return nil
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".browserc"
	}

	return filepath.Join(home, ".browserc")
}
