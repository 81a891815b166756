package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Default device identifiers: the QMK raw-HID interface of a keyboard
// running the default firmware IDs. Reference data for the CLI layer only.
const (
	DefaultVendorID  uint16 = 0xFEED
	DefaultProductID uint16 = 0x0000
	DefaultUsagePage uint16 = 0xFF60
	DefaultUsage     uint16 = 0x61
)

type Config struct {
	Device  DeviceConfig `yaml:"device"`
	Verbose bool         `yaml:"verbose"`
}

type DeviceConfig struct {
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
	UsagePage uint16 `yaml:"usage_page"`
	Usage     uint16 `yaml:"usage"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			VendorID:  DefaultVendorID,
			ProductID: DefaultProductID,
			UsagePage: DefaultUsagePage,
			Usage:     DefaultUsage,
		},
	}
}

// Load reads the config file at path. A missing file is not an error; the
// built-in defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in usage page and usage when the file sets only the
// vendor/product pair. Vendor and product ids are taken as written; 0x0000
// is a valid product id.
func (c *Config) applyDefaults() {
	if c.Device.UsagePage == 0 {
		c.Device.UsagePage = DefaultUsagePage
	}
	if c.Device.Usage == 0 {
		c.Device.Usage = DefaultUsage
	}
}

// UpdateDeviceIDs updates the vendor_id and product_id in a config file
// while preserving the rest of the file structure and comments
func UpdateDeviceIDs(path string, vendorID, productID uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content := string(data)

	vendorRegex := regexp.MustCompile(`(?m)^(\s*vendor_id:\s*)(?:0x[0-9A-Fa-f]+|\d+)`)
	content = vendorRegex.ReplaceAllString(content, fmt.Sprintf("${1}0x%04X", vendorID))

	productRegex := regexp.MustCompile(`(?m)^(\s*product_id:\s*)(?:0x[0-9A-Fa-f]+|\d+)`)
	content = productRegex.ReplaceAllString(content, fmt.Sprintf("${1}0x%04X", productID))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig creates a new config file with default values and the specified device
func CreateDefaultConfig(path string, vendorID, productID uint16) error {
	content := fmt.Sprintf(`# qmk-notify configuration

device:
  vendor_id: 0x%04X
  product_id: 0x%04X
  usage_page: 0x%04X
  usage: 0x%04X

# Enable verbose output
verbose: false
`, vendorID, productID, DefaultUsagePage, DefaultUsage)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// Exists checks if a config file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
