package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pleimann/qmk-notify/internal/config"
	"github.com/pleimann/qmk-notify/internal/hid"
	"github.com/pleimann/qmk-notify/internal/transport"
	"github.com/pleimann/qmk-notify/internal/ui"
)

const Version = "0.1.0"

func main() {
	// Check for subcommands first
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list-devices":
			runListDevices()
			return
		case "set-device", "select-device":
			runSetDevice(os.Args[2:])
			return
		case "help", "-h", "--help":
			printUsage()
			os.Exit(0)
		}
	}

	// Main command flags
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	vendorID := flag.String("vendor-id", "", "USB vendor ID (decimal or 0xHEX)")
	productID := flag.String("product-id", "", "USB product ID (decimal or 0xHEX)")
	usagePage := flag.String("usage-page", "", "HID usage page (decimal or 0xHEX)")
	usage := flag.String("usage", "", "HID usage (decimal or 0xHEX)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	version := flag.Bool("version", false, "print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if *version {
		ui.PrintVersion(Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.PrintFatalError("Failed to load config", err.Error())
		os.Exit(1)
	}

	filter := hid.Filter{
		VendorID:  cfg.Device.VendorID,
		ProductID: cfg.Device.ProductID,
		UsagePage: cfg.Device.UsagePage,
		Usage:     cfg.Device.Usage,
	}
	applyOverride(&filter.VendorID, "vendor-id", *vendorID)
	applyOverride(&filter.ProductID, "product-id", *productID)
	applyOverride(&filter.UsagePage, "usage-page", *usagePage)
	applyOverride(&filter.Usage, "usage", *usage)

	cmd, err := buildCommand(flag.Args())
	if err != nil {
		ui.PrintFatalError("Invalid arguments", err.Error())
		os.Exit(1)
	}

	isVerbose := *verbose || cfg.Verbose
	if isVerbose {
		log.Printf("Using %s", filter)
	}

	runCommand(transport.NewSystem(isVerbose), cmd, filter, isVerbose)
}

// runCommand executes exactly one of the two operations and maps failures
// to a non-zero exit.
func runCommand(t *transport.Transport, cmd transport.Command, filter hid.Filter, verbose bool) {
	switch cmd := cmd.(type) {
	case transport.ListDevices:
		devices, err := t.List()
		if err != nil {
			ui.PrintFatalError("Failed to list devices", err.Error())
			os.Exit(1)
		}
		ui.PrintDeviceList(toUIDevices(devices))
	case transport.SendMessage:
		if err := t.Send(filter, cmd.Text); err != nil {
			ui.PrintFatalError("Failed to send message", err.Error())
			os.Exit(1)
		}
		if verbose {
			log.Println("Message sent")
		}
	}
}

// buildCommand maps the remaining positional arguments onto exactly one
// operation.
func buildCommand(args []string) (transport.Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: message (or the list-devices subcommand)", hid.ErrMissingParameter)
	}
	if len(args) > 1 {
		return nil, fmt.Errorf("expected a single message argument, got %d", len(args))
	}
	return transport.SendMessage{Text: args[0]}, nil
}

// applyOverride parses a flag value over a config-supplied filter field.
// An empty value means the flag was not given.
func applyOverride(field *uint16, name, value string) {
	if value == "" {
		return
	}
	v, err := hid.ParseHexOrDecimal(value)
	if err != nil {
		ui.PrintFatalError("Invalid -"+name, err.Error())
		os.Exit(1)
	}
	*field = v
}

func printUsage() {
	ui.PrintUsage(Version)
}

// runListDevices handles the list-devices subcommand
func runListDevices() {
	runCommand(transport.NewSystem(false), transport.ListDevices{}, hid.Filter{}, false)
}

func toUIDevices(devices []hid.DeviceInfo) []ui.DeviceInfo {
	uiDevices := make([]ui.DeviceInfo, len(devices))
	for i, d := range devices {
		uiDevices[i] = ui.DeviceInfo{
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			UsagePage:    d.UsagePage,
			Usage:        d.Usage,
			Path:         d.Path,
			Manufacturer: d.Manufacturer,
			Product:      d.Product,
		}
	}
	return uiDevices
}

// runSetDevice handles the set-device subcommand
func runSetDevice(args []string) {
	fs := flag.NewFlagSet("set-device", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	fs.Usage = func() {
		ui.PrintSetDeviceUsage()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	remaining := fs.Args()

	var vendorID, productID uint16

	if len(remaining) >= 2 {
		// Parse provided IDs
		vid, err := hid.ParseHexOrDecimal(remaining[0])
		if err != nil {
			ui.PrintFatalError("Invalid vendor_id", err.Error())
			os.Exit(1)
		}
		pid, err := hid.ParseHexOrDecimal(remaining[1])
		if err != nil {
			ui.PrintFatalError("Invalid product_id", err.Error())
			os.Exit(1)
		}
		vendorID = vid
		productID = pid
	} else if len(remaining) == 1 {
		ui.PrintFatalError("Invalid arguments", "Both vendor_id and product_id must be provided, or neither")
		os.Exit(1)
	} else {
		// Interactive selection
		device, err := selectDevice()
		if err != nil {
			ui.PrintFatalError("Device selection failed", err.Error())
			os.Exit(1)
		}
		if device == nil {
			fmt.Println(ui.Muted("No device selected"))
			os.Exit(0)
		}
		vendorID = device.VendorID
		productID = device.ProductID
	}

	// Update or create config file
	if config.Exists(*configPath) {
		if err := config.UpdateDeviceIDs(*configPath, vendorID, productID); err != nil {
			ui.PrintFatalError("Failed to update config", err.Error())
			os.Exit(1)
		}
		ui.PrintDeviceUpdated(*configPath, vendorID, productID)
	} else {
		if err := config.CreateDefaultConfig(*configPath, vendorID, productID); err != nil {
			ui.PrintFatalError("Failed to create config", err.Error())
			os.Exit(1)
		}
		ui.PrintDeviceCreated(*configPath, vendorID, productID)
	}
}

// selectDevice displays an interactive device selection menu using huh
func selectDevice() (*ui.DeviceInfo, error) {
	devices, err := hid.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("no HID devices found")
	}

	// Deduplicate devices by vendor/product ID
	seen := make(map[uint32]bool)
	var unique []ui.DeviceInfo

	for _, d := range devices {
		key := uint32(d.VendorID)<<16 | uint32(d.ProductID)
		if seen[key] {
			continue
		}
		seen[key] = true

		// Skip devices with no vendor/product ID
		if d.VendorID == 0 && d.ProductID == 0 {
			continue
		}

		unique = append(unique, ui.DeviceInfo{
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			UsagePage:    d.UsagePage,
			Usage:        d.Usage,
			Manufacturer: d.Manufacturer,
			Product:      d.Product,
		})
	}

	if len(unique) == 0 {
		return nil, fmt.Errorf("no identifiable HID devices found")
	}

	return ui.SelectDevice(unique)
}
