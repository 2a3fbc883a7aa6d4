// Package envfile reads and writes the tplink.env credentials file
// consumed by the generation script.
package envfile

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"
)

// Keys the generation script reads from the file.
const (
	KeyGateway  = "TPLINK_GATEWAY"
	KeyPassword = "TPLINK_PASSWORD"
)

// Placeholder values shipped in the template. A file still carrying
// either of them is treated as unconfigured.
const (
	PlaceholderGateway  = "your_router_gateway_ip_address"
	PlaceholderPassword = "your_router_password"
)

// The generation script parses this file with a line-oriented reader,
// so both layouts are fixed literals rather than generated output.
const templateBody = `# TPLink Deco Configuration
# Replace the values below with your actual router settings

# Router gateway IP address (e.g., 192.168.1.1 or 10.1.0.1)
TPLINK_GATEWAY=your_router_gateway_ip_address

# Router admin password
TPLINK_PASSWORD=your_router_password

# Optional: Enable testing mode (1 for testing, 0 for production)
# TESTING=0
`

const configuredBody = `# TPLink Deco Configuration
# Generated by bootstrap

# Router gateway IP address
TPLINK_GATEWAY=%s

# Router admin password
TPLINK_PASSWORD=%s

# Optional: Enable testing mode (1 for testing, 0 for production)
# TESTING=0
`

// Credentials is the parsed view of the file.
type Credentials struct {
	Gateway  string
	Password string
}

// Configured reports whether both values have been filled in.
func (c *Credentials) Configured() bool {
	return c.Gateway != "" && c.Gateway != PlaceholderGateway &&
		c.Password != "" && c.Password != PlaceholderPassword
}

// Read parses the key-value pairs from path.
func Read(path string) (*Credentials, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	section := file.Section(ini.DefaultSection)
	return &Credentials{
		Gateway:  section.Key(KeyGateway).String(),
		Password: section.Key(KeyPassword).String(),
	}, nil
}

// WriteTemplate writes the placeholder template to path.
func WriteTemplate(path string, mode fs.FileMode) error {
	return write(path, templateBody, mode)
}

// WriteCredentials replaces the file with the supplied values.
func WriteCredentials(path, gateway, password string, mode fs.FileMode) error {
	return write(path, fmt.Sprintf(configuredBody, gateway, password), mode)
}

func write(path, content string, mode fs.FileMode) error {
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	// WriteFile applies the mode only when it creates the file; an
	// existing file keeps its old bits without this.
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to set credentials file mode: %w", err)
	}
	return nil
}
