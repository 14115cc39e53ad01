// Package brand provides centralized product constants.
// The identity is loaded from brand.json at compile time via go:embed so
// packaging scripts can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information.
type Brand struct {
	Name             string `json:"name"`
	LowerName        string `json:"lowerName"`
	Description      string `json:"description"`
	Tagline          string `json:"tagline"`
	DefaultConfigDir string `json:"defaultConfigDir"`
	ConfigFileName   string `json:"configFileName"`
	BinaryName       string `json:"binaryName"`
	ServiceName      string `json:"serviceName"`
	SyslogTag        string `json:"syslogTag"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Description = b.Description
	Tagline = b.Tagline
	DefaultConfigDir = b.DefaultConfigDir
	ConfigFileName = b.ConfigFileName
	BinaryName = b.BinaryName
	ServiceName = b.ServiceName
	SyslogTag = b.SyslogTag
}

// Exported branding values, populated from brand.json.
var (
	Name             string
	LowerName        string
	Description      string
	Tagline          string
	DefaultConfigDir string
	ConfigFileName   string
	BinaryName       string
	ServiceName      string
	SyslogTag        string
)

// Version info, set at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return DefaultConfigDir + "/" + ConfigFileName
}
