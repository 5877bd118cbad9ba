// Package config reads the small set of host-configurable values the
// syscall table consults at run time (§4.9's ambient "Configuration"
// section): the save-data directory and the text code page. A full
// engine .ini carries many more keys (window size, font paths, volume
// settings); none of those are consulted by anything in this repo, so
// only the two keys that feed interpreter behavior are decoded.
package config

import (
	"gopkg.in/ini.v1"

	"github.com/nunuhara/ainterp/internal/vmstring"
)

// Config is the resolved set of values the VM needs from the .ini file,
// or their defaults when no .ini was given on the command line. CodePage is
// vmstring.CodePage directly, rather than a parallel enum, since this
// package's only reason to parse it is to hand it straight to the VM.
type Config struct {
	SaveFolder string
	CodePage   vmstring.CodePage
}

// Default returns the configuration used when the CLI argument is a bare
// .ain file rather than an .ini (§6.2).
func Default() Config {
	return Config{SaveFolder: "SaveData", CodePage: vmstring.SJIS}
}

// Load reads SaveFolder and CodePage out of the [Config] section of an
// .ini file at path, falling back to Default's values for any key that
// is absent. A malformed .ini is a load error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := ini.Load(path)
	if err != nil {
		return Config{}, err
	}

	sec := f.Section("Config")
	if key := sec.Key("SaveFolder"); key.String() != "" {
		cfg.SaveFolder = key.String()
	}
	if key := sec.Key("CodePage"); key.String() != "" {
		switch key.String() {
		case "UTF8", "utf8", "1":
			cfg.CodePage = vmstring.UTF8
		default:
			cfg.CodePage = vmstring.SJIS
		}
	}

	return cfg, nil
}
