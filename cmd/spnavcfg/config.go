package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/spnavcfg/spnavcfg/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Write a configuration template with every flag at its default."`
}

// ConfigInit scaffolds a configuration file.
type ConfigInit struct {
	Format string `help:"Output format." enum:"json,yaml,yml,toml" default:"json"`
	Output string `help:"Destination file (defaults to the user configuration directory)." type:"path"`
	Force  bool   `help:"Overwrite if the file already exists."`
}

func (c *ConfigInit) Run(logger *slog.Logger) error {
	dest := c.Output
	if dest == "" {
		p, err := configpaths.DefaultConfigPath(c.Format)
		if err != nil {
			return fmt.Errorf("config init: %w", err)
		}
		dest = p
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("config init: destination exists; use --force to overwrite")
		}
	}
	data, err := renderTemplate(c.Format)
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return fmt.Errorf("config init: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("config init: %w", err)
	}
	logger.Info("configuration template written", "file", dest)
	return nil
}

// renderTemplate encodes the flag defaults of CLI in format.
func renderTemplate(format string) ([]byte, error) {
	root := buildMapFromStruct(reflect.TypeOf(CLI{}))
	switch configpaths.Ext(format) {
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// configKey is the key the configuration loaders resolve a flag from: the
// flag name with dashes replaced by underscores.
func configKey(f reflect.StructField) string {
	name := f.Tag.Get("name")
	if name == "" {
		name = kebab(f.Name)
	}
	return strings.ReplaceAll(name, "-", "_")
}

// kebab turns a Go field name into kong's default flag name.
func kebab(s string) string {
	var b strings.Builder
	r := []rune(s)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('-')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("embed"); ok {
			for k, v := range buildMapFromStruct(f.Type) {
				out[k] = v
			}
			continue
		}
		key := configKey(f)
		if key == "config" {
			continue
		}
		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	default:
		return nil
	}
}
