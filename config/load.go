package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads <name>.yaml from the working directory or the first of dirs
// (relative to it) that has one. Every environment variable is then layered
// on top: POSTGRES_SSLMODE overrides postgres.sslMode.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	tree := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return envKeyPath(key, tree), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}

	cfg := new(T)
	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			// env keys arrive lower-cased when the YAML has no matching key
			MatchName: strings.EqualFold,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.WithStack(err)
	}

	candidates := []string{filepath.Join(wd, filename)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, filename))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found (looked in %s)", filename, strings.Join(candidates, ", "))
}

// envKeyPath maps an environment variable onto a koanf path, reusing the
// spelling of keys already present in tree so camelCase YAML keys are
// overridden instead of shadowed. Unknown segments stay lower-case.
func envKeyPath(envKey string, tree map[string]any) string {
	var path []string
	level := tree

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child, ok := lookupKey(level, segment)
		if !ok {
			key, child = segment, nil
		}
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

func lookupKey(level map[string]any, segment string) (string, map[string]any, bool) {
	for key, value := range level {
		if foldKey(key) == segment {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

// foldKey lower-cases key and drops everything but letters and digits.
func foldKey(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, key)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		field := func(name string) string {
			return lookup(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", i, name))
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
