package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"realtpl/eos"
)

// ConfigFileFlag is the flag naming the YAML configuration file. It is not
// itself a configuration key.
const ConfigFileFlag = "config-file"

/*
設定を読み込む。

	Args:
	    cfgFile: YAML 設定ファイルのパス（空の場合は読み込まない）
	    flags: コマンドライン引数（nil 可）

	Returns:
	    検証済みの設定

	Notes:
	    優先順位（高い順）: 明示的に指定されたフラグ > 環境変数 REALTPL_* > 設定ファイル > 既定値
*/
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. 既定値
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. 設定ファイル
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %s does not exist", eos.ErrConfiguration, cfgFile)
		}
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. 環境変数: REALTPL_TEMPERATURE_START_K -> temperature_start_K
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return canonicalKey(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. フラグ（明示的に指定されたもののみ）
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == ConfigFileFlag {
				return "", nil
			}
			return canonicalKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := checkMandatory(k, cfgFile); err != nil {
		return nil, err
	}
	if err := applyPressureFallbacks(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config: %v", eos.ErrConfiguration, err)
	}
	cfg.effective = k.All()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w\nRevise the config file %s", err, cfgFile)
	}
	return &cfg, nil
}

// isSet reports whether key is present and not zero.
func isSet(k *koanf.Koanf, key string) bool {
	if !k.Exists(key) {
		return false
	}
	switch v := k.Get(key).(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return k.Float64(key) != 0
	}
}

func checkMandatory(k *koanf.Koanf, cfgFile string) error {
	for _, key := range []string{"fluid_name", "temperature_start_K", "temperature_end_K"} {
		if !isSet(k, key) {
			return fmt.Errorf("%w: %s is mandatory in config file\nRevise the config file %s",
				eos.ErrConfiguration, key, cfgFile)
		}
	}
	if !isSet(k, "pressure_Pa") && !isSet(k, "pressure_start_Pa") {
		return fmt.Errorf("%w: either pressure_Pa or pressure_start_Pa has to be provided in the config file\n"+
			"Revise the config file %s", eos.ErrConfiguration, cfgFile)
	}
	return nil
}

// applyPressureFallbacks fills pressure_start_Pa, pressure_Pa and
// pressure_end_Pa from each other when they are missing.
func applyPressureFallbacks(k *koanf.Koanf) error {
	if !isSet(k, "pressure_start_Pa") {
		if err := k.Set("pressure_start_Pa", k.Get("pressure_Pa")); err != nil {
			return err
		}
	}
	if !isSet(k, "pressure_Pa") {
		if err := k.Set("pressure_Pa", k.Get("pressure_start_Pa")); err != nil {
			return err
		}
	}
	if !isSet(k, "pressure_end_Pa") {
		if err := k.Set("pressure_end_Pa", k.Get("pressure_Pa")); err != nil {
			return err
		}
	}
	return nil
}

/*
設定値の一覧を書き出す。

	Args:
	    w: 出力先 (config_data.out)
	    runID: 実行の識別子

	Notes:
	    1 行に "key: value" の形式で、既知のキーを定義順に書き出す。
*/
func (c *Config) WriteEcho(w io.Writer, runID string) error {
	if _, err := fmt.Fprintf(w, "run_id: %s\n", runID); err != nil {
		return err
	}
	for _, key := range keys {
		v, ok := c.effective[key]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %v\n", key, v); err != nil {
			return err
		}
	}
	return nil
}
