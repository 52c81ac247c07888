package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"realtpl/config"
)

const description = `Computes thermodynamic and transport properties of pure fluids using
cubic equations of state (SRK, PR, RKPR). Optionally compares the results
with independent reference data.`

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "realtpl",
		Short: "Real-gas thermophysical properties from cubic equations of state",
		Long:  description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return run(cfg, logger, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// 設定ファイルの値はフラグで上書きできる
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, config.ConfigFileFlag, config.DefaultConfigFile, "Path to configuration file.")
	flags.String("fluid-name", "", "物質名")
	flags.StringSlice("eos-list", nil, "状態方程式の種類 (SRK, PR, RKPR)")
	flags.Bool("include-ref-data", false, "参照データと比較するか否か")
	flags.String("reference-data-file", "", "参照データのファイルパス（タブ区切り）")
	flags.Float64("temperature-start-K", 0, "温度の下限, K")
	flags.Float64("temperature-end-K", 0, "温度の上限, K")
	flags.Float64("temperature-step-K", 0, "温度の間隔, K")
	flags.Float64("pressure-Pa", 0, "圧力, Pa")
	flags.Float64("pressure-start-Pa", 0, "圧力の下限, Pa")
	flags.Float64("pressure-end-Pa", 0, "圧力の上限, Pa")
	flags.Float64("pressure-step-Pa", 0, "圧力の間隔, Pa")
	flags.Int("n-nasa-coeff", 0, "NASA 多項式の係数の数 (7 または 9)")
	flags.String("nasa-data-file", "", "NASA 多項式の係数ファイル (YAML)")
	flags.String("fluid-data-file", "", "臨界点物性値のファイル (YAML)")
	flags.String("output-dir", "", "出力フォルダ")
	flags.Bool("save-data-to-csv", true, "計算結果を CSV で保存するか否か")
	flags.Bool("save-plots", false, "グラフを保存するか否か")
	flags.Bool("save-deviation", false, "参照データに対する偏差のグラフを保存するか否か")
	flags.Bool("performance-tracking", false, "処理時間を記録するか否か")
	flags.Int("workers", 0, "同時に計算する状態方程式の数 (0 は CPU 数)")
	flags.String("log-level", "", "ログレベル (debug, info, warn, error)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
