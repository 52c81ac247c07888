package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"realtpl/config"
	"realtpl/eos"
	"realtpl/fluiddb"
	"realtpl/recorder"
)

/*
物性値計算の実行

	Args:
	    cfg: 検証済みの設定
	    logger: ロガー
	    stdout: 要約表の出力先

	Notes:
	    準備 → 参照データ → 状態方程式 → グラフ → CSV の順に処理し、
	    各段階の経過時間を記録する。
*/
func run(cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID, "fluid", cfg.FluidName)
	perf := recorder.NewPerformance(runID)

	// ---- 事前準備 ----

	grid, err := cfg.Grid()
	if err != nil {
		return err
	}
	if grid.Oversized() {
		logger.Warn("more than 1e9 pressure/temperature data points, calculation will take a long time",
			"points", grid.Size())
	}
	variants, err := cfg.Variants()
	if err != nil {
		return err
	}

	rec := recorder.NewRecorder(cfg.FluidDir(), logger)
	logger.Info("starting evaluation", "output", rec.Dir())

	if _, err := rec.WriteConfigEcho(func(w io.Writer) error { return cfg.WriteEcho(w, runID) }); err != nil {
		return err
	}

	polys, err := fluiddb.LoadPolynomials(cfg.NNasaCoeff, cfg.NasaDataFile)
	if err != nil {
		return err
	}
	table, err := polys.Table(cfg.FluidName)
	if err != nil {
		return err
	}
	checkTempRange(logger, table, cfg)

	fluids, err := fluiddb.LoadFluids(cfg.FluidDataFile)
	if err != nil {
		return err
	}
	fp, err := fluids.Lookup(cfg.FluidName)
	if err != nil {
		return err
	}
	if _, err := rec.WriteFluidSummary(fp.Summary()); err != nil {
		return err
	}
	recorder.RenderFluidSummary(stdout, fp.Summary())

	perf.Mark(recorder.PhaseSetup)

	// ---- 参照データ ----

	var ref []eos.PropertyRecord
	if cfg.IncludeRefData {
		ref, err = recorder.ReadReference(cfg.ReferenceDataFile)
		if err != nil {
			return err
		}
		logger.Info("reference data loaded", "path", cfg.ReferenceDataFile, "rows", len(ref))
	}

	perf.Mark(recorder.PhaseRefData)

	// ---- 計算 ----

	computed, err := eos.EvaluateAll(variants, fp, table, grid, cfg.Workers)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", cfg.FluidName, err)
	}
	tbl := recorder.NewTable(ref, computed)
	for _, v := range variants {
		logger.Info("eos evaluated", "eos", v, "rows", len(tbl.Group(v.String())))
	}

	perf.Mark(recorder.PhaseEOSData)
	logger.Info("property table ready", "rows", tbl.Len(), "elapsed_time", perf.Elapsed(recorder.PhaseEOSData))

	// ---- グラフ・偏差 ----

	if cfg.SavePlots {
		if _, err := rec.SavePlots(tbl, fp.Summary()); err != nil {
			return err
		}
	}
	if cfg.IncludeRefData {
		devs, unmatched := recorder.Deviations(tbl)
		if unmatched > 0 {
			logger.Warn("rows without reference data at the same pressure and temperature", "rows", unmatched)
		}
		recorder.RenderDeviations(stdout, devs)
	}
	if cfg.SaveDeviation {
		if _, err := rec.SaveDeviationPlots(tbl); err != nil {
			return err
		}
	}

	perf.Mark(recorder.PhaseFigs)

	// ---- 計算結果ファイルの保存 ----

	if cfg.SaveDataToCSV {
		if _, err := rec.WriteCSV(tbl); err != nil {
			return err
		}
	}

	perf.Mark(recorder.PhaseCSV)

	if cfg.PerformanceTracking {
		perf.NumEval = grid.Size()
		path, err := rec.WritePerformance(perf)
		if err != nil {
			return err
		}
		logger.Info("performance evaluation saved", "path", path)
	}

	logger.Info("successfully finished", "elapsed_time", perf.Total())
	return nil
}

// checkTempRange warns when the ideal-gas coefficients do not cover the
// configured temperature range.
func checkTempRange(logger *slog.Logger, table *eos.IdealGasTable, cfg *config.Config) {
	lo, hi := table.TempRange()
	if lo > cfg.TemperatureStartK || hi < cfg.TemperatureEndK {
		logger.Warn("NASA coefficients not valid for entire temperature range",
			"coefficients", table.Name(), "valid_from_K", lo, "valid_to_K", hi)
	}
}
