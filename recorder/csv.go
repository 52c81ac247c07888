package recorder

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"realtpl/eos"
)

// Separator is the column separator of the data files.
const Separator = '\t'

/*
ラベルごとに物性値をタブ区切りの CSV ファイルに書き出す。

	Args:
	    dir: 出力フォルダ
	    t: 物性値の表

	Returns:
	    書き出したファイルのパス（ラベル順）
*/
func WriteCSV(dir string, t *Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	paths := make([]string, 0, len(t.Labels()))
	for _, label := range t.Labels() {
		path := filepath.Join(dir, label+".csv")
		if err := writeRows(path, t.Group(label)); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeRows(path string, rows []eos.PropertyRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	w.Comma = Separator
	werr := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w))
	cerr := file.Close()
	if werr != nil {
		return fmt.Errorf("writing %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing %s: %w", path, cerr)
	}
	return nil
}

/*
参照データを読み込む。

	Args:
	    path: WriteCSV と同じ形式のタブ区切りファイル

	Returns:
	    参照データ（ラベルは eos.RefKind に揃える）
*/
func ReadReference(path string) ([]eos.PropertyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = Separator

	var rows []eos.PropertyRecord
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, fmt.Errorf("%w: reference data %s: %v", eos.ErrDataInconsistency, path, err)
	}
	for i := range rows {
		rows[i].Kind = eos.RefKind
	}
	return rows, nil
}
