package fluiddb

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"realtpl/eos"
)

var (
	//go:embed data/nasa_7.yaml
	defaultNasa7 []byte

	//go:embed data/nasa_9.yaml
	defaultNasa9 []byte
)

// nasaBin is one temperature range of a polynomial document.
type nasaBin struct {
	TempStart float64   `yaml:"temp_start"`
	TempEnd   float64   `yaml:"temp_end"`
	Coeff     []float64 `yaml:"coeff"`
}

// Polynomials holds ideal-gas polynomial coefficients of one coefficient
// count (7 or 9), keyed by fluid name.
type Polynomials struct {
	nCoeff int
	data   map[string][]nasaBin
}

/*
理想気体比熱の多項式係数を読み込む。

	Args:
	    nCoeff: 係数の数 (7 または 9)
	    path: 追加の係数ファイルのパス（空の場合は組み込みデータのみ）

	Returns:
	    多項式係数のデータベース

	Notes:
	    ファイル中の物質は組み込みデータの同名の物質を置き換える。
*/
func LoadPolynomials(nCoeff int, path string) (*Polynomials, error) {
	var builtin []byte
	switch nCoeff {
	case 7:
		builtin = defaultNasa7
	case 9:
		builtin = defaultNasa9
	default:
		return nil, fmt.Errorf("%w: unknown NASA coefficient number: %d", eos.ErrConfiguration, nCoeff)
	}

	p := &Polynomials{nCoeff: nCoeff, data: map[string][]nasaBin{}}
	if err := p.merge(builtin); err != nil {
		return nil, fmt.Errorf("built-in nasa_%d data: %w", nCoeff, err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading NASA data %s: %w", path, err)
		}
		if err := p.merge(data); err != nil {
			return nil, fmt.Errorf("NASA data %s: %w", path, err)
		}
	}
	return p, nil
}

func (p *Polynomials) merge(data []byte) error {
	var doc map[string][]nasaBin
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for name, bins := range doc {
		p.data[name] = bins
	}
	return nil
}

// Table returns the validated ideal-gas table of name.
func (p *Polynomials) Table(name string) (*eos.IdealGasTable, error) {
	bins, ok := p.data[name]
	if !ok || len(bins) == 0 {
		return nil, fmt.Errorf("%w: no NASA data found for %s in nasa_%d; provide the values with nasa_data_file",
			ErrUnknownFluid, name, p.nCoeff)
	}

	pb := make([]eos.PolynomialBin, len(bins))
	for i, b := range bins {
		pb[i] = eos.PolynomialBin{TempStart: b.TempStart, TempEnd: b.TempEnd, Coeff: b.Coeff}
	}
	table, err := eos.NewIdealGasTable(name, pb)
	if err != nil {
		return nil, err
	}
	if table.NCoeff() != p.nCoeff {
		return nil, fmt.Errorf("%w: %s has %d coefficients, expected %d",
			eos.ErrDataInconsistency, name, table.NCoeff(), p.nCoeff)
	}
	return table, nil
}
