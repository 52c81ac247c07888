package fluiddb

// 双極子モーメント, D
// Chung et al. (1988) の極性補正に用いる。
// https://macro.lsu.edu/HowTo/solvents/Dipole%20Moment.htm
var dipoleMoments = map[string]float64{
	"Methanol": 2.87,
	"Ethanol":  1.66,
	"Water":    1.87,
}

// 会合パラメータ κ, -
// Chung, Ajlan, Lee & Starling (1988), Ind. Eng. Chem. Res. 27, 671-679.
var associationParameters = map[string]float64{
	"Methanol": 0.215175,
	"Ethanol":  0.174823,
	"Propanol": 0.143453,
	"Butanol":  0.131671,
	"Pentanol": 0.121555,
	"Hexanol":  0.114230,
	"Heptanol": 0.108674,
	"Acid":     0.091549,
	"Water":    0.075908,
}

// lookupOr returns m[key], or def when the key is absent.
func lookupOr(m map[string]float64, key string, def float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// DipoleMoment returns the dipole moment of name in debye, 0 when unknown.
func DipoleMoment(name string) float64 {
	return lookupOr(dipoleMoments, name, 0)
}

// AssociationParameter returns the association parameter of name, 0 when unknown.
func AssociationParameter(name string) float64 {
	return lookupOr(associationParameters, name, 0)
}
