package eos

// 一般気体定数, J/(kmol K)
const RUniv = 8314.472

// 1 cal あたりの J, J/cal
const JPerCal = 4.184

// 一般気体定数, cal/(mol K)
const RMol = RUniv / (1000 * JPerCal)

// 対数の引数やゼロ割を避けるための下限値
const eps = 1e-16
