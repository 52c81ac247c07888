package eos

import (
	"math"
)

// Chung et al. (1988) の係数 a_i = a0 + a1 ω + a2 μ_r^4 + a3 κ
var (
	chungA0 = [10]float64{6.32402, 0.12102e-2, 5.28346, 6.62263, 19.74540,
		-1.89992, 24.27450, 0.79716, -0.23816, 0.68629e-1}
	chungA1 = [10]float64{50.41190, -0.11536e-2, 254.20900, 38.09570, 7.63034,
		-12.53670, 3.44945, 1.11764, 0.67695e-1, 0.34793}
	chungA2 = [10]float64{-51.68010, -0.62571e-2, -168.481, -8.46414, -14.35440,
		4.98529, -11.29130, 0.12348e-1, -0.81630, 0.59256}
	chungA3 = [10]float64{1189.020, 0.37283e-1, 3898.27, 31.4178, 31.5267,
		-18.15070, 69.3466, -4.11661, 4.02528, -0.72663}
)

// Chung et al. (1988) の係数 b_i = b0 + b1 ω + b2 μ_r^4 + b3 κ
var (
	chungB0 = [7]float64{2.41657, -0.50924, 6.61069, 14.54250, 0.79274, -5.86340,
		81.17100}
	chungB1 = [7]float64{0.74824, -1.50936, 5.62073, -8.91387, 0.82019, 12.80050,
		114.15800}
	chungB2 = [7]float64{-0.91858, -49.9912, 64.7599, -5.63794, -0.69369, 9.58926,
		-60.841}
	chungB3 = [7]float64{121.721, 69.9834, 27.0389, 74.3435, 6.31734, -65.52920,
		466.775}
)

// 衝突積分 Ω* の定数 (Neufeld et al.)
const (
	ciA = 1.16145
	ciB = 0.14874
	ciC = 0.52487
	ciD = 0.77320
	ciE = 2.16178
	ciF = 2.43787
	ciG = -6.435e-4
	ciH = 7.27371
	ciS = 18.0323
	ciW = -0.76830
)

// Transport は要素ごとの粘性係数と熱伝導率を保持する。
type Transport struct {
	Visc []float64 // 粘性係数, Pa s
	Cond []float64 // 熱伝導率, W/(m K)
}

// isExtended は極性・会合の補正項を用いるかを返す。
func isExtended(fp FluidProperties) bool {
	return fp.DipoleMoment != 0 || fp.AssociationParameter != 0
}

// reducedDipoleMoment returns μ_r = 131.3 μ / √(v_c T_c), v_c in cm3/mol.
func reducedDipoleMoment(fp FluidProperties) float64 {
	vC := fp.VC * 1e3
	return 131.3 * fp.DipoleMoment / math.Sqrt(vC*fp.TempC)
}

// chungCoefficients は a_vec, b_vec を返す。極性・会合がない場合は
// 第3、第4の係数ブロックを含めない。
func chungCoefficients(fp FluidProperties) (aVec [10]float64, bVec [7]float64) {
	muR4 := math.Pow(reducedDipoleMoment(fp), 4)
	kappa := fp.AssociationParameter
	ext := isExtended(fp)

	for i := range aVec {
		aVec[i] = chungA0[i] + chungA1[i]*fp.Omega
		if ext {
			aVec[i] += chungA2[i]*muR4 + chungA3[i]*kappa
		}
	}
	for i := range bVec {
		bVec[i] = chungB0[i] + chungB1[i]*fp.Omega
		if ext {
			bVec[i] += chungB2[i]*muR4 + chungB3[i]*kappa
		}
	}
	return aVec, bVec
}

// collisionIntegral returns Ω* at T* = 1.2593 T/T_c.
func collisionIntegral(tempStar float64) float64 {
	return ciA/math.Pow(tempStar, ciB) +
		ciC/math.Exp(ciD*tempStar) +
		ciE/math.Exp(ciF*tempStar) +
		ciG*math.Pow(tempStar, ciB)*math.Sin(ciS*math.Pow(tempStar, ciW)-ciH)
}

/*
高密度流体の粘性係数と熱伝導率を Chung らの対応状態相関式で求める。

	Args:
	    fp: 臨界点物性値
	    temp: 温度, K, [n]
	    rho: 密度, kg/m3, [n]
	    cv: 定積モル比熱, J/(kmol K), [n]

	Returns:
	    粘性係数, Pa s, 熱伝導率, W/(m K)

	Notes:
	    相関式の単位系 (cm3/mol, mol/cm3, cal/(mol K), P, cal/(cm s K)) で計算し、
	    最後に SI 単位に換算する。
	    Chung, Ajlan, Lee & Starling (1988), Ind. Eng. Chem. Res. 27, 671-679.
*/
func ViscCondChung(fp FluidProperties, temp, rho, cv []float64) Transport {
	vC := fp.VC * 1e3 // cm3/mol
	vC23 := math.Pow(vC, 2.0/3.0)

	muR := reducedDipoleMoment(fp)
	aVec, bVec := chungCoefficients(fp)

	fc := 1 - 0.2756*fp.Omega + 0.059035*math.Pow(muR, 4) + fp.AssociationParameter
	beta := 0.7862 - 0.7109*fp.Omega + 1.3168*fp.Omega*fp.Omega

	n := len(temp)
	out := Transport{
		Visc: make([]float64, n),
		Cond: make([]float64, n),
	}

	for i, t := range temp {
		rhoMol := rho[i] / fp.Mass * 1e-3 // mol/cm3
		cvCal := cv[i] / (1000 * JPerCal)  // cal/(mol K)

		tempStar := 1.2593 * t / fp.TempC
		ci := collisionIntegral(tempStar)

		// 希薄気体の粘性係数
		viscRef := 4.0785e-5 * math.Sqrt(fp.Mass*t) / (vC23 * ci) * fc

		// 粘性係数
		y := rhoMol * vC / 6
		g1 := (1 - 0.5*y) / math.Pow(1-y, 3)
		g2 := (aVec[0]*(1-math.Exp(-aVec[3]*y))/y +
			aVec[1]*g1*math.Exp(aVec[4]*y) + aVec[2]*g1) /
			(aVec[0]*aVec[3] + aVec[1] + aVec[2])
		viscK := viscRef * (1/g2 + aVec[5]*y)
		viscP := (36.344e-6 * math.Sqrt(fp.Mass*fp.TempC) / vC23) *
			aVec[6] * y * y * g2 *
			math.Exp(aVec[7]+aVec[8]/tempStar+aVec[9]/(tempStar*tempStar))
		visc := viscK + viscP // P

		// 希薄気体の熱伝導率
		alpha := cvCal/RMol - 1.5
		tempR := t / fp.TempC
		zeta := 2 + 10.5*tempR*tempR
		psi := 1 + alpha*((0.215+0.28288*alpha-1.061*beta+0.26665*zeta)/
			(0.6366+beta*zeta+1.061*alpha*beta))
		condRef := 7.452 * (viscRef / fp.Mass) * psi

		// 熱伝導率
		h2 := (bVec[0]*(1-math.Exp(-bVec[3]*y))/y +
			bVec[1]*g1*math.Exp(bVec[4]*y) + bVec[2]*g1) /
			(bVec[0]*bVec[3] + bVec[1] + bVec[2])
		condK := condRef * (1/h2 + bVec[5]*y)
		condP := (3.039e-4 * math.Sqrt(fp.TempC/fp.Mass) / vC23) *
			bVec[6] * y * y * h2 * math.Sqrt(tempR)
		cond := condK + condP // cal/(cm s K)

		out.Visc[i] = visc / 10
		out.Cond[i] = cond * JPerCal * 100
	}
	return out
}
