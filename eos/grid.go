package eos

import (
	"fmt"
	"math"
)

// MaxGridPoints は実行時間が長くなりすぎることを警告する格子点数の目安である。
const MaxGridPoints = 1e9

// Grid は評価する温度と圧力の組（直積）を表す。どちらも昇順である。
type Grid struct {
	Temps     []float64 // 温度, K
	Pressures []float64 // 圧力, Pa
}

// Size returns the number of (pressure, temperature) points.
func (g Grid) Size() int {
	return len(g.Temps) * len(g.Pressures)
}

// Oversized reports whether the grid exceeds MaxGridPoints.
func (g Grid) Oversized() bool {
	return float64(len(g.Temps))*float64(len(g.Pressures)) > MaxGridPoints
}

/*
等間隔の数列を作成する。

	Args:
	    start: 初項
	    stop: 終端（含まない）
	    step: 間隔（正）

	Returns:
	    start, start+step, ... （stop 未満）
*/
func Arange(start, stop, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step must be positive, got %v", ErrConfiguration, step)
	}
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}
