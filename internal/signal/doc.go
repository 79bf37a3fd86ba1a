// Package signal computes the moving-average crossover signal series.
//
// The processor derives a trailing rolling mean of the close column and marks
// each row 1 when its close sits strictly above the rolling mean, 0
// otherwise. Rows inside the warm-up window, where the rolling mean is still
// undefined, are always 0 by explicit rule rather than by NaN comparison
// side effects. The aggregate signal rate is the mean of the whole series,
// warm-up rows included.
package signal
