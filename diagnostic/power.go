package diagnostic

import (
	"github.com/dwhensley/subdiag/bitmatrix"
	"github.com/dwhensley/subdiag/bitvec"
)

// PowerReport holds the gamma and epsilon rates.
type PowerReport struct {
	Gamma       uint64
	Epsilon     uint64
	GammaBits   bitvec.Vector
	EpsilonBits bitvec.Vector
}

// Product returns gamma × epsilon.
func (p PowerReport) Product() uint64 {
	return p.Gamma * p.Epsilon
}

// MajorityBits returns, per column, 1 if ones > rows/2 and 0 otherwise.
func MajorityBits(m *bitmatrix.Matrix) bitvec.Vector {
	cm := m.ColMajor()
	half := cm.Rows() / 2

	bits := make(bitvec.Vector, cm.Cols())
	for c := range bits {
		if cm.OnesInColumn(c) > half {
			bits[c] = 1
		}
	}
	return bits
}

// GammaEpsilon returns the majority bits and their complement.
func GammaEpsilon(m *bitmatrix.Matrix) (gamma, epsilon bitvec.Vector) {
	gamma = MajorityBits(m)
	return gamma, gamma.Complement()
}

// PowerConsumption decodes gamma and epsilon from m.
func PowerConsumption(m *bitmatrix.Matrix) PowerReport {
	gamma, epsilon := GammaEpsilon(m)
	return PowerReport{
		Gamma:       gamma.Uint64(),
		Epsilon:     epsilon.Uint64(),
		GammaBits:   gamma,
		EpsilonBits: epsilon,
	}
}
