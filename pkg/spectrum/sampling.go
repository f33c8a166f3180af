// Package spectrum provides hero-wavelength sampling for spectral rendering.
package spectrum

import "math"

const (
	// WavelengthMin is the lower bound of the sampled spectral range in nm
	WavelengthMin = 360.0
	// WavelengthMax is the upper bound of the sampled spectral range in nm
	WavelengthMax = 830.0
	// NSamples is the number of wavelengths carried along each ray
	NSamples = 4
)

// Wavelengths holds the hero wavelength set of a single ray, in nm
type Wavelengths [NSamples]float64

// Sample maps a canonical 1D sample to a set of wavelengths uniformly
// distributed over [WavelengthMin, WavelengthMax] plus the corresponding
// importance weight (the reciprocal of the uniform sampling density).
// The set is built by rotating the sample across NSamples equal strata so
// that a single 1D input decorrelates all hero wavelengths.
func Sample(u float64) (Wavelengths, float64) {
	var wavelengths Wavelengths
	for i := 0; i < NSamples; i++ {
		shifted := u + float64(i)/NSamples
		shifted -= math.Floor(shifted)
		wavelengths[i] = WavelengthMin + shifted*(WavelengthMax-WavelengthMin)
	}

	// Uniform density 1/(max-min) per wavelength
	return wavelengths, WavelengthMax - WavelengthMin
}
