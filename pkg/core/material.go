package core

// Material describes how a surface scatters, reflects, transmits and
// absorbs light.
//
// The three rates are clamped to [0,1] at construction but are not required
// to sum to 1: over- or under-energy materials are accepted as-is and never
// renormalized.
type Material struct {
	// Albedo is the surface color used as a multiplier for diffuse and
	// indirect contributions.
	Albedo Color
	// DiffuseRate is the portion of light scattered as matte reflection.
	DiffuseRate float64
	// SpecularRate is the portion of light reflected mirror-like.
	SpecularRate float64
	// TransmissionRate is the portion of light transmitted through the surface.
	TransmissionRate float64
	// RefractiveIndex drives Snell's law for transmitted rays.
	// Typical values: vacuum/air 1.0, glass 1.5, diamond 2.4.
	RefractiveIndex float64
	// Absorption is the per-channel Beer's-law coefficient for light
	// traveling through the material. (0,0,0) means no absorption.
	Absorption Color
}

// NewMaterial creates a material, clamping the diffuse, specular and
// transmission rates to [0,1]. Albedo, refractive index and absorption pass
// through unclamped.
func NewMaterial(albedo Color, diffuseRate, specularRate, transmissionRate, refractiveIndex float64, absorption Color) Material {
	return Material{
		Albedo:           albedo,
		DiffuseRate:      clampRate(diffuseRate),
		SpecularRate:     clampRate(specularRate),
		TransmissionRate: clampRate(transmissionRate),
		RefractiveIndex:  refractiveIndex,
		Absorption:       absorption,
	}
}

func clampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// Matte creates a purely diffuse material
func Matte(albedo Color, diffuseRate float64) Material {
	return NewMaterial(albedo, diffuseRate, 0, 0, 1, Black())
}

// Mirror creates a purely specular material
func Mirror(albedo Color, specularRate float64) Material {
	return NewMaterial(albedo, 0, specularRate, 0, 1, Black())
}

// Transparent creates a purely transmissive dielectric material
func Transparent(albedo Color, transmissionRate, refractiveIndex float64) Material {
	return NewMaterial(albedo, 0, 0, transmissionRate, refractiveIndex, Black())
}

// Glass creates glass: mostly transmissive with a light specular coat and
// the typical refractive index of 1.5
func Glass(transmissionRate float64) Material {
	return NewMaterial(White(), 0, 0.1, transmissionRate, 1.5, Black())
}

// Metal creates an opaque metallic material
func Metal(albedo Color, specularRate, diffuseRate float64) Material {
	return NewMaterial(albedo, diffuseRate, specularRate, 0, 1, Black())
}

// DiffuseSurface creates a white Lambertian material
func DiffuseSurface() Material {
	return Matte(White(), 0.8)
}

// PerfectMirror creates a fully specular white mirror
func PerfectMirror() Material {
	return Mirror(White(), 1.0)
}

// PerfectMetal creates a fully specular metal
func PerfectMetal() Material {
	return Metal(White(), 1.0, 0)
}

// Vacuum creates the ambient medium rays travel through by default:
// fully transmissive, refractive index 1, no absorption.
func Vacuum() Material {
	return NewMaterial(Black(), 0, 0, 1, 1, Black())
}
