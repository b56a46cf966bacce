package biome

import "gopkg.in/yaml.v3"

// FBMOverride carries a partial FBMConfig; nil fields inherit the base.
type FBMOverride struct {
	Amplitude  *float64 `yaml:"amplitude,omitempty"`
	Frequency  *float64 `yaml:"frequency,omitempty"`
	Octaves    *int     `yaml:"octaves,omitempty"`
	Lacunarity *float64 `yaml:"lacunarity,omitempty"`
	Gain       *float64 `yaml:"gain,omitempty"`
	Warp       *float64 `yaml:"warp,omitempty"`
}

// SlopeBlurOverride carries a partial SlopeBlurConfig.
type SlopeBlurOverride struct {
	Radius     *int     `yaml:"radius,omitempty"`
	K          *float64 `yaml:"k,omitempty"`
	Iterations *int     `yaml:"iterations,omitempty"`
}

// DunesOverride carries a partial DunesConfig, or an explicit "none".
type DunesOverride struct {
	None             bool     `yaml:"none,omitempty"`
	Scale            *float64 `yaml:"scale,omitempty"`
	Amplitude        *float64 `yaml:"amplitude,omitempty"`
	DirectionRadians *float64 `yaml:"direction_radians,omitempty"`
}

// WaterOverride carries a partial WaterConfig.
type WaterOverride struct {
	SeaLevel       *float64 `yaml:"seaLevel,omitempty"`
	RiverThreshold *float64 `yaml:"riverThreshold,omitempty"`
	RiverWidth     *float64 `yaml:"riverWidth,omitempty"`
	RiverDepth     *float64 `yaml:"riverDepth,omitempty"`
	CoastalErosion *float64 `yaml:"coastalErosion,omitempty"`
	BeachWidth     *float64 `yaml:"beachWidth,omitempty"`
}

// Override is a partial Params document, allowing per-axis override of
// any leaf field -- fbm sub-fields, heightScale, water sub-fields, and so
// on -- while everything left nil inherits from the base Params.
type Override struct {
	FBM               *FBMOverride       `yaml:"fbm,omitempty"`
	SlopeBlur         *SlopeBlurOverride `yaml:"slopeBlur,omitempty"`
	RidgeSharpen      *float64           `yaml:"ridgeSharpen,omitempty"`
	Dunes             *DunesOverride     `yaml:"dunes,omitempty"`
	HeightScaleMeters *float64           `yaml:"heightScale_meters,omitempty"`
	Water             *WaterOverride     `yaml:"water,omitempty"`
}

// DecodeOverride unmarshals a YAML document (any subset of Params) into an
// Override. An empty document decodes to the zero Override, which Merge
// treats as an identity transform.
func DecodeOverride(doc []byte) (Override, error) {
	var o Override
	if len(doc) == 0 {
		return o, nil
	}
	if err := yaml.Unmarshal(doc, &o); err != nil {
		return Override{}, err
	}
	return o, nil
}

// Merge applies override onto base, returning a new Params.
// Merge(base, Override{}) == base.
func Merge(base Params, o Override) Params {
	out := base

	if o.FBM != nil {
		f := o.FBM
		if f.Amplitude != nil {
			out.FBM.Amplitude = *f.Amplitude
		}
		if f.Frequency != nil {
			out.FBM.Frequency = *f.Frequency
		}
		if f.Octaves != nil {
			out.FBM.Octaves = *f.Octaves
		}
		if f.Lacunarity != nil {
			out.FBM.Lacunarity = *f.Lacunarity
		}
		if f.Gain != nil {
			out.FBM.Gain = *f.Gain
		}
		if f.Warp != nil {
			out.FBM.Warp = *f.Warp
		}
	}

	if o.SlopeBlur != nil {
		s := o.SlopeBlur
		if s.Radius != nil {
			out.SlopeBlur.Radius = *s.Radius
		}
		if s.K != nil {
			out.SlopeBlur.K = *s.K
		}
		if s.Iterations != nil {
			out.SlopeBlur.Iterations = *s.Iterations
		}
	}

	if o.RidgeSharpen != nil {
		out.RidgeSharpen = *o.RidgeSharpen
	}

	if o.Dunes != nil {
		d := o.Dunes
		switch {
		case d.None:
			out.Dunes = nil
		default:
			dunes := DunesConfig{}
			if out.Dunes != nil {
				dunes = *out.Dunes
			}
			if d.Scale != nil {
				dunes.Scale = *d.Scale
			}
			if d.Amplitude != nil {
				dunes.Amplitude = *d.Amplitude
			}
			if d.DirectionRadians != nil {
				dunes.DirectionRadians = *d.DirectionRadians
			}
			out.Dunes = &dunes
		}
	}

	if o.HeightScaleMeters != nil {
		out.HeightScaleMeters = *o.HeightScaleMeters
	}

	if o.Water != nil {
		w := o.Water
		water := WaterConfig{}
		if out.Water != nil {
			water = *out.Water
		}
		if w.SeaLevel != nil {
			water.SeaLevel = *w.SeaLevel
		}
		if w.RiverThreshold != nil {
			water.RiverThreshold = *w.RiverThreshold
		}
		if w.RiverWidth != nil {
			water.RiverWidth = *w.RiverWidth
		}
		if w.RiverDepth != nil {
			water.RiverDepth = *w.RiverDepth
		}
		if w.CoastalErosion != nil {
			water.CoastalErosion = *w.CoastalErosion
		}
		if w.BeachWidth != nil {
			water.BeachWidth = *w.BeachWidth
		}
		out.Water = &water
	}

	return out
}
