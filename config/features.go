// SPDX-License-Identifier: MIT
//
// File: features.go
// Role: Feature factories keyed by feature name, with typed parameter
// decoding from the raw cty values of a feature block.

package config

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/lvbfm/feature"
)

// factory builds one feature from its parameters and the global config.
type factory func(c *Config, p *params) (feature.Feature, error)

var factories = map[string]factory{
	feature.NameMolecules: func(*Config, *params) (feature.Feature, error) {
		return feature.NewMoleculesFeature(), nil
	},
	feature.NameBox: func(_ *Config, p *params) (feature.Feature, error) {
		extent := feature.DefaultExtent
		if err := p.get("extent", &extent); err != nil {
			return nil, err
		}
		if extent < 1 {
			return nil, p.errorf("extent %d < 1", extent)
		}
		return feature.NewBoxFeature(extent), nil
	},
	feature.NameBondset: func(c *Config, p *params) (feature.Feature, error) {
		strong := c.Bondset.Strong
		if err := p.get("strong", &strong); err != nil {
			return nil, err
		}
		if strong {
			return feature.NewBondsetFeature(feature.WithStrongCheck()), nil
		}
		return feature.NewBondsetFeature(), nil
	},
	feature.NameExcludedVolume: func(*Config, *params) (feature.Feature, error) {
		return feature.NewExcludedVolumeFeature(), nil
	},
	feature.NameContact: func(_ *Config, p *params) (feature.Feature, error) {
		var eps float64
		if err := p.require("epsilon", &eps); err != nil {
			return nil, err
		}
		f, err := feature.NewContactFeature(eps)
		if err != nil {
			return nil, p.wrap(err)
		}
		return f, nil
	},
	feature.NameExternalForce: func(_ *Config, p *params) (feature.Feature, error) {
		var fx, fy, fz float64
		for _, a := range []struct {
			key string
			dst *float64
		}{{"fx", &fx}, {"fy", &fy}, {"fz", &fz}} {
			if err := p.get(a.key, a.dst); err != nil {
				return nil, err
			}
		}
		f, err := feature.NewExternalForceFeature(fx, fy, fz)
		if err != nil {
			return nil, p.wrap(err)
		}
		return f, nil
	},
}

// FeatureNames lists the names accepted in feature blocks, sorted.
func FeatureNames() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NewFeatures instantiates the configured features in file order. Each call
// returns fresh instances.
func (c *Config) NewFeatures() ([]feature.Feature, error) {
	out := make([]feature.Feature, 0, len(c.Features))
	for _, fc := range c.Features {
		build, ok := factories[fc.Name]
		if !ok {
			return nil, fmt.Errorf("feature %q (known: %v): %w", fc.Name, FeatureNames(), ErrUnknownFeature)
		}
		p := &params{feature: fc.Name, attrs: fc.Params, used: make(map[string]bool, len(fc.Params))}
		f, err := build(c, p)
		if err != nil {
			return nil, err
		}
		if err = p.unused(); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

// params decodes the attributes of one feature block.
type params struct {
	feature string
	attrs   map[string]cty.Value
	used    map[string]bool
}

// get decodes attribute key into dst when present; dst keeps its value otherwise.
func (p *params) get(key string, dst any) error {
	val, ok := p.attrs[key]
	if !ok {
		return nil
	}
	p.used[key] = true

	ty, err := gocty.ImpliedType(reflect.ValueOf(dst).Elem().Interface())
	if err != nil {
		return p.errorf("%s: %v", key, err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return p.errorf("%s: cannot use %s as %s", key, val.Type().FriendlyName(), ty.FriendlyName())
	}
	if err = gocty.FromCtyValue(converted, dst); err != nil {
		return p.errorf("%s: %v", key, err)
	}

	return nil
}

// require is get for a mandatory attribute.
func (p *params) require(key string, dst any) error {
	if _, ok := p.attrs[key]; !ok {
		return p.errorf("missing %q", key)
	}
	return p.get(key, dst)
}

// unused reports attributes no factory asked for.
func (p *params) unused() error {
	var extra []string
	for key := range p.attrs {
		if !p.used[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)

	return p.errorf("unknown parameters %v", extra)
}

func (p *params) errorf(format string, args ...any) error {
	return fmt.Errorf("feature %q: %s: %w", p.feature, fmt.Sprintf(format, args...), ErrParameter)
}

func (p *params) wrap(err error) error {
	return fmt.Errorf("feature %q: %w: %w", p.feature, ErrParameter, err)
}
