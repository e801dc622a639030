// Package preset names retention values so that tuning can live in data
// rather than code.
//
// [Defaults] holds the translate, zoom, angle and rotate presets used by
// the smooth constructors. Additional tables are parsed from YAML:
//
//	presets:
//	  - name: camera-follow
//	    retention: 0.001
//	    kind: linear
//	  - name: turret
//	    retention: 0.2
//	    kind: rotation
package preset
