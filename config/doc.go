// Package config holds the fixed tables a comparison run depends on: the
// alias table used by type normalization, the names excluded from the
// report, the keyword folding rules applied while parsing, the labels of
// both sides and the module support matrix handed to the renderer.
//
// The defaults are embedded; Load overlays a YAML file on top of them:
//
//	reference_label: muon
//	target_label: meson
//	aliases:
//	  tgt: [build_tgt, custom_tgt, both_libs]
//	  void: []
//	exclude:
//	  - custom_tgt.[index]
package config
