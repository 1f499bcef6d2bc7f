// Package planfile compiles declarative YAML manifests into plans.
//
// A manifest names the stream positions a host wants extracted, so the
// shape of an extraction can live in configuration instead of code:
//
//	name: frame-header
//	fields:
//	  - name: version
//	    index: 0
//	  - name: flags
//	    index: 1
//	  - name: checksum
//	    index: 7
//
// Parse decodes a manifest from bytes, Load reads one from disk with
// environment overrides, and Compile turns it into a single plan that
// extracts every field in one bounded scan.
//
// # Validation
//
// Manifests are validated on every entry path: a manifest needs a name
// and at least one field, indices must be non-negative, and field names
// must be unique. Duplicate indices are legal; two fields may read the
// same position.
//
// # Environment overrides
//
// Load reads the manifest file through viper, so scalar keys can be
// overridden with COLLATE_-prefixed environment variables (for example
// COLLATE_NAME). WithEnvFile loads a dotenv file into the process
// environment first.
//
// # Usage
//
//	manifest, err := planfile.Load("plans/header.yml")
//	if err != nil {
//	    return err
//	}
//	plan, err := planfile.Compile[[]byte](manifest)
//	if err != nil {
//	    return err
//	}
//	record, err := collate.Run(plan, frames)
package planfile
