// SPDX-License-Identifier: MPL-2.0

// Package rpmspec reads the preamble of RPM package-build descriptors
// (.spec files).
//
// Only the information needed to compare packages is extracted: the
// top-level tags (Name, Epoch, Version, Release, Summary, License, URL, ...)
// and the macros defined with %define or %global before the first section.
// Tag values are macro-expanded, so a Version written as %{kernel_ver} is
// reported with the value the macro holds. Subpackage tags, scriptlets and
// conditionals are not interpreted.
//
// # Usage
//
//	spec, err := rpmspec.ParseFile("SPECS/kernel/kernel.spec")
//	if err != nil {
//	    return err // wraps fs.ErrNotExist or ErrMalformedSpec
//	}
//	fmt.Println(spec.Version(), spec.Release())
package rpmspec
