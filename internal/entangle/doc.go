// SPDX-License-Identifier: MPL-2.0

// Package entangle checks that "entangled" package-build descriptors stay in
// lockstep.
//
// Some descriptors describe variants of the same software, for example a
// kernel and its signed counterparts, and must never drift apart in version.
// A Registry lists these groups per Category: CategoryVersion groups must
// share Version, CategoryVersionRelease groups must share Version and Release.
//
// A Checker loads every member of every group through a Loader, collects the
// distinct values of the category's fields, and reports a Violation for each
// group where some field has more than one distinct value. Load failures are
// configuration errors and abort the check; violations are collected across
// all groups and returned together in a Result, which a Reporter renders.
package entangle
