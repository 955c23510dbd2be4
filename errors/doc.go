// This file is part of atsim85.
//
// atsim85 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atsim85 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atsim85.  If not, see <https://www.gnu.org/licenses/>.

// Package errors defines the enum-tagged error type used for the
// handful of failures that are reported once at startup: a program
// image that cannot be opened, an image too large for flash, a bad
// command line. These are the errors main.go needs a stable category
// for, so it can distinguish them when deciding how to report and what
// exit code to use.
//
// Everything else in the project uses the curated package instead,
// where errors are freeform pattern strings and no category is needed.
// The split is deliberate: a fixed enum where a caller switches on the
// category, freeform where the error is only ever logged or printed.
//
// Actual panics should only be used when the error is so terrible that
// there is nothing sensible to be done; useful for brute-enforcement of
// programming constraints and in init() functions.
package errors
