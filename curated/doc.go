// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a particular pattern. Patterns should be stored as
// exported constants by the package that creates the error. For example, the
// surface package declares:
//
//	const AllocationError = "surface: allocation: %v"
//
// and callers can test for it:
//
//	if curated.Is(err, surface.AllocationError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(surface.AllocationError, "zero width")
//	f := curated.Errorf("tvsurface: %v", e)
//
//	curated.Has(f, surface.AllocationError) // true
//	curated.Is(f, surface.AllocationError)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping "snapshot: %v" around an
// error that reads "snapshot: clipboard unavailable" will produce:
//
//	snapshot: clipboard unavailable
//
// and not:
//
//	snapshot: snapshot: clipboard unavailable
//
// Curated errors also implement Unwrap() so that the standard library
// errors.Is() and errors.As() functions can see any error values that were
// passed to Errorf().
package curated
