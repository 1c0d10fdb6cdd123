// This file is part of FUnit8.
//
// FUnit8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FUnit8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FUnit8.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/hardlyware/funit8/curated"
	"github.com/hardlyware/funit8/test"
)

const testPattern = "test: %v"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.Equate(t, e.Error(), "test: 10")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "some other pattern: %v"))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.Has(p, testPattern))

	// nil is not an error at all
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestChains(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("fatal: %v", e)

	// Is() only sees the outermost pattern, Has() walks the chain
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, "fatal: %v"))
}

func TestDeduplication(t *testing.T) {
	// wrapping in an identical message part should not repeat the part
	e := curated.Errorf("error: inner")
	f := curated.Errorf("error: %v", e)
	test.Equate(t, f.Error(), "error: inner")
}
