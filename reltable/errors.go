// SPDX-License-Identifier: MIT
// Package reltable: sentinel error set.

package reltable

import "errors"

// ErrNoSuchScan indicates Remove was asked to drop a row index outside
// the table's current live range.
var ErrNoSuchScan = errors.New("reltable: no such scan row")
