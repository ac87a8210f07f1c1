// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrTooManyFiles = errors.New("too many input files")
)
