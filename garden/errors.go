// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import "cogentcore.org/core/base/errors"

// ErrInvalidArgument is returned (wrapped) by constructors given
// out-of-range values such as a non-positive point count or radius.
var ErrInvalidArgument = errors.New("garden: invalid argument")
