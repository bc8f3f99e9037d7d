// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Command gardenweb is the WebAssembly build of the data garden. It
// exports mountGarden(element, options) and unmountGarden(element)
// to the page and then waits for calls.
package main

import (
	"cogentcore.org/datagarden/host/webhost"
)

func main() {
	webhost.NewHost().Export()
	select {}
}
