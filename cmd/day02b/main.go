// SPDX-License-Identifier: MIT
package main

import "gitlab.com/fisherprime/linescan/internal/cli"

func main() { cli.Main("day02b") }
