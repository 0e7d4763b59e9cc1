// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (like
// the go command's build, test, doc, etc.) and allows different flags for
// each mode.
//
// Usage differs from the flag package in that the argument list is given up
// front with NewArgs() and Parse() is then called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "debug", "disasm")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	case modalflag.ParseHelp:
//		return
//	}
//
// Once parsed, the selected mode is available from the Mode() function and a
// new layer of flags can be defined for it:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 10.0, "window scale")
//		_, _ = md.Parse()
//		play(md.GetArg(0), *scale)
//	}
//
// Sub-mode comparisons are case insensitive. The first sub-mode in the list
// given to AddSubModes() is the default, selected when the first non-flag
// argument matches no listed sub-mode.
package modalflag
