// Package ninja scrapes the link inputs of one target out of a generated
// ninja descriptor.
//
// V8 does not publish which objects and archives its d8 shell links against,
// so teaconf reads them from obj/d8.ninja in the compile directory. Two kinds
// of statement matter:
//
//	cflags = -O2 -I../../include
//	build ./d8: link obj/d8/d8.o obj/libv8_base.a || obj/d8_js2c.stamp
//	  ldflags = -Wl,--as-needed
//
// Top-level variables are kept. Variables indented under a link rule are kept
// only when that rule builds the target of interest. Everything else in the
// file is ignored.
package ninja
