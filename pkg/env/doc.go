package env

/*
Package env turns installed library locations into compiler and linker flags.

Basic Usage:

    import "github.com/arc-language/teaconf/pkg/env"

    // Link names found in a lib directory
    names, err := env.ListLibraryNames("/usr/local/opt/gd/lib")
    // names: ["gd"] for libgd.dylib and libgd.a

    flags := &env.CompilerFlags{
        IncludeFlags: []string{"-I/usr/local/opt/gd/include"},
        LibraryFlags: []string{"-L/usr/local/opt/gd/lib"},
        LinkFlags:    []string{"-lgd"},
    }
    fmt.Println(flags.Include()) // -I/usr/local/opt/gd/include
    fmt.Println(flags.Library()) // -L/usr/local/opt/gd/lib -lgd

Library files are recognised by the lib<name>.<ext> pattern, where ext is one
of dylib, a, so or dll. Anything may follow the extension, so versioned shared
objects such as libpq.so.5 count too.
*/
