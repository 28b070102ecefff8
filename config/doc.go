/*
Package config is for application configuration of slrgen with TOML files.

Configuration is read with github.com/pelletier/go-toml and adapted to
schuko.Configuration. Clients load a configuration and install it globally:

    conf, err := config.Load("slrgen.toml")
    …
    config.ConfigureTracing(conf)

Keys are dotted paths into the TOML tree. Trace levels may be given either
as nested tables or as quoted keys, which is the form trace2go looks for:

    [tracing]
    adapter = "go"
    destination = "stderr"

    [tracelevel]
    root = "Error"
    "slrgen.lr" = "Debug"

    [slrgen]
    max-states = 4096

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config
