package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	edgerelaysVersion = "1.0.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	edgerelays := NewAppBuild("edgerelays", "cmd/edgerelays", edgerelaysVersion)
	edgerelays.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", edgerelaysVersion).
			CgoEnabled(false)
	})
	edgerelays.Variant("linux", "amd64")
	edgerelays.Variant("linux", "arm64")
	edgerelays.Variant("darwin", "arm64")
	edgerelays.Variant("windows", "amd64")
	b.ImportApp(edgerelays)

	b.Execute()
}
