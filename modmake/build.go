package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	keyshieldVersion = "0.1.0"
)

// Release targets as OS/arch pairs.
var releaseTargets = [][2]string{
	{"linux", "amd64"},
	{"linux", "arm64"},
	{"darwin", "arm64"},
	{"darwin", "amd64"},
	{"windows", "amd64"},
	{"windows", "arm64"},
}

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	keyshield := NewAppBuild("keyshield", "cmd/keyshield", keyshieldVersion)
	keyshield.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", keyshieldVersion).
			CgoEnabled(false)
	})
	for _, target := range releaseTargets {
		keyshield.Variant(target[0], target[1])
	}
	b.ImportApp(keyshield)

	b.Execute()
}
