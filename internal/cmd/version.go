package cmd

import "fmt"

// buildVersion is overridden at build time via -ldflags.
var buildVersion = "dev"

// Version prints version information.
type Version struct{}

func (v *Version) Run() error {
	fmt.Println("keywire " + buildVersion)
	return nil
}
