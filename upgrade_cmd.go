package main

// Command to upgrade this tool to the latest release.
type UpgradeCmd struct{}

func (a *UpgradeCmd) Run() error {
	return Update()
}
