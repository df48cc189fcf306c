package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
)

// Check for a newer release on GitHub and update the binary in place.
func Update() error {
	log.Println("Checking for update.")
	// Setup source.
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return err
	}

	// Get the path to ourself.
	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %s", err)
	}
	updateDir, cmd := filepath.Split(exe)
	oldSavePath := filepath.Join(updateDir, fmt.Sprintf(".%s.old", cmd))

	// Get updater with source and validator.
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:      source,
		Validator:   &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		OldSavePath: oldSavePath,
	})
	if err != nil {
		return err
	}

	// Find the latest release.
	release, found, err := updater.DetectLatest(context.Background(), selfupdate.NewRepositorySlug(updateOwner, updateRepo))
	if err != nil {
		return err
	}
	if !found {
		log.Println("No updates available.")
		return nil
	}

	// Compare the versions.
	thisVersion, err := version.NewVersion(serviceVersion)
	if err != nil {
		return err
	}
	latestVersion, err := version.NewVersion(release.Version())
	if err != nil {
		return err
	}

	// If an update isn't available, end.
	if !thisVersion.LessThan(latestVersion) {
		log.Println("No updates available.")
		return nil
	}
	log.Println("Updating to version:", release.Version())

	// Perform the update.
	err = updater.UpdateTo(context.Background(), release, exe)
	if err != nil {
		return err
	}

	fmt.Println("Updated to version:", release.Version())
	return nil
}
