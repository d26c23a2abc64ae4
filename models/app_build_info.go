// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected with -ldflags and printed by
// passgen --version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// VersionText renders the three fields one per line.
func (a AppBuildInfo) VersionText() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}
