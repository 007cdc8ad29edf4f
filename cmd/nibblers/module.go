package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/clusters"
	"github.com/reusee/nibblers/debugs"
	"github.com/reusee/nibblers/fuzz"
	"github.com/reusee/nibblers/reports"
)

type Module struct {
	dscope.Module
	Sweep    fuzz.Module
	Clusters clusters.Module
	Reports  reports.Module
	Debugs   debugs.Module
}
