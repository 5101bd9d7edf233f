package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/imefix/debugs"
	"github.com/reusee/imefix/patches"
)

type Module struct {
	dscope.Module
	Patches patches.Module
	Debugs  debugs.Module
}
