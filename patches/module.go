package patches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/imefix/imeconfigs"
)

type Module struct {
	dscope.Module
	Configs imeconfigs.Module
}
