package ui

import (
	"strings"

	"github.com/noborus/ov/oviewer"
)

// ShowInPager pages content in the terminal with ov
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// leave nothing behind on the terminal once the pager quits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
